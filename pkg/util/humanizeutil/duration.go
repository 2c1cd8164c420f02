// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package humanizeutil

import "time"

// Duration formats a duration for benchmark reports. The result is not exact:
// the granularity degrades as the magnitude grows.
//
// Examples:
//
//	512ns         -> "512ns"
//	123456ns      -> "123µs"
//	12345678ns    -> "12ms"
//	12345678912ns -> "12.3s"
func Duration(val time.Duration) string {
	switch {
	case val < time.Microsecond:
		return val.String()
	case val < time.Millisecond:
		return val.Round(time.Microsecond).String()
	case val < time.Second:
		return val.Round(time.Millisecond).String()
	case val < time.Minute:
		return val.Round(100 * time.Millisecond).String()
	default:
		return val.Round(time.Second).String()
	}
}
