// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package timeutil

import "time"

// Now returns the current time. The returned value retains the runtime's
// monotonic clock reading, so durations computed via Since are immune to
// wall-clock adjustments. Call sites outside this package should not use
// time.Now directly.
func Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t.
func Since(t time.Time) time.Duration {
	return time.Since(t)
}
