// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package queries implements the five analytical query shapes the
// benchmark measures. Every operation is a pure function of a read-only
// dataset, plus an explicit evaluation time where tenure or recency is
// involved: it allocates its intermediate state fresh per call, returns a
// result with a deterministic total order, and accumulates nothing across
// calls, so a harness can invoke an operation any number of times and each
// call stands alone.
package queries

import "time"

// departmentCountHint sizes department-keyed tables. The generated data
// draws from a closed set of five departments; eight leaves headroom for
// larger configurations.
const departmentCountHint = 8

// tenureDays returns the number of whole days between hire and now.
func tenureDays(now, hire time.Time) int {
	return int(now.Sub(hire) / (24 * time.Hour))
}
