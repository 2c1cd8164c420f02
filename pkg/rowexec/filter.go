// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package rowexec provides the stateless building blocks the query
// operations are composed from: predicate filtering, comparator sorting,
// key grouping, and single-pass aggregation. Everything operates on row
// indices into a caller-owned dataset, so the primitives never copy or
// retain records.
package rowexec

// Filter scans rows 0..n-1 in order and returns the indices of the rows for
// which keep returns true, preserving input order. keep is evaluated exactly
// once per row. sizeHint pre-sizes the result for callers that can estimate
// selectivity; it does not bound the output.
func Filter(n, sizeHint int, keep func(row int) bool) []int {
	if sizeHint < 0 {
		sizeHint = 0
	}
	out := make([]int, 0, sizeHint)
	for row := 0; row < n; row++ {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// FilterRows is Filter over an existing index list instead of the full
// 0..n-1 range. The input slice is not modified.
func FilterRows(rows []int, sizeHint int, keep func(row int) bool) []int {
	if sizeHint < 0 {
		sizeHint = 0
	}
	out := make([]int, 0, sizeHint)
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}
