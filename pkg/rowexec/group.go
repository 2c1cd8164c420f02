// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package rowexec

// GroupBy partitions rows 0..n-1 into buckets of equal keys. Every row
// lands in exactly one bucket and buckets preserve input order, so the
// returned map is an exact partition of the input range. Composite keys
// are comparable structs; their equality is component-wise. sizeHint
// pre-sizes the bucket table for callers that can estimate the number of
// distinct keys.
func GroupBy[K comparable](n, sizeHint int, key func(row int) K) map[K][]int {
	if sizeHint < 0 {
		sizeHint = 0
	}
	groups := make(map[K][]int, sizeHint)
	for row := 0; row < n; row++ {
		k := key(row)
		groups[k] = append(groups[k], row)
	}
	return groups
}

// GroupRows is GroupBy over an existing index list instead of the full
// 0..n-1 range. The input slice is not modified; within a bucket, rows keep
// their relative order from the input.
func GroupRows[K comparable](rows []int, sizeHint int, key func(row int) K) map[K][]int {
	if sizeHint < 0 {
		sizeHint = 0
	}
	groups := make(map[K][]int, sizeHint)
	for _, row := range rows {
		k := key(row)
		groups[k] = append(groups[k], row)
	}
	return groups
}
