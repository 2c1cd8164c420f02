// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package rowexec

import "sort"

// Sort orders rows in place by the given comparator. less must describe a
// strict weak ordering over rows; multi-key orders are composed inside the
// comparator (compare the first key, then the second on ties, and so on).
// The sort is not stable: callers that need a deterministic total order add
// the row index itself as the final tiebreak.
func Sort(rows []int, less func(a, b int) bool) {
	sort.Slice(rows, func(i, j int) bool {
		return less(rows[i], rows[j])
	})
}
