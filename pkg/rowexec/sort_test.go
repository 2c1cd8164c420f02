// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package rowexec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortMultiKey(t *testing.T) {
	type row struct {
		dept   string
		salary float64
	}
	rows := []row{
		{"Sales", 50000},
		{"Engineering", 40000},
		{"Sales", 90000},
		{"Engineering", 70000},
		{"Engineering", 40000},
	}
	idx := []int{0, 1, 2, 3, 4}

	// Department ascending, salary descending, row index as final tiebreak.
	Sort(idx, func(a, b int) bool {
		if rows[a].dept != rows[b].dept {
			return rows[a].dept < rows[b].dept
		}
		if rows[a].salary != rows[b].salary {
			return rows[a].salary > rows[b].salary
		}
		return a < b
	})
	require.Equal(t, []int{3, 1, 4, 2, 0}, idx)
}

func TestSortEmptyAndSingle(t *testing.T) {
	Sort(nil, func(a, b int) bool { return a < b })

	idx := []int{7}
	Sort(idx, func(a, b int) bool { return a < b })
	require.Equal(t, []int{7}, idx)
}
