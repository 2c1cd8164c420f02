// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package queries

import (
	"time"

	"github.com/cockroachdb/rowbench/pkg/person"
	"github.com/cockroachdb/rowbench/pkg/rowexec"
)

// maxRecentHires caps the RecentHires result; rows beyond the cap exist and
// are sorted, then truncated.
const maxRecentHires = 1000

// RecentHires returns the row indices of the people hired strictly after
// the five-years-before-now cutoff who are under 30 and earn more than 60k,
// ordered by hire date ascending and capped at maxRecentHires rows. Ties on
// hire date break by row index, so the result order is total and identical
// across runs.
func RecentHires(d *person.Dataset, now time.Time) []int {
	people := d.People()
	cutoff := now.AddDate(-5, 0, 0)

	rows := rowexec.Filter(d.Len(), d.Len()/20, func(row int) bool {
		p := &people[row]
		return p.HireDate.After(cutoff) && p.Age < 30 && p.Salary > 60000
	})
	rowexec.Sort(rows, func(a, b int) bool {
		ha, hb := people[a].HireDate, people[b].HireDate
		if !ha.Equal(hb) {
			return ha.Before(hb)
		}
		return a < b
	})
	if len(rows) > maxRecentHires {
		rows = rows[:maxRecentHires]
	}
	return rows
}
