// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package queries

import (
	"sort"
	"time"

	"github.com/cockroachdb/rowbench/pkg/person"
	"github.com/cockroachdb/rowbench/pkg/rowexec"
)

const (
	// minRollupGroupSize is the group-size threshold of AgeGroupRollup:
	// buckets with this many rows or fewer are dropped.
	minRollupGroupSize = 5
	// rollupGroupHint sizes the rollup's bucket table. Five departments
	// crossed with the five age decades of the default generation range
	// yields at most 25 buckets.
	rollupGroupHint = 32
)

// rollupKey is the composite grouping key of AgeGroupRollup.
type rollupKey struct {
	department string
	ageGroup   int
}

// AgeGroupStats is one AgeGroupRollup result row.
type AgeGroupStats struct {
	Department    string
	AgeGroup      int
	Count         int
	AvgSalary     float64
	AvgTenureDays float64
}

// AgeGroupRollup buckets every row by (department, age group) and reports
// the average salary and average tenure in days of each bucket above the
// minimum size. The age group comes from the dataset's memoizing accessor,
// so repeated runs over the same dataset skip the derivation. now anchors
// the tenure computation. Results are ordered by department, then age group.
func AgeGroupRollup(d *person.Dataset, now time.Time) []AgeGroupStats {
	people := d.People()
	groups := rowexec.GroupBy(d.Len(), rollupGroupHint, func(row int) rollupKey {
		return rollupKey{
			department: people[row].Department,
			ageGroup:   d.AgeGroup(row),
		}
	})

	stats := make([]AgeGroupStats, 0, len(groups))
	for key, bucket := range groups {
		if len(bucket) <= minRollupGroupSize {
			continue
		}
		var salary rowexec.Agg[float64]
		var tenure rowexec.Agg[int]
		for _, row := range bucket {
			salary.Add(people[row].Salary)
			tenure.Add(tenureDays(now, people[row].HireDate))
		}
		stats = append(stats, AgeGroupStats{
			Department:    key.department,
			AgeGroup:      key.ageGroup,
			Count:         salary.Count(),
			AvgSalary:     salary.Mean(),
			AvgTenureDays: tenure.Mean(),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Department != stats[j].Department {
			return stats[i].Department < stats[j].Department
		}
		return stats[i].AgeGroup < stats[j].AgeGroup
	})
	return stats
}
