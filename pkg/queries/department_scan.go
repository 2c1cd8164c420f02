// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package queries

import (
	"sort"

	"github.com/cockroachdb/rowbench/pkg/person"
	"github.com/cockroachdb/rowbench/pkg/rowexec"
	"golang.org/x/exp/maps"
)

const (
	// minScanGroupSize is the group-size threshold of DepartmentScan:
	// departments with this many rows or fewer produce no result row.
	minScanGroupSize = 50
	// highEarnerSalary is the salary above which DepartmentScan counts a row
	// as a high earner.
	highEarnerSalary = 75000
)

// DepartmentScanStats is one DepartmentScan result row.
type DepartmentScanStats struct {
	Department  string
	Count       int
	HighEarners int
	AvgAge      float64
}

// DepartmentScan derives the distinct department set and then makes one
// full pass over the dataset per department, collecting its member rows,
// its high-earner count, and its average age. It deliberately rescans
// instead of grouping: the O(D*N) repeated-scan shape is the baseline the
// single-pass grouping operations are measured against, so it must not be
// collapsed into one pass. Results are ordered by high-earner count
// descending, with department name breaking ties.
func DepartmentScan(d *person.Dataset) []DepartmentScanStats {
	people := d.People()

	distinct := make(map[string]struct{}, departmentCountHint)
	for row := range people {
		distinct[people[row].Department] = struct{}{}
	}
	departments := maps.Keys(distinct)
	sort.Strings(departments)

	memberHint := 0
	if len(departments) > 0 {
		memberHint = len(people) / len(departments)
	}
	stats := make([]DepartmentScanStats, 0, len(departments))
	for _, dept := range departments {
		members := make([]int, 0, memberHint)
		highEarners := 0
		var age rowexec.Agg[int]
		for row := range people {
			if people[row].Department != dept {
				continue
			}
			members = append(members, row)
			if people[row].Salary > highEarnerSalary {
				highEarners++
			}
			age.Add(people[row].Age)
		}
		if len(members) <= minScanGroupSize {
			continue
		}
		stats = append(stats, DepartmentScanStats{
			Department:  dept,
			Count:       len(members),
			HighEarners: highEarners,
			AvgAge:      age.Mean(),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].HighEarners != stats[j].HighEarners {
			return stats[i].HighEarners > stats[j].HighEarners
		}
		return stats[i].Department < stats[j].Department
	})
	return stats
}
