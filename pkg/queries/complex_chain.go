// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package queries

import (
	"sort"

	"github.com/cockroachdb/rowbench/pkg/person"
	"github.com/cockroachdb/rowbench/pkg/rowexec"
)

// minChainGroupSize is the group-size threshold of ComplexChain: departments
// with this many matching rows or fewer are dropped before aggregation.
const minChainGroupSize = 10

// DepartmentStats is one ComplexChain result row.
type DepartmentStats struct {
	Department string
	Count      int
	AvgSalary  float64
	MaxSalary  float64
	MinAge     int
}

// ComplexChain runs the full filter-sort-group-aggregate pipeline: keep
// people over 25 earning more than 50k, order the survivors by department
// and then by salary descending, bucket them by department, and aggregate
// every bucket above the minimum size. Results are ordered by average
// salary descending, with department name breaking ties.
func ComplexChain(d *person.Dataset) []DepartmentStats {
	people := d.People()

	// Roughly a quarter of the rows pass both predicates under the default
	// generation parameters.
	rows := rowexec.Filter(d.Len(), d.Len()/4, func(row int) bool {
		p := &people[row]
		return p.Age > 25 && p.Salary > 50000
	})
	rowexec.Sort(rows, func(a, b int) bool {
		if people[a].Department != people[b].Department {
			return people[a].Department < people[b].Department
		}
		return people[a].Salary > people[b].Salary
	})
	groups := rowexec.GroupRows(rows, departmentCountHint, func(row int) string {
		return people[row].Department
	})

	stats := make([]DepartmentStats, 0, len(groups))
	for dept, bucket := range groups {
		if len(bucket) <= minChainGroupSize {
			continue
		}
		var salary rowexec.Agg[float64]
		var age rowexec.Agg[int]
		for _, row := range bucket {
			salary.Add(people[row].Salary)
			age.Add(people[row].Age)
		}
		stats = append(stats, DepartmentStats{
			Department: dept,
			Count:      salary.Count(),
			AvgSalary:  salary.Mean(),
			MaxSalary:  salary.Max(),
			MinAge:     age.Min(),
		})
	}

	// Map iteration order is randomized; impose a total order on the result.
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].AvgSalary != stats[j].AvgSalary {
			return stats[i].AvgSalary > stats[j].AvgSalary
		}
		return stats[i].Department < stats[j].Department
	})
	return stats
}
