// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package person

import "sync/atomic"

// Dataset owns an ordered, immutable sequence of people plus a lazily
// populated side table of derived age groups. Keeping the cache out of
// Person itself keeps the records plain values; the side table is indexed
// by row, so groups and projections can hold bare row indices.
type Dataset struct {
	people []Person

	// ageGroups[i] holds AgeGroupOf(people[i].Age)+1 once computed; zero
	// means not yet computed. The stored value is a pure function of an
	// immutable field, so concurrent first calls may race on the slot and
	// still store the same value. Offsetting by one keeps age group 0
	// distinguishable from an empty slot.
	ageGroups []atomic.Int32
}

// NewDataset wraps people in a Dataset, taking ownership of the slice.
// The slice must not be modified afterwards.
func NewDataset(people []Person) *Dataset {
	return &Dataset{
		people:    people,
		ageGroups: make([]atomic.Int32, len(people)),
	}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.people)
}

// People returns the backing records. Callers must treat the slice as
// read-only.
func (d *Dataset) People() []Person {
	return d.people
}

// AgeGroup returns the decade bucket of row i's age, computing and caching
// it on first access. After the first call the cost is a single atomic
// load. Safe for concurrent use.
func (d *Dataset) AgeGroup(i int) int {
	if v := d.ageGroups[i].Load(); v != 0 {
		return int(v) - 1
	}
	g := AgeGroupOf(d.people[i].Age)
	d.ageGroups[i].Store(int32(g) + 1)
	return g
}
