// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package person defines the immutable person record and the dataset that
// the query operations read. A dataset is built once, never mutated, and
// shared read-only by any number of query invocations.
package person

import (
	"strings"
	"time"
)

// Person is one record in the dataset. Records are immutable after
// construction; queries hold row indices into the owning Dataset rather
// than pointers to individual records.
type Person struct {
	ID         int
	Name       string
	Age        int
	Department string
	Salary     float64
	HireDate   time.Time
}

// AgeGroupOf returns the decade bucket for an age: 26 -> 20, 41 -> 40.
// Ages are non-negative by schema.
func AgeGroupOf(age int) int {
	return age / 10 * 10
}

// Salary bracket labels, ordered from lowest band to highest.
const (
	BracketEntryLevel = "Entry Level"
	BracketJunior     = "Junior"
	BracketMidLevel   = "Mid Level"
	BracketSenior     = "Senior"
	BracketExecutive  = "Executive"
)

// SalaryBracket buckets a salary into the coarse band used by reports.
// Band edges are inclusive on the lower side: 60000 is Mid Level.
func SalaryBracket(salary float64) string {
	switch {
	case salary < 40000:
		return BracketEntryLevel
	case salary < 60000:
		return BracketJunior
	case salary < 80000:
		return BracketMidLevel
	case salary < 100000:
		return BracketSenior
	default:
		return BracketExecutive
	}
}

// IsManager reports whether a record looks like a manager: either the name
// carries the "Manager" suffix or the salary exceeds 100k.
func IsManager(p Person) bool {
	return strings.HasSuffix(p.Name, "Manager") || p.Salary > 100000
}
