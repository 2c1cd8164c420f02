// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package person

import (
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestAgeGroupOf(t *testing.T) {
	testCases := []struct {
		age      int
		expected int
	}{
		{0, 0},
		{9, 0},
		{10, 10},
		{22, 20},
		{29, 20},
		{30, 30},
		{64, 60},
		{100, 100},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, AgeGroupOf(tc.age), "age %d", tc.age)
	}
}

func TestDatasetAgeGroupMemoized(t *testing.T) {
	people := []Person{
		{ID: 1, Name: "Ava_1", Age: 26},
		{ID: 2, Name: "Bob_2", Age: 30},
		{ID: 3, Name: "Cal_3", Age: 5},
		{ID: 4, Name: "Dee_4", Age: 64},
	}
	d := NewDataset(people)
	for i, p := range people {
		// Cold and warm reads must agree with the pure function.
		require.Equal(t, AgeGroupOf(p.Age), d.AgeGroup(i))
		require.Equal(t, AgeGroupOf(p.Age), d.AgeGroup(i))
	}
}

// TestDatasetAgeGroupConcurrent hits the cold cache from many goroutines at
// once. The write is idempotent, so every reader must observe the same
// value no matter who fills the slot first.
func TestDatasetAgeGroupConcurrent(t *testing.T) {
	people := make([]Person, 1000)
	for i := range people {
		people[i] = Person{ID: i + 1, Age: 22 + i%43}
	}
	d := NewDataset(people)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := range people {
				if got, want := d.AgeGroup(i), AgeGroupOf(people[i].Age); got != want {
					return errors.Newf("row %d: got age group %d, want %d", i, got, want)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestSalaryBracket(t *testing.T) {
	testCases := []struct {
		salary   float64
		expected string
	}{
		{30000, BracketEntryLevel},
		{39999.99, BracketEntryLevel},
		{40000, BracketJunior},
		{59999.99, BracketJunior},
		{60000, BracketMidLevel},
		{80000, BracketSenior},
		{99999.99, BracketSenior},
		{100000, BracketExecutive},
		{150000, BracketExecutive},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%.2f", tc.salary), func(t *testing.T) {
			require.Equal(t, tc.expected, SalaryBracket(tc.salary))
		})
	}
}

func TestIsManager(t *testing.T) {
	hired := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	require.True(t, IsManager(Person{Name: "EveManager", Salary: 50000, HireDate: hired}))
	require.True(t, IsManager(Person{Name: "Bob_2", Salary: 100001, HireDate: hired}))
	require.False(t, IsManager(Person{Name: "Bob_2", Salary: 100000, HireDate: hired}))
}
