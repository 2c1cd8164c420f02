// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package datagen

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func testConfig(rows int, seed uint64) Config {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Seed = seed
	cfg.Now = testNow
	return cfg
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig(1000, 42)
	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a, err := Generate(testConfig(1000, 1))
	require.NoError(t, err)
	b, err := Generate(testConfig(1000, 2))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestGenerateDomains(t *testing.T) {
	cfg := testConfig(500, 7)
	people, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, people, cfg.Rows)

	departments := make(map[string]struct{})
	for _, d := range cfg.Departments {
		departments[d] = struct{}{}
	}
	firstNames := make(map[string]struct{})
	for _, n := range cfg.FirstNames {
		firstNames[n] = struct{}{}
	}
	earliest := testNow.AddDate(0, 0, -cfg.MaxTenureDays)
	latest := testNow.AddDate(0, 0, -1)

	for i, p := range people {
		require.Equal(t, i+1, p.ID)

		first, suffix, found := strings.Cut(p.Name, "_")
		require.True(t, found, "name %q has no id suffix", p.Name)
		require.Contains(t, firstNames, first)
		require.Equal(t, strconv.Itoa(p.ID), suffix)

		require.GreaterOrEqual(t, p.Age, cfg.AgeMin)
		require.LessOrEqual(t, p.Age, cfg.AgeMax)
		require.Contains(t, departments, p.Department)
		require.GreaterOrEqual(t, p.Salary, cfg.SalaryMin)
		require.Less(t, p.Salary, cfg.SalaryMax)
		require.False(t, p.HireDate.Before(earliest), "hire date %s too old", p.HireDate)
		require.False(t, p.HireDate.After(latest), "hire date %s too recent", p.HireDate)
	}
}

func TestGenerateValidation(t *testing.T) {
	for _, tc := range []struct {
		name     string
		mutate   func(*Config)
		expected string
	}{
		{"negative rows", func(cfg *Config) { cfg.Rows = -1 }, "rows must be non-negative"},
		{"no departments", func(cfg *Config) { cfg.Departments = nil }, "at least one department"},
		{"no names", func(cfg *Config) { cfg.FirstNames = nil }, "at least one first name"},
		{"inverted ages", func(cfg *Config) { cfg.AgeMin, cfg.AgeMax = 64, 22 }, "invalid age range"},
		{"inverted salaries", func(cfg *Config) { cfg.SalaryMin, cfg.SalaryMax = 150000, 30000 }, "invalid salary range"},
		{"zero tenure", func(cfg *Config) { cfg.MaxTenureDays = 0 }, "max tenure"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(10, 1)
			tc.mutate(&cfg)
			_, err := Generate(cfg)
			require.ErrorContains(t, err, tc.expected)
		})
	}
}

func TestGenerateZeroRows(t *testing.T) {
	people, err := Generate(testConfig(0, 1))
	require.NoError(t, err)
	require.Empty(t, people)
}
