// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package datagen produces the synthetic person datasets the benchmark
// operations run against. Generation is deterministic: the same Config,
// seed included, yields identical rows, so results are comparable across
// processes and machines.
package datagen

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rowbench/pkg/person"
	"github.com/cockroachdb/rowbench/pkg/util/timeutil"
	"golang.org/x/exp/rand"
)

// Config parameterizes Generate. The zero value is not usable; start from
// DefaultConfig and override.
type Config struct {
	// Rows is the number of people to generate.
	Rows int
	// Seed seeds the random source. Equal seeds yield equal datasets.
	Seed uint64
	// Now anchors hire dates, which are generated as offsets back in time
	// from it. If zero, the current time is used, which trades the
	// determinism of the hire dates for convenience.
	Now time.Time
	// Departments and FirstNames are the closed sets draws come from.
	Departments []string
	FirstNames  []string
	// AgeMin and AgeMax bound ages, both inclusive.
	AgeMin, AgeMax int
	// SalaryMin and SalaryMax bound salaries, inclusive and exclusive
	// respectively.
	SalaryMin, SalaryMax float64
	// MaxTenureDays bounds how far back a hire date can fall. Every
	// generated hire date is between 1 and MaxTenureDays days before Now.
	MaxTenureDays int
}

// DefaultConfig returns the standard benchmark dataset parameters: a
// million rows drawn from five departments and eight first names.
func DefaultConfig() Config {
	return Config{
		Rows:          1_000_000,
		Seed:          42,
		Departments:   []string{"Engineering", "Sales", "Marketing", "HR", "Finance"},
		FirstNames:    []string{"John", "Jane", "Bob", "Alice", "Charlie", "Diana", "Eve", "Frank"},
		AgeMin:        22,
		AgeMax:        64,
		SalaryMin:     30000,
		SalaryMax:     150000,
		MaxTenureDays: 10 * 365,
	}
}

func (cfg Config) validate() error {
	if cfg.Rows < 0 {
		return errors.Newf("rows must be non-negative, got %d", cfg.Rows)
	}
	if len(cfg.Departments) == 0 {
		return errors.New("at least one department is required")
	}
	if len(cfg.FirstNames) == 0 {
		return errors.New("at least one first name is required")
	}
	if cfg.AgeMin > cfg.AgeMax {
		return errors.Newf("invalid age range [%d, %d]", cfg.AgeMin, cfg.AgeMax)
	}
	if cfg.SalaryMin > cfg.SalaryMax {
		return errors.Newf("invalid salary range [%v, %v]", cfg.SalaryMin, cfg.SalaryMax)
	}
	if cfg.MaxTenureDays < 1 {
		return errors.Newf("max tenure must be at least one day, got %d", cfg.MaxTenureDays)
	}
	return nil
}

// Generate builds cfg.Rows people. IDs are assigned sequentially from 1 and
// names are a drawn first name suffixed with "_<id>", so every name is
// unique while its length and letters still vary.
func Generate(cfg Config) ([]person.Person, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	now := cfg.Now
	if now.IsZero() {
		now = timeutil.Now()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	people := make([]person.Person, cfg.Rows)
	for i := range people {
		id := i + 1
		people[i] = person.Person{
			ID:         id,
			Name:       cfg.FirstNames[rng.Intn(len(cfg.FirstNames))] + "_" + strconv.Itoa(id),
			Age:        randInt(rng, cfg.AgeMin, cfg.AgeMax),
			Department: cfg.Departments[rng.Intn(len(cfg.Departments))],
			Salary:     randFloat(rng, cfg.SalaryMin, cfg.SalaryMax),
			HireDate:   now.AddDate(0, 0, -randInt(rng, 1, cfg.MaxTenureDays)),
		}
	}
	return people, nil
}
