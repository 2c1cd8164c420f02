// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/oserror"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// suiteConfig is the YAML schema of a run suite file. Pointer fields
// distinguish absent keys from zero values; absent keys keep their
// defaults.
//
//	rows: 250000
//	seed: 7
//	iterations: 10
//	gc-between-runs: true
//	operations: [ComplexChain, RecentHires]
type suiteConfig struct {
	Rows          *int64   `yaml:"rows"`
	Seed          *uint64  `yaml:"seed"`
	Iterations    *int     `yaml:"iterations"`
	GCBetweenRuns *bool    `yaml:"gc-between-runs"`
	Operations    []string `yaml:"operations"`
}

func loadSuite(path string) (suiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if oserror.IsNotExist(err) {
			return suiteConfig{}, errors.Newf("suite file %q does not exist", path)
		}
		return suiteConfig{}, errors.Wrapf(err, "reading suite file %q", path)
	}
	var suite suiteConfig
	if err := yaml.UnmarshalStrict(data, &suite); err != nil {
		return suiteConfig{}, errors.Wrapf(err, "parsing suite file %q", path)
	}
	return suite, nil
}

// applySuite copies the suite's settings into config. Flags changed
// explicitly on the command line win over the suite.
func applySuite(flags *pflag.FlagSet, config *runConfig, suite suiteConfig) {
	if suite.Rows != nil && !flags.Changed("rows") {
		config.rows = *suite.Rows
	}
	if suite.Seed != nil && !flags.Changed("seed") {
		config.seed = *suite.Seed
	}
	if suite.Iterations != nil && !flags.Changed("iterations") {
		config.iterations = *suite.Iterations
	}
	if suite.GCBetweenRuns != nil && !flags.Changed("gc-between-runs") {
		config.gcBetweenRuns = *suite.GCBetweenRuns
	}
	if len(suite.Operations) > 0 && !flags.Changed("operations") {
		config.operations = suite.Operations
	}
}
