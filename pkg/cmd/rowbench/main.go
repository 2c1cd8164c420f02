// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rowbench/pkg/util/humanizeutil"
	"github.com/spf13/cobra"
)

func makeRowbenchCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     "rowbench [command] (flags)",
		Short:   "rowbench measures analytical query operations over an in-memory person dataset.",
		Version: "v0.0",
		Long: `rowbench measures analytical query operations over an in-memory person dataset. Use it to:

- generate a deterministic synthetic dataset and time the query operations against it, using the run subcommand.
- compare the exported results of two runs and flag regressions, using the compare subcommand.

Typical usage:
    rowbench run --rows=1M --iterations=5 --output=new.txt
        Time every operation against a million-row dataset and export the results to new.txt.

    rowbench run --config=suite.yaml
        Run with parameters taken from a YAML suite definition; explicit flags win over the suite.

    rowbench compare old.txt new.txt --threshold=0.05
        Compare two exported runs and fail if any operation slowed down by more than 5%.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands.
	command.AddCommand(makeCompareCommand())
	command.AddCommand(makeRunCommand())

	return command
}

func makeRunCommand() *cobra.Command {
	config := defaultRunConfig()
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		if config.configPath != "" {
			suite, err := loadSuite(config.configPath)
			if err != nil {
				return err
			}
			applySuite(cmd.Flags(), &config, suite)
		}
		return runBenchmarks(config)
	}

	cmd := &cobra.Command{
		Use:   "run (flags)",
		Short: "Generate a synthetic dataset and time the query operations against it.",
		Long: `Generate a synthetic dataset and time the query operations against it.

Each operation gets one untimed warm-up run followed by the configured
number of timed runs. A summary table goes to standard output; pass
--output to also export the raw results in Go benchmark format for use
with the compare subcommand or standard tooling such as benchstat.`,
		Args: cobra.ExactArgs(0),
		RunE: runCmdFunc,
	}
	cmd.Flags().Var(humanizeutil.NewCountValue(&config.rows), "rows", "number of people to generate; accepts SI suffixes, e.g. 250k or 1M")
	cmd.Flags().Uint64Var(&config.seed, "seed", config.seed, "seed for the dataset generator")
	cmd.Flags().IntVar(&config.iterations, "iterations", config.iterations, "number of timed runs per operation")
	cmd.Flags().BoolVar(&config.gcBetweenRuns, "gc-between-runs", config.gcBetweenRuns, "force a garbage collection cycle before every timed run")
	cmd.Flags().IntVar(&config.sample, "sample", config.sample, "print this many generated rows before running, 0 to disable")
	cmd.Flags().StringVar(&config.outputPath, "output", config.outputPath, "write results in Go benchmark format to this file")
	cmd.Flags().StringVar(&config.configPath, "config", config.configPath, "load run parameters from a YAML suite file")
	cmd.Flags().StringSliceVar(&config.operations, "operations", config.operations, "operations to run, e.g. ComplexChain,RecentHires; default all")
	return cmd
}

func makeCompareCommand() *cobra.Command {
	config := defaultCompareConfig()
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		config.oldPath = args[0]
		config.newPath = args[1]
		c := newCompare(config)

		oldMetrics, err := readMetrics(c.oldPath)
		if err != nil {
			return err
		}
		newMetrics, err := readMetrics(c.newPath)
		if err != nil {
			return err
		}
		comparisons := c.createComparisons(oldMetrics, newMetrics)
		if len(comparisons) == 0 {
			return errors.Newf("no common benchmarks between %s and %s", c.oldPath, c.newPath)
		}
		c.writeComparisons(os.Stdout, comparisons)

		// If the threshold is set, fail the run on regressions.
		if c.threshold != skipComparison {
			return c.compareUsingThreshold(comparisons)
		}
		return nil
	}

	cmd := &cobra.Command{
		Use:   "compare <old-file> <new-file>",
		Short: "Compare two exported benchmark result files.",
		Long: `Compare two exported benchmark result files.

- both files should contain results exported by the run command's --output flag.
- old is generally the results from a stable baseline, and new the results from the code under test.`,
		Args: cobra.ExactArgs(2),
		RunE: runCmdFunc,
	}
	cmd.Flags().Float64Var(&config.threshold, "threshold", config.threshold, "fraction of ns/op slowdown tolerated before failing, e.g. 0.05 for 5%")
	return cmd
}

func main() {
	cmd := makeRowbenchCommand()
	if err := cmd.Execute(); err != nil {
		log.Printf("ERROR: %+v", err)
		os.Exit(1)
	}
}
