// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rowbench/pkg/bench"
	"github.com/cockroachdb/rowbench/pkg/datagen"
	"github.com/cockroachdb/rowbench/pkg/person"
	"github.com/cockroachdb/rowbench/pkg/queries"
	"github.com/cockroachdb/rowbench/pkg/util/humanizeutil"
	"github.com/cockroachdb/rowbench/pkg/util/timeutil"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/maps"
)

// maxExpectedLatency bounds a single timed run; slower runs are clamped
// when recorded into the histogram.
const maxExpectedLatency = 5 * time.Minute

type runConfig struct {
	rows          int64
	seed          uint64
	iterations    int
	gcBetweenRuns bool
	sample        int
	outputPath    string
	configPath    string
	operations    []string
}

func defaultRunConfig() runConfig {
	gen := datagen.DefaultConfig()
	return runConfig{
		rows:       int64(gen.Rows),
		seed:       gen.Seed,
		iterations: 5,
	}
}

// allOperations builds the benchmark operations over d. now anchors the
// time-dependent operations, so every iteration sees identical inputs.
func allOperations(d *person.Dataset, now time.Time) []bench.Operation {
	return []bench.Operation{
		{Name: "ComplexChain", Run: func() int { return len(queries.ComplexChain(d)) }},
		{Name: "AgeGroupRollup", Run: func() int { return len(queries.AgeGroupRollup(d, now)) }},
		{Name: "TransformNames", Run: func() int { return len(queries.TransformNames(d)) }},
		{Name: "DepartmentScan", Run: func() int { return len(queries.DepartmentScan(d)) }},
		{Name: "RecentHires", Run: func() int { return len(queries.RecentHires(d, now)) }},
	}
}

// selectOperations filters ops down to the requested names, preserving the
// canonical order and dropping duplicates. An unknown name is an error.
func selectOperations(ops []bench.Operation, names []string) ([]bench.Operation, error) {
	if len(names) == 0 {
		return ops, nil
	}
	byName := make(map[string]bench.Operation, len(ops))
	for _, op := range ops {
		byName[op.Name] = op
	}
	requested := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := byName[name]; !ok {
			known := maps.Keys(byName)
			sort.Strings(known)
			return nil, errors.Newf("unknown operation %q, expected one of %s",
				name, strings.Join(known, ", "))
		}
		requested[name] = struct{}{}
	}
	selected := make([]bench.Operation, 0, len(requested))
	for _, op := range ops {
		if _, ok := requested[op.Name]; ok {
			selected = append(selected, op)
		}
	}
	return selected, nil
}

func runBenchmarks(config runConfig) error {
	gen := datagen.DefaultConfig()
	gen.Rows = int(config.rows)
	gen.Seed = config.seed
	now := timeutil.Now()
	gen.Now = now

	start := timeutil.Now()
	people, err := datagen.Generate(gen)
	if err != nil {
		return err
	}
	dataset := person.NewDataset(people)
	log.Printf("generated %s rows in %s (seed %d)",
		humanizeutil.Count(config.rows), humanizeutil.Duration(timeutil.Since(start)), config.seed)

	if config.sample > 0 {
		printSample(os.Stdout, dataset, config.sample)
	}

	ops, err := selectOperations(allOperations(dataset, now), config.operations)
	if err != nil {
		return err
	}

	reg := bench.NewRegistry(maxExpectedLatency)
	benchConfig := bench.Config{
		Iterations:    config.iterations,
		GCBetweenRuns: config.gcBetweenRuns,
	}
	results := make([]bench.Result, 0, len(ops))
	summaries := make([]bench.Summary, 0, len(ops))
	for _, op := range ops {
		log.Printf("running %s", op.Name)
		res, err := bench.Run(reg, op, benchConfig)
		if err != nil {
			return err
		}
		summary, err := res.Summarize()
		if err != nil {
			return err
		}
		results = append(results, res)
		summaries = append(summaries, summary)
	}

	bench.WriteTable(os.Stdout, summaries)
	log.Printf("ran %d operations in %s", len(ops), humanizeutil.Duration(reg.Elapsed()))

	if config.outputPath != "" {
		if err := writeResults(config.outputPath, int(config.rows), results); err != nil {
			return err
		}
		log.Printf("wrote results to %s", config.outputPath)
	}
	return nil
}

func writeResults(path string, rows int, results []bench.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating results file %q", path)
	}
	if err := bench.WriteGoBenchmark(file, rows, results); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "writing results to %q", path)
	}
	return file.Close()
}

// printSample renders the first n generated rows, derived fields included,
// so the dataset shape can be eyeballed before a long run.
func printSample(w io.Writer, d *person.Dataset, n int) {
	if n > d.Len() {
		n = d.Len()
	}
	people := d.People()
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"id", "name", "age", "department", "salary", "hired", "bracket", "manager"})
	for row := 0; row < n; row++ {
		p := &people[row]
		table.Append([]string{
			strconv.Itoa(p.ID),
			p.Name,
			strconv.Itoa(p.Age),
			p.Department,
			humanizeutil.Dollars(p.Salary),
			p.HireDate.Format("2006-01-02"),
			person.SalaryBracket(p.Salary),
			strconv.FormatBool(person.IsManager(*p)),
		})
	}
	table.Render()
}
