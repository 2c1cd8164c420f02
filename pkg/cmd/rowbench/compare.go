// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rowbench/pkg/util/humanizeutil"
	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/maps"
	"golang.org/x/perf/benchfmt"
)

// skipComparison disables threshold checking; the comparison is printed but
// never fails the command.
const skipComparison = math.MaxFloat64

type compareConfig struct {
	oldPath   string
	newPath   string
	threshold float64
}

func defaultCompareConfig() compareConfig {
	return compareConfig{
		threshold: skipComparison, // report only by default
	}
}

type compare struct {
	compareConfig
}

func newCompare(config compareConfig) *compare {
	return &compare{compareConfig: config}
}

// runMetrics holds the measurements of one exported run, keyed by benchmark
// name and then by unit.
type runMetrics map[string]map[string][]float64

// readMetrics parses a file of Go benchmark output, as written by the run
// command's --output flag.
func readMetrics(path string) (runMetrics, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening results %q", path)
	}
	defer file.Close()

	metrics := make(runMetrics)
	reader := benchfmt.NewReader(file, path)
	for reader.Scan() {
		switch rec := reader.Result().(type) {
		case *benchfmt.Result:
			name := strings.TrimPrefix(rec.Name.String(), "Benchmark")
			byUnit, ok := metrics[name]
			if !ok {
				byUnit = make(map[string][]float64)
				metrics[name] = byUnit
			}
			for _, v := range rec.Values {
				byUnit[v.Unit] = append(byUnit[v.Unit], v.Value)
			}
		case *benchfmt.SyntaxError:
			return nil, errors.Newf("%s", rec.Error())
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return metrics, nil
}

// comparison is the delta of one benchmark between two runs.
type comparison struct {
	name    string
	oldNs   float64
	newNs   float64
	delta   float64 // percent change in mean ns/op; negative is faster
	oldRows float64
	newRows float64
}

// createComparisons pairs up the benchmarks present in both runs, in name
// order. Benchmarks present in only one run are skipped: names change when
// operations are added, renamed, or run against a different row count.
func (c *compare) createComparisons(oldMetrics, newMetrics runMetrics) []comparison {
	names := maps.Keys(oldMetrics)
	sort.Strings(names)

	comparisons := make([]comparison, 0, len(names))
	for _, name := range names {
		newByUnit, ok := newMetrics[name]
		if !ok {
			continue
		}
		oldNs := mean(oldMetrics[name]["ns/op"])
		newNs := mean(newByUnit["ns/op"])
		if oldNs == 0 || newNs == 0 {
			continue
		}
		comparisons = append(comparisons, comparison{
			name:    name,
			oldNs:   oldNs,
			newNs:   newNs,
			delta:   (newNs - oldNs) / oldNs * 100,
			oldRows: mean(oldMetrics[name]["rows/op"]),
			newRows: mean(newByUnit["rows/op"]),
		})
	}
	return comparisons
}

func mean(samples []float64) float64 {
	m, err := stats.Mean(samples)
	if err != nil {
		return 0
	}
	return m
}

func (c *compare) writeComparisons(w io.Writer, comparisons []comparison) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"benchmark", "old", "new", "delta", "rows/op"})
	for _, cmp := range comparisons {
		rows := humanizeutil.Count(int64(cmp.newRows))
		if cmp.oldRows != cmp.newRows {
			// A row-count change means the runs did not compute the same
			// result, so the timing delta is suspect.
			rows = fmt.Sprintf("%s -> %s (!)",
				humanizeutil.Count(int64(cmp.oldRows)), humanizeutil.Count(int64(cmp.newRows)))
		}
		table.Append([]string{
			cmp.name,
			humanizeutil.Duration(time.Duration(cmp.oldNs)),
			humanizeutil.Duration(time.Duration(cmp.newNs)),
			fmt.Sprintf("%+.2f%%", cmp.delta),
			rows,
		})
	}
	table.Render()
}

// compareUsingThreshold fails when any benchmark's mean ns/op grew by more
// than the threshold fraction.
func (c *compare) compareUsingThreshold(comparisons []comparison) error {
	var regressions []string
	for _, cmp := range comparisons {
		if cmp.delta > c.threshold*100 {
			regressions = append(regressions,
				fmt.Sprintf("%s: %+.2f%%", cmp.name, cmp.delta))
		}
	}
	if len(regressions) > 0 {
		return errors.Newf("benchmark regressions of more than %.2f%%:\n%s",
			c.threshold*100, strings.Join(regressions, "\n"))
	}
	return nil
}
