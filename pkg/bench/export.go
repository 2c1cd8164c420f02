// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package bench

import (
	"fmt"
	"io"
	"runtime"
)

// WriteGoBenchmark writes the results in the Go benchmark text format, one
// line per timed run, so standard tooling (benchstat, x/perf) can parse and
// compare them. datasetRows becomes a sub-benchmark key, keeping results
// from differently sized datasets apart:
//
//	BenchmarkComplexChain/rows=1000000 	1	52054876 ns/op	4 rows/op
func WriteGoBenchmark(w io.Writer, datasetRows int, results []Result) error {
	if _, err := fmt.Fprintf(w, "goos: %s\ngoarch: %s\n", runtime.GOOS, runtime.GOARCH); err != nil {
		return err
	}
	for _, r := range results {
		for _, sample := range r.Samples {
			if _, err := fmt.Fprintf(w, "Benchmark%s/rows=%d \t%d\t%d ns/op\t%d rows/op\n",
				r.Name, datasetRows, 1, sample.Nanoseconds(), r.ResultRows); err != nil {
				return err
			}
		}
	}
	return nil
}
