// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package bench measures the wall-clock latency of operations over a fixed
// dataset. Every operation gets one untimed warm-up run and then a
// configured number of timed iterations; only the operation body is timed,
// never the harness bookkeeping around it. Samples feed both an exact
// per-run series and an HDR histogram, so reports can show true extremes
// alongside stable percentiles.
package bench

import (
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rowbench/pkg/util/timeutil"
	"github.com/codahale/hdrhistogram"
	"github.com/montanaflynn/stats"
)

// Operation is a single benchmarkable unit of work. Run executes it once
// and reports the number of result rows produced, which the harness carries
// through to reports as a cheap cross-run correctness signal.
type Operation struct {
	Name string
	Run  func() int
}

// Config controls how operations are measured.
type Config struct {
	// Iterations is the number of timed runs per operation. A warm-up run
	// precedes them and is never recorded.
	Iterations int
	// GCBetweenRuns forces a garbage collection cycle before every timed
	// run, isolating runs from each other's garbage at the cost of
	// wall-clock time.
	GCBetweenRuns bool
}

// Result is the outcome of measuring one operation.
type Result struct {
	Name string
	// Iterations is the number of timed runs.
	Iterations int
	// ResultRows is the row count reported by the last timed run.
	ResultRows int
	// Samples holds the elapsed time of every timed run, in run order.
	Samples []time.Duration
	// Hist is the latency distribution of the timed runs.
	Hist *hdrhistogram.Histogram
}

// Run measures op under cfg, recording latencies into reg's histogram for
// op.Name.
func Run(reg *Registry, op Operation, cfg Config) (Result, error) {
	if cfg.Iterations <= 0 {
		return Result{}, errors.Newf("%s: iterations must be positive, got %d", op.Name, cfg.Iterations)
	}

	// Warm up caches and let the runtime settle. Not recorded.
	rows := op.Run()

	hist := reg.Get(op.Name)
	samples := make([]time.Duration, 0, cfg.Iterations)
	for i := 0; i < cfg.Iterations; i++ {
		if cfg.GCBetweenRuns {
			runtime.GC()
		}
		start := timeutil.Now()
		rows = op.Run()
		elapsed := timeutil.Since(start)
		hist.Record(elapsed)
		samples = append(samples, elapsed)
	}

	return Result{
		Name:       op.Name,
		Iterations: cfg.Iterations,
		ResultRows: rows,
		Samples:    samples,
		Hist:       hist.Snapshot(),
	}, nil
}

// Summary condenses a Result for reporting.
type Summary struct {
	Name       string
	Iterations int
	ResultRows int
	Min        time.Duration
	Avg        time.Duration
	Max        time.Duration
	StdDev     time.Duration
	P50        time.Duration
	P95        time.Duration
}

// Summarize computes summary statistics for the result. Min, average, max,
// and standard deviation come from the exact samples; the percentiles come
// from the histogram and carry its precision.
func (r Result) Summarize() (Summary, error) {
	if len(r.Samples) == 0 {
		return Summary{}, errors.Newf("%s: no samples to summarize", r.Name)
	}
	ns := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		ns[i] = float64(s.Nanoseconds())
	}
	min, err := stats.Min(ns)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "summarizing %s", r.Name)
	}
	avg, err := stats.Mean(ns)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "summarizing %s", r.Name)
	}
	max, err := stats.Max(ns)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "summarizing %s", r.Name)
	}
	stdDev, err := stats.StandardDeviation(ns)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "summarizing %s", r.Name)
	}
	return Summary{
		Name:       r.Name,
		Iterations: r.Iterations,
		ResultRows: r.ResultRows,
		Min:        time.Duration(min),
		Avg:        time.Duration(avg),
		Max:        time.Duration(max),
		StdDev:     time.Duration(stdDev),
		P50:        time.Duration(r.Hist.ValueAtQuantile(50)),
		P95:        time.Duration(r.Hist.ValueAtQuantile(95)),
	}, nil
}
