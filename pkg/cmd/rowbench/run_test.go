// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/rowbench/pkg/bench"
	"github.com/cockroachdb/rowbench/pkg/datagen"
	"github.com/cockroachdb/rowbench/pkg/person"
	"github.com/stretchr/testify/require"
)

func TestSelectOperations(t *testing.T) {
	ops := []bench.Operation{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	selected, err := selectOperations(ops, nil)
	require.NoError(t, err)
	require.Len(t, selected, 3)

	// Selection preserves the canonical order and drops duplicates.
	selected, err = selectOperations(ops, []string{"C", "A", "C"})
	require.NoError(t, err)
	names := make([]string, len(selected))
	for i, op := range selected {
		names[i] = op.Name
	}
	require.Equal(t, []string{"A", "C"}, names)

	_, err = selectOperations(ops, []string{"Nope"})
	require.ErrorContains(t, err, `unknown operation "Nope"`)
	require.ErrorContains(t, err, "A, B, C")
}

func TestAllOperationsDeterministic(t *testing.T) {
	cfg := datagen.DefaultConfig()
	cfg.Rows = 2000
	cfg.Now = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	people, err := datagen.Generate(cfg)
	require.NoError(t, err)
	d := person.NewDataset(people)

	ops := allOperations(d, cfg.Now)
	require.Len(t, ops, 5)
	for _, op := range ops {
		first := op.Run()
		require.Equal(t, first, op.Run(), "operation %s", op.Name)
	}
}

func TestPrintSample(t *testing.T) {
	cfg := datagen.DefaultConfig()
	cfg.Rows = 10
	cfg.Now = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	people, err := datagen.Generate(cfg)
	require.NoError(t, err)
	d := person.NewDataset(people)

	var buf bytes.Buffer
	printSample(&buf, d, 3)
	out := buf.String()
	require.Contains(t, out, "department")
	require.Contains(t, out, people[0].Name)
	require.Contains(t, out, people[2].Name)

	// Asking for more rows than exist prints them all and no more.
	buf.Reset()
	printSample(&buf, d, 100)
	require.Contains(t, buf.String(), people[9].Name)
}

func TestRunBenchmarksEndToEnd(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "results.txt")
	config := runConfig{
		rows:       500,
		seed:       1,
		iterations: 2,
		outputPath: outputPath,
	}
	require.NoError(t, runBenchmarks(config))

	metrics, err := readMetrics(outputPath)
	require.NoError(t, err)
	require.Len(t, metrics, 5)
	require.Contains(t, metrics, "ComplexChain/rows=500")
	require.Contains(t, metrics, "RecentHires/rows=500")
	for name, byUnit := range metrics {
		require.Len(t, byUnit["ns/op"], 2, "%s should have one ns/op sample per iteration", name)
	}
}

func TestRunBenchmarksRejectsUnknownOperation(t *testing.T) {
	config := runConfig{
		rows:       10,
		seed:       1,
		iterations: 1,
		operations: []string{"NotAnOperation"},
	}
	require.ErrorContains(t, runBenchmarks(config), "unknown operation")
}
