// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package bench

import (
	"io"
	"strconv"

	"github.com/cockroachdb/rowbench/pkg/util/humanizeutil"
	"github.com/olekukonko/tablewriter"
)

// WriteTable renders the summaries as an aligned table, one row per
// operation, in the order given.
func WriteTable(w io.Writer, summaries []Summary) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{
		"operation", "iters", "min", "avg", "p50", "p95", "max", "stddev", "rows/op",
	})
	for _, s := range summaries {
		table.Append([]string{
			s.Name,
			strconv.Itoa(s.Iterations),
			humanizeutil.Duration(s.Min),
			humanizeutil.Duration(s.Avg),
			humanizeutil.Duration(s.P50),
			humanizeutil.Duration(s.P95),
			humanizeutil.Duration(s.Max),
			humanizeutil.Duration(s.StdDev),
			humanizeutil.Count(int64(s.ResultRows)),
		})
	}
	table.Render()
}
