// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package rowexec

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Numeric constrains the element types aggregations accumulate.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Agg is a single-pass aggregate accumulator. Feed it every value of a
// bucket with Add, then read count, sum, min, max, or mean. One loop over a
// bucket can feed several accumulators at once, which keeps every per-group
// aggregation to a single pass with no intermediate per-row slices.
//
// The zero value is an empty accumulator ready for use. Min, Max, and Mean
// on an empty accumulator are programming errors: callers gate aggregation
// behind minimum-bucket-size thresholds, so an empty accumulator means a
// caller skipped that check. They panic with an assertion failure rather
// than returning a recoverable error.
type Agg[T Numeric] struct {
	count int
	sum   T
	min   T
	max   T
}

// Add accumulates one value.
func (a *Agg[T]) Add(v T) {
	if a.count == 0 {
		a.min = v
		a.max = v
	} else {
		if v < a.min {
			a.min = v
		}
		if v > a.max {
			a.max = v
		}
	}
	a.sum += v
	a.count++
}

// Count returns the number of accumulated values.
func (a *Agg[T]) Count() int {
	return a.count
}

// Sum returns the sum of accumulated values. The sum of an empty
// accumulator is zero.
func (a *Agg[T]) Sum() T {
	return a.sum
}

// Min returns the smallest accumulated value.
func (a *Agg[T]) Min() T {
	a.assertNonEmpty("Min")
	return a.min
}

// Max returns the largest accumulated value.
func (a *Agg[T]) Max() T {
	a.assertNonEmpty("Max")
	return a.max
}

// Mean returns the arithmetic mean, sum/count, as a float64.
func (a *Agg[T]) Mean() float64 {
	a.assertNonEmpty("Mean")
	return float64(a.sum) / float64(a.count)
}

func (a *Agg[T]) assertNonEmpty(op string) {
	if a.count == 0 {
		panic(errors.AssertionFailedf("%s called on an empty aggregate", op))
	}
}
