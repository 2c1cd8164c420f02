// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package humanizeutil

import (
	"flag"
	"math"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

// Count formats a count with thousands separators (e.g. 1,000,000).
func Count(val int64) string {
	return humanize.Comma(val)
}

// Dollars formats a currency amount with thousands separators
// (e.g. $68,434.21).
func Dollars(val float64) string {
	return "$" + humanize.Commaf(math.Round(val*100)/100)
}

// CountValue is a struct that implements flag.Value and pflag.Value suitable
// to create command-line parameters that accept row counts either as plain
// integers or with an SI suffix ("250k", "2M"). The value is written
// atomically, so that it is safe to read from a process spawned before
// command-line argument handling.
type CountValue struct {
	val   *int64
	isSet bool
}

var _ flag.Value = &CountValue{}
var _ pflag.Value = &CountValue{}

// NewCountValue creates a new pflag.Value bound to the specified int64
// variable. It also happens to be a flag.Value.
func NewCountValue(val *int64) *CountValue {
	return &CountValue{val: val}
}

// Set implements the flag.Value and pflag.Value interfaces.
func (c *CountValue) Set(s string) error {
	v, unit, err := humanize.ParseSI(s)
	if err != nil {
		return errors.Wrapf(err, "invalid count %q", s)
	}
	if unit != "" {
		return errors.Newf("count %q carries a unit", s)
	}
	if v < 0 || v > math.MaxInt64 || v != math.Trunc(v) {
		return errors.Newf("count %q is not a non-negative integer", s)
	}
	atomic.StoreInt64(c.val, int64(v))
	c.isSet = true
	return nil
}

// Type implements the pflag.Value interface.
func (c *CountValue) Type() string {
	return "count"
}

// String implements the flag.Value and pflag.Value interfaces.
func (c *CountValue) String() string {
	if c.val == nil {
		return Count(0)
	}
	return Count(atomic.LoadInt64(c.val))
}

// IsSet returns true iff Set has successfully been called.
func (c *CountValue) IsSet() bool {
	return c.isSet
}
