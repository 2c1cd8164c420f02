// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package humanizeutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	require.Equal(t, "0", Count(0))
	require.Equal(t, "1,000", Count(1000))
	require.Equal(t, "1,000,000", Count(1000000))
	require.Equal(t, "-12,345", Count(-12345))
}

func TestDollars(t *testing.T) {
	require.Equal(t, "$68,434.21", Dollars(68434.21))
	require.Equal(t, "$30,000", Dollars(30000))
}

func TestCountValue(t *testing.T) {
	var val int64
	cv := NewCountValue(&val)
	require.False(t, cv.IsSet())

	require.NoError(t, cv.Set("1000"))
	require.Equal(t, int64(1000), val)
	require.True(t, cv.IsSet())

	require.NoError(t, cv.Set("250k"))
	require.Equal(t, int64(250000), val)
	require.NoError(t, cv.Set("1M"))
	require.Equal(t, int64(1000000), val)
	require.Equal(t, "1,000,000", cv.String())
	require.Equal(t, "count", cv.Type())

	require.Error(t, cv.Set("abc"))
	require.Error(t, cv.Set("1.5"))
	require.Error(t, cv.Set("-5"))
	require.Error(t, cv.Set("10MB"))
}
