// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package humanizeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	for _, tc := range []struct {
		val      time.Duration
		expected string
	}{
		{0, "0s"},
		{512 * time.Nanosecond, "512ns"},
		{123456 * time.Nanosecond, "123µs"},
		{999500 * time.Nanosecond, "1ms"},
		{12345678 * time.Nanosecond, "12ms"},
		{12345678912 * time.Nanosecond, "12.3s"},
		{90 * time.Second, "1m30s"},
	} {
		require.Equal(t, tc.expected, Duration(tc.val), "%d", tc.val)
	}
}
