// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{1.0 / 3, "0.333333"},
		{123456, "123456"},
		{1234567, "1.23457e+06"},
		{0.00001, "1e-05"},
		{100.5, "100.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestAppendNumber(t *testing.T) {
	buf := AppendNumber([]byte("x="), 1.5)
	buf = append(buf, ' ')
	buf = AppendNumber(buf, -0.0)
	assert.Equal(t, "x=1.5 0", string(buf))
}
