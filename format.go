// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "strconv"

// NumberPrecision is the number of significant digits used for every
// number a vector backend writes.
const NumberPrecision = 6

// FormatNumber formats v with NumberPrecision significant digits, a '.'
// decimal point and no digit grouping, independent of locale. Negative
// zero is written as "0".
func FormatNumber(v float64) string {
	return string(AppendNumber(nil, v))
}

// AppendNumber appends the FormatNumber form of v to dst.
func AppendNumber(dst []byte, v float64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	return strconv.AppendFloat(dst, v, 'g', NumberPrecision, 64)
}
