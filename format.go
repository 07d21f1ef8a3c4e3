// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grisu2

// decimalPoint locates the decimal point relative to digits: the value
// equals digits interpreted as an integer, times 10^(decimalPoint -
// len(digits)). Equivalently, decimalPoint is the number of digits that
// belong before the point (possibly zero or negative).
func decimalPoint(length, exponent int) int {
	return length + exponent
}

// useFixedFormat decides between fixed-point and scientific notation,
// following grisu2.h's active (non-ECMAScript) policy: fixed iff the
// decimal point isn't too far left and the magnitude is small enough to
// be an exactly representable integer at the type's precision. maxInt is
// 2^p for the value's precision (2^53 for double, 2^24 for float).
func useFixedFormat(dp int, absValue, maxInt float64) bool {
	return dp > -6 && absValue <= maxInt
}

// formatFixed appends digits to dst in fixed-point notation, following
// grisu2.h's FormatFixed and its three sub-cases: trailing zeros with no
// fraction, a decimal point inside the digit string, and leading zeros
// after the point.
func formatFixed(dst, digits []byte, dp int, forceTrailingDotZero bool) []byte {
	length := len(digits)

	switch {
	case length <= dp:
		// digits, then (dp-length) zeros, then an optional ".0".
		dst = append(dst, digits...)
		for i := length; i < dp; i++ {
			dst = append(dst, '0')
		}
		if forceTrailingDotZero {
			dst = append(dst, '.', '0')
		}

	case dp > 0:
		// Decimal point falls inside the digit string.
		dst = append(dst, digits[:dp]...)
		dst = append(dst, '.')
		dst = append(dst, digits[dp:]...)

	default:
		// dp <= 0: "0." followed by -dp leading zeros, then all digits.
		dst = append(dst, '0', '.')
		for i := 0; i < -dp; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, digits...)
	}
	return dst
}

// formatExponential appends digits to dst in "d.ddddeSdd" scientific
// notation, following grisu2.h's FormatExponential. The exponent is
// dp-1 (the power of ten of the leading digit); it is always signed and
// written with itoa1000, giving 1-3 digits with no leading zeros.
func formatExponential(dst, digits []byte, dp int, forceTrailingDotZero bool) []byte {
	length := len(digits)

	dst = append(dst, digits[0])
	if length > 1 {
		dst = append(dst, '.')
		dst = append(dst, digits[1:]...)
	} else if forceTrailingDotZero {
		dst = append(dst, '.', '0')
	}

	dst = append(dst, 'e')
	dst = itoa1000(dst, dp-1)
	return dst
}
