// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grisu2

import "math"

// DefaultNaNString and DefaultInfString are the nan_string/inf_string
// values grisu2.h's Dtoa defaults to when a caller has no reason to
// override them.
const (
	DefaultNaNString = "NaN"
	DefaultInfString = "Infinity"
)

// maxFixedInt32 and maxFixedInt64 are 2^p for float32/float64 (p = 24, 53):
// the largest magnitude still exactly representable as an integer at that
// precision, used by useFixedFormat's "value <= 2^p" test.
const (
	maxFixedInt32 = 1 << 24
	maxFixedInt64 = 1 << 53
)

// AppendFloat appends the decimal text form of f to dst and returns the
// extended buffer. bitSize must be 32 or 64 and selects whether f is
// treated as the nearest float32 or as a full float64.
func AppendFloat(dst []byte, f float64, bitSize int, forceTrailingDotZero bool, nanString, infString string) []byte {
	assert(bitSize == 32 || bitSize == 64, "grisu2: AppendFloat: bitSize must be 32 or 64")
	return appendFloat(dst, f, bitSize, forceTrailingDotZero, nanString, infString)
}

// AppendFloat64 is AppendFloat specialized to float64.
func AppendFloat64(dst []byte, f float64, forceTrailingDotZero bool, nanString, infString string) []byte {
	return appendFloat(dst, f, 64, forceTrailingDotZero, nanString, infString)
}

// AppendFloat32 is AppendFloat specialized to float32.
func AppendFloat32(dst []byte, f float32, forceTrailingDotZero bool, nanString, infString string) []byte {
	return appendFloat(dst, float64(f), 32, forceTrailingDotZero, nanString, infString)
}

// FormatFloat is AppendFloat into a fresh string.
func FormatFloat(f float64, bitSize int, forceTrailingDotZero bool, nanString, infString string) string {
	var buf [40]byte
	return string(AppendFloat(buf[:0], f, bitSize, forceTrailingDotZero, nanString, infString))
}

// FormatFloat64 is FormatFloat specialized to float64.
func FormatFloat64(f float64, forceTrailingDotZero bool, nanString, infString string) string {
	return FormatFloat(f, 64, forceTrailingDotZero, nanString, infString)
}

// FormatFloat32 is FormatFloat specialized to float32.
func FormatFloat32(f float32, forceTrailingDotZero bool, nanString, infString string) string {
	return FormatFloat(float64(f), 32, forceTrailingDotZero, nanString, infString)
}

// Shortest returns the shortest round-tripping decimal digits of v and
// the decimal exponent such that the digits, read as an integer, times
// 10^decExp equals v. v must be finite and strictly positive; callers
// that need sign/zero/NaN/Inf handling should use AppendFloat instead.
// This mirrors grisu2.h's split between Grisu2 (digits only) and Dtoa
// (digits plus formatting), for callers — e.g. a JSON encoder — that
// want to apply their own formatting rules to the raw digits.
func Shortest(v float64) (digits []byte, decExp int) {
	assert(v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v), "grisu2: Shortest: v must be finite and positive")
	neg, mant, exp, kind := decompose(float64Bits(v), &float64info)
	assert(!neg && kind == fpFinite, "grisu2: Shortest: v must be finite and positive")
	var buf [32]byte
	return shortestDigits(buf[:0], mant, exp, &float64info)
}

// Shortest32 is Shortest specialized to float32.
func Shortest32(v float32) (digits []byte, decExp int) {
	assert(v > 0 && !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v)), "grisu2: Shortest32: v must be finite and positive")
	neg, mant, exp, kind := decompose(float32Bits(v), &float32info)
	assert(!neg && kind == fpFinite, "grisu2: Shortest32: v must be finite and positive")
	var buf [16]byte
	return shortestDigits(buf[:0], mant, exp, &float32info)
}

// appendFloat is the shared implementation behind AppendFloat and its
// specializations, following grisu2.h's Dtoa: classify, handle sign and
// the three special cases (NaN, Inf, zero) up front, then hand the
// magnitude to Grisu2 and the formatter.
func appendFloat(dst []byte, f float64, bitSize int, forceTrailingDotZero bool, nanString, infString string) []byte {
	var bitsVal uint64
	var flt *floatInfo
	var maxInt float64
	if bitSize == 32 {
		bitsVal = float32Bits(float32(f))
		flt = &float32info
		maxInt = maxFixedInt32
	} else {
		bitsVal = float64Bits(f)
		flt = &float64info
		maxInt = maxFixedInt64
	}

	neg, mant, exp, kind := decompose(bitsVal, flt)

	switch kind {
	case fpNaN:
		// grisu2.h's Dtoa never prepends a sign to NaN.
		return append(dst, nanString...)
	case fpInf:
		if neg {
			dst = append(dst, '-')
		}
		return append(dst, infString...)
	case fpZero:
		if neg {
			dst = append(dst, '-')
		}
		dst = append(dst, '0')
		if forceTrailingDotZero {
			dst = append(dst, '.', '0')
		}
		return dst
	}

	if neg {
		dst = append(dst, '-')
	}

	var scratch [32]byte
	digits, exponent := shortestDigits(scratch[:0], mant, exp, flt)
	dp := decimalPoint(len(digits), exponent)

	// The format-selection threshold must use the same rounded magnitude
	// digit generation used, not the raw float64 argument: for bitSize
	// 32, that's float32(f), matching the bitsVal computed above.
	absValue := f
	if bitSize == 32 {
		absValue = float64(float32(f))
	}
	if neg {
		absValue = -absValue
	}

	if useFixedFormat(dp, absValue, maxInt) {
		return formatFixed(dst, digits, dp, forceTrailingDotZero)
	}
	return formatExponential(dst, digits, dp, forceTrailingDotZero)
}
