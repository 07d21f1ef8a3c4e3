// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grisu2

import (
	"math"
	"strconv"
	"testing"
)

// shortestDecimal runs the full boundary+Grisu2 pipeline for a positive,
// finite float64 and returns its digit string and decimal point
// (decimal_point = length + exponent).
func shortestDecimal(v float64) (digits string, decimalPt int) {
	_, mant, exp, kind := decompose(math.Float64bits(v), &float64info)
	if kind != fpFinite {
		panic("shortestDecimal: v must be finite")
	}
	var buf [32]byte
	d, exponent := shortestDigits(buf[:0], mant, exp, &float64info)
	return string(d), decimalPoint(len(d), exponent)
}

func TestGrisu2ScenarioTable(t *testing.T) {
	tests := []struct {
		v         float64
		digits    string
		decimalPt int
	}{
		{1.0, "1", 1},
		{1.5, "15", 1},
		{0.1, "1", 0},
		{1e21, "1", 22},
		{1e-7, "1", -6},
		{3.1415926535897932, "3141592653589793", 1},
		{1.7976931348623157e308, "17976931348623157", 309},
		{4.9406564584124654e-324, "5", -323},
	}
	for _, tt := range tests {
		digits, dp := shortestDecimal(tt.v)
		if digits != tt.digits || dp != tt.decimalPt {
			t.Errorf("shortestDecimal(%v) = (%q, %d), want (%q, %d)", tt.v, digits, dp, tt.digits, tt.decimalPt)
		}
	}
}

// Every digit string Grisu2 generates must round-trip back to the
// original value under strconv's correctly-rounded parser, and must
// never exceed max_digits10 for a double.
func TestGrisu2RoundTrips(t *testing.T) {
	values := []float64{
		1, -1, 0.5, 2, 3, 10, 100, 1000, 0.001, 123456789.123456,
		math.MaxFloat64, math.SmallestNonzeroFloat64, math.Pi, math.E,
		1.1, 2.2, 9.999999999999998, 100000000000000000000.0,
	}
	for _, v := range values {
		av := math.Abs(v)
		digits, dp := shortestDecimal(av)
		if len(digits) > 17 {
			t.Errorf("shortestDecimal(%v) produced %d digits, want <= 17", av, len(digits))
		}
		text := reconstructDecimalString(digits, dp)
		got, err := strconv.ParseFloat(text, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q) error: %v", text, err)
		}
		if got != av {
			t.Errorf("round-trip failed for %v: digits=%q dp=%d -> %q -> %v", av, digits, dp, text, got)
		}
	}
}

func TestGrisu2RoundTripsRandomSample(t *testing.T) {
	rng := newTestRand(0xC0FFEE)
	const samples = 20000
	for i := 0; i < samples; i++ {
		bitsVal := rng.Uint64()
		f := math.Float64frombits(bitsVal)
		if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
			continue
		}
		av := math.Abs(f)
		digits, dp := shortestDecimal(av)
		text := reconstructDecimalString(digits, dp)
		got, err := strconv.ParseFloat(text, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q) error: %v", text, err)
		}
		if got != av {
			t.Fatalf("round-trip failed for bits=%#x (%v): digits=%q dp=%d -> %q -> %v", bitsVal, av, digits, dp, text, got)
		}
	}
}

// reconstructDecimalString turns (digits, decimalPt) into a plain decimal
// literal strconv.ParseFloat can consume, without relying on this
// package's own formatter.
func reconstructDecimalString(digits string, dp int) string {
	switch {
	case dp <= 0:
		s := "0."
		for i := 0; i < -dp; i++ {
			s += "0"
		}
		return s + digits
	case dp >= len(digits):
		s := digits
		for i := len(digits); i < dp; i++ {
			s += "0"
		}
		return s
	default:
		return digits[:dp] + "." + digits[dp:]
	}
}
