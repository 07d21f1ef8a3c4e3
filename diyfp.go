// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grisu2

import "math/bits"

// diyFp (do-it-yourself floating point) represents an extended-precision
// binary floating-point number f * 2^e, with more precision than a
// float64: f is a full 64-bit unsigned significand, e is a signed binary
// exponent. There is no sign bit; callers strip the sign before working
// with a diyFp.
type diyFp struct {
	f uint64
	e int
}

// diyFpPrecision is the number of significant bits diyFp carries.
const diyFpPrecision = 64

// sub returns x - y. Both operands must share the same exponent and
// x.f must be >= y.f; sub performs no rounding.
func sub(x, y diyFp) diyFp {
	assert(x.e == y.e, "grisu2: sub: mismatched exponents")
	assert(x.f >= y.f, "grisu2: sub: x.f < y.f")
	return diyFp{x.f - y.f, x.e}
}

// mul returns x * y, correctly rounded to 64 bits (ties rounded away from
// zero, towards +Inf). Only the upper 64 bits of the full 128-bit product
// survive; the result is not necessarily normalized.
func mul(x, y diyFp) diyFp {
	hi, lo := bits.Mul64(x.f, y.f)
	// Round the 128-bit product by adding 2^63 before dropping the low
	// half: this is round-half-up on the dropped bits.
	hi += lo >> 63
	return diyFp{hi, x.e + y.e + diyFpPrecision}
}

// normalize shifts f left until its top bit is set, decrementing e by the
// shift count. f must be nonzero.
func (x diyFp) normalize() diyFp {
	assert(x.f != 0, "grisu2: normalize: f == 0")
	shift := bits.LeadingZeros64(x.f)
	return diyFp{x.f << uint(shift), x.e - shift}
}

// normalizeTo shifts f left so that the result has exponent e. The shift
// count (x.e - e) must be non-negative and must not lose any set bits.
func (x diyFp) normalizeTo(e int) diyFp {
	delta := x.e - e
	assert(delta >= 0, "grisu2: normalizeTo: target exponent is higher")
	assert((x.f<<uint(delta))>>uint(delta) == x.f, "grisu2: normalizeTo: shift loses bits")
	return diyFp{x.f << uint(delta), e}
}
