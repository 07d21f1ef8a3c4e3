// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grisu2

import "math"

// floatInfo describes the IEEE-754 bit layout of a binary floating-point
// type: mantissa width, exponent width, and exponent bias.
type floatInfo struct {
	mantBits uint
	expBits  uint
	bias     int
}

var (
	float32info = floatInfo{mantBits: 23, expBits: 8, bias: -127}
	float64info = floatInfo{mantBits: 52, expBits: 11, bias: -1023}
)

// boundaries is the triple (v, mMinus, mPlus): the exact IEEE value
// v = f*2^e, normalized, together with the normalized midpoints to its
// binary neighbors, all three sharing v's exponent.
type boundaries struct {
	v      diyFp
	mMinus diyFp
	mPlus  diyFp
}

// computeBoundaries decomposes a finite, strictly positive binary
// floating-point value into its boundaries, following grisu2.h's
// ComputeBoundaries<Fp>. mant/exp/flt describe the type; mant already
// carries the hidden bit and exp is unbiased, as decompose produces.
func computeBoundaries(mant uint64, exp int, flt *floatInfo) boundaries {
	assert(mant != 0, "grisu2: computeBoundaries: mant == 0")

	// v = f * 2^e, with f == mant including the hidden bit and e == exp -
	// mantBits (so that v's magnitude matches the original IEEE value).
	e := exp - int(flt.mantBits)
	v := diyFp{mant, e}

	// F == 0 means the original fraction bits were all zero, i.e. v sits
	// exactly on a power of two; E > 1 excludes the smallest normal (whose
	// lower neighbor is a denormal, with the ordinary spacing). In that
	// case the lower boundary is half as far away as usual.
	fracIsZero := mant == 1<<flt.mantBits
	notSmallestNormal := exp > flt.bias+1
	lowerBoundaryIsCloser := fracIsZero && notSmallestNormal

	mPlus := diyFp{2*v.f + 1, v.e - 1}
	var mMinus diyFp
	if lowerBoundaryIsCloser {
		mMinus = diyFp{4*v.f - 1, v.e - 2}
	} else {
		mMinus = diyFp{2*v.f - 1, v.e - 1}
	}

	w := v.normalize()
	wPlus := mPlus.normalizeTo(w.e)
	wMinus := mMinus.normalizeTo(wPlus.e)

	return boundaries{v: w, mMinus: wMinus, mPlus: wPlus}
}

// decompose splits an IEEE-754 bit pattern (interpreted via flt) into its
// sign, mantissa (with the hidden bit restored for normals), and
// debiased binary exponent. The special exponent values (all-ones for
// Inf/NaN, all-zero for denormals/zero) are reported via the returned
// kind.
type fpKind int

const (
	fpFinite fpKind = iota
	fpZero
	fpInf
	fpNaN
)

func decompose(bitsVal uint64, flt *floatInfo) (neg bool, mant uint64, exp int, kind fpKind) {
	neg = bitsVal>>(flt.expBits+flt.mantBits) != 0
	rawExp := int(bitsVal>>flt.mantBits) & (1<<flt.expBits - 1)
	mant = bitsVal & (uint64(1)<<flt.mantBits - 1)

	switch rawExp {
	case 1<<flt.expBits - 1:
		if mant != 0 {
			return neg, 0, 0, fpNaN
		}
		return neg, 0, 0, fpInf
	case 0:
		if mant == 0 {
			return neg, 0, 0, fpZero
		}
		// Denormal: no hidden bit, exponent is the minimum.
		return neg, mant, rawExp + 1 + flt.bias, fpFinite
	default:
		mant |= uint64(1) << flt.mantBits
		return neg, mant, rawExp + flt.bias, fpFinite
	}
}

// float64Bits and float32Bits adapt math.Float64bits/math.Float32bits so
// callers elsewhere in the package never touch math/bits-level reinterpret
// casts directly.
func float64Bits(f float64) uint64 { return math.Float64bits(f) }
func float32Bits(f float32) uint64 { return uint64(math.Float32bits(f)) }
