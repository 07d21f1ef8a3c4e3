// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grisu2

// alpha and gamma bound the binary-exponent window digitGen operates in:
// after scaling by a cached power of ten, every diyFp handed to digitGen
// has an exponent e with alpha <= e <= gamma. -60 keeps 10x the
// fractional remainder from overflowing 64 bits; -32 keeps the integral
// part within 32 bits. See cache.go's getCachedPowerForBinaryExponent.
const (
	alpha = -60
	gamma = -32
)

// maxShortestDigits10 bounds the number of digits digitGen ever appends
// for a float64 (the double-precision max_digits10); float32 needs at
// most 9.
const maxShortestDigits10 = 17

// grisu2Round nudges the last digit of buf down so the generated value
// moves as close as possible to w while staying inside [L, H].
//
// distance = (H - w), delta = (H - L), rest = (H - buf*10^kappa), all in
// units of 2^e (the shared exponent of L, w, H); tenKappa is 10^kappa in
// the same units. The loop's three conjuncts guard, in order: (a) don't
// step past w, (b) don't leave [L, H], (c) don't walk farther from w than
// the current digit already is — ties round towards w. Ordering the tests
// this way avoids unsigned underflow, exactly as grisu2.h does.
func grisu2Round(buf []byte, distance, delta, rest, tenKappa uint64) {
	assert(len(buf) >= 1, "grisu2: grisu2Round: empty buffer")
	assert(distance <= delta, "grisu2: grisu2Round: distance > delta")
	assert(rest <= delta, "grisu2: grisu2Round: rest > delta")
	assert(tenKappa > 0, "grisu2: grisu2Round: tenKappa == 0")

	digit := buf[len(buf)-1] - '0'
	for rest < distance &&
		delta-rest >= tenKappa &&
		(rest+tenKappa <= distance || rest+tenKappa-distance < distance-rest) {
		assert(digit != 0, "grisu2: grisu2Round: digit underflow")
		digit--
		rest += tenKappa
	}
	buf[len(buf)-1] = '0' + digit
}

// digitGen generates decimal digits for w = buf*10^exponent, with
// L <= w's decimal value <= H, appending the digits to buf and returning
// the decimal exponent. L, w and H must share the same exponent e, with
// alpha <= e <= gamma. It follows grisu2.h's Grisu2DigitGen: split H into
// an integral part p1 and fractional part p2 at the 2^-e boundary, emit
// p1's digits, then either trim back (if p2 alone already pins the value
// inside [L, H]) or keep generating fractional digits until it does.
func digitGen(buf []byte, L, w, H diyFp) (result []byte, exponent int) {
	assert(w.e >= alpha && w.e <= gamma, "grisu2: digitGen: w.e out of window")
	assert(w.e == L.e && w.e == H.e, "grisu2: digitGen: mismatched exponents")

	distance := sub(H, w).f
	delta := sub(H, L).f

	shift := uint(-H.e)
	oneF := uint64(1) << shift
	p1 := uint32(H.f >> shift)
	p2 := H.f & (oneF - 1)

	assert(p1 <= 798336123, "grisu2: digitGen: integral part too large")

	start := len(buf)
	buf = generateIntegralDigits(buf, p1)
	length := len(buf) - start

	var rest, tenKappa uint64

	if p2 > delta {
		// All of p1's digits are significant. Generate the fractional
		// digits of p2*2^e, multiplying by 10 and peeling off a digit at
		// a time, keeping delta/distance in the same (now shrinking)
		// units.
		m := 0
		for {
			assert(length < maxShortestDigits10, "grisu2: digitGen: too many digits")

			p2 *= 10
			d := p2 >> shift
			p2 &= oneF - 1

			buf = append(buf, byte('0'+d))
			length++
			m++

			delta *= 10
			distance *= 10

			if p2 <= delta {
				exponent = -m
				rest = p2
				tenKappa = oneF
				break
			}
		}
	} else {
		// Too many integer digits were generated; trim back to the
		// largest n < length such that what remains still pins the value
		// inside [L, H].
		k := length
		rest = p2
		tenKappa = oneF

		for n := 0; ; n++ {
			assert(n <= k-1, "grisu2: digitGen: trim overran buffer")

			dn := uint64(buf[start+k-1-n] - '0')
			rn := dn*tenKappa + rest

			if rn > delta {
				length = k - n
				exponent = n
				break
			}
			rest = rn
			tenKappa *= 10
		}
		buf = buf[:start+length]
	}

	grisu2Round(buf[start:start+length], distance, delta, rest, tenKappa)
	return buf, exponent
}

// grisu2 computes the shortest decimal digits for the boundaries b,
// writing them to buf and returning the extended buffer and the decimal
// exponent, such that the digits interpreted as an integer times
// 10^exponent equals the shortest round-tripping decimal for b.v.
func grisu2(buf []byte, b boundaries) (result []byte, exponent int) {
	assert(b.v.e == b.mMinus.e && b.v.e == b.mPlus.e, "grisu2: grisu2: mismatched exponents")

	cached := getCachedPowerForBinaryExponent(b.v.e)
	cMinusK := diyFp{cached.f, cached.e}

	w := mul(b.v, cMinusK)
	wMinus := mul(b.mMinus, cMinusK)
	wPlus := mul(b.mPlus, cMinusK)

	assert(w.e >= alpha && w.e <= gamma, "grisu2: grisu2: scaled exponent out of window")
	assert(wPlus.f >= uint64(1)<<(diyFpPrecision-2), "grisu2: grisu2: wPlus not approximately normalized")

	// Multiply rounds, and cMinusK is itself an approximation, so w± are
	// off by up to 1 ulp; widen by 1 ulp on each side to stay safely
	// inside the true rounding interval.
	L := diyFp{wMinus.f + 1, wMinus.e}
	H := diyFp{wPlus.f - 1, wPlus.e}

	buf, exponent = digitGen(buf, L, w, H)
	exponent += -cached.k
	return buf, exponent
}

// shortestDigits computes the shortest round-tripping decimal digits of
// the strictly positive, finite boundaries derived from mant/exp/flt, via
// computeBoundaries followed by grisu2. buf is the destination for the
// digit bytes (appended, not overwritten from index 0); it returns the
// extended buffer and the decimal exponent.
func shortestDigits(buf []byte, mant uint64, exp int, flt *floatInfo) (result []byte, exponent int) {
	b := computeBoundaries(mant, exp, flt)
	return grisu2(buf, b)
}
