// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grisu2

// smallsString holds the two-ASCII-digit representation of every integer
// 0..99, back to back, so a pair of digits can be copied with one slice
// expression instead of two divisions — the same table grisu2.h's
// Utoa100 uses, and the one Go's own strconv package uses too.
const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

var pow10uint32 = [...]uint32{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8,
}

// utoa100 appends the two-digit decimal representation of n (0 <= n < 100)
// to dst.
func utoa100(dst []byte, n uint32) []byte {
	assert(n < 100, "grisu2: utoa100: n >= 100")
	i := n * 2
	return append(dst, smallsString[i], smallsString[i+1])
}

// generateIntegralDigits appends the decimal digits of n to dst, left to
// right, two digits at a time via utoa100 wherever possible. n must fit
// the range digitGen ever passes it (grisu2.h asserts n <= 798336123, the
// largest integral part digitGen's split can produce, which has at most
// 9 decimal digits).
//
// grisu2.h implements this with chained goto labels so each magnitude
// class falls straight into the next digit pair; here the same left-to-
// right, two-digits-at-a-time output is produced by first counting the
// digits and then peeling pairs off the front — an equivalent control-
// flow shape that preserves digit order and the two-digit table lookup.
func generateIntegralDigits(dst []byte, n uint32) []byte {
	assert(n <= 798336123, "grisu2: generateIntegralDigits: n too large")

	digits := 1
	for digits < len(pow10uint32) && n >= pow10uint32[digits] {
		digits++
	}

	if digits%2 == 1 {
		pow := pow10uint32[digits-1]
		dst = append(dst, byte('0'+n/pow))
		n %= pow
		digits--
	}
	for digits > 0 {
		pow := pow10uint32[digits-2]
		dst = utoa100(dst, n/pow)
		n %= pow
		digits -= 2
	}
	return dst
}

// itoa1000 appends a signed decimal representation of n to dst, with an
// explicit leading '+' or '-', for formatting scientific-notation
// exponents. n must satisfy -1000 < n < 1000.
func itoa1000(dst []byte, n int) []byte {
	assert(n > -1000 && n < 1000, "grisu2: itoa1000: n out of range")

	if n < 0 {
		dst = append(dst, '-')
		n = -n
	} else {
		dst = append(dst, '+')
	}

	switch {
	case n < 10:
		return append(dst, byte('0'+n))
	case n < 100:
		return utoa100(dst, uint32(n))
	default:
		q, r := n/100, n%100
		dst = append(dst, byte('0'+q))
		return utoa100(dst, uint32(r))
	}
}
