// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grisu2

// cachedPower is a table entry c = f * 2^e ~= 10^k, with f normalized
// (top bit set).
type cachedPower struct {
	f uint64
	e int // binary exponent
	k int // decimal exponent
}

const (
	cachedPowersSize      = 79
	cachedPowersMinDecExp = -300
	cachedPowersMaxDecExp = 324
	cachedPowersDecExpStep = 8
)

// cachedPowers holds one entry per decimal exponent in
// {-300, -292, ..., 316, 324} — 79 entries spaced 8 apart, chosen so that
// for any IEEE double/float binary exponent, some entry scales the value
// into the [alpha, gamma] = [-60, -32] window digitGen needs. This is
// grisu2.h's kCachedPowers table; a Grisu3 fallback that needs to cover
// every possible decimal exponent exactly (not just scale into a target
// window) would need a wider table, but pure Grisu2 never runs outside
// this range because every finite float lands within it after
// normalization.
var cachedPowers = [cachedPowersSize]cachedPower{
	{0xAB70FE17C79AC6CA, -1060, -300},
	{0xFF77B1FCBEBCDC4F, -1034, -292},
	{0xBE5691EF416BD60C, -1007, -284},
	{0x8DD01FAD907FFC3C, -980, -276},
	{0xD3515C2831559A83, -954, -268},
	{0x9D71AC8FADA6C9B5, -927, -260},
	{0xEA9C227723EE8BCB, -901, -252},
	{0xAECC49914078536D, -874, -244},
	{0x823C12795DB6CE57, -847, -236},
	{0xC21094364DFB5637, -821, -228},
	{0x9096EA6F3848984F, -794, -220},
	{0xD77485CB25823AC7, -768, -212},
	{0xA086CFCD97BF97F4, -741, -204},
	{0xEF340A98172AACE5, -715, -196},
	{0xB23867FB2A35B28E, -688, -188},
	{0x84C8D4DFD2C63F3B, -661, -180},
	{0xC5DD44271AD3CDBA, -635, -172},
	{0x936B9FCEBB25C996, -608, -164},
	{0xDBAC6C247D62A584, -582, -156},
	{0xA3AB66580D5FDAF6, -555, -148},
	{0xF3E2F893DEC3F126, -529, -140},
	{0xB5B5ADA8AAFF80B8, -502, -132},
	{0x87625F056C7C4A8B, -475, -124},
	{0xC9BCFF6034C13053, -449, -116},
	{0x964E858C91BA2655, -422, -108},
	{0xDFF9772470297EBD, -396, -100},
	{0xA6DFBD9FB8E5B88F, -369, -92},
	{0xF8A95FCF88747D94, -343, -84},
	{0xB94470938FA89BCF, -316, -76},
	{0x8A08F0F8BF0F156B, -289, -68},
	{0xCDB02555653131B6, -263, -60},
	{0x993FE2C6D07B7FAC, -236, -52},
	{0xE45C10C42A2B3B06, -210, -44},
	{0xAA242499697392D3, -183, -36},
	{0xFD87B5F28300CA0E, -157, -28},
	{0xBCE5086492111AEB, -130, -20},
	{0x8CBCCC096F5088CC, -103, -12},
	{0xD1B71758E219652C, -77, -4},
	{0x9C40000000000000, -50, 4},
	{0xE8D4A51000000000, -24, 12},
	{0xAD78EBC5AC620000, 3, 20},
	{0x813F3978F8940984, 30, 28},
	{0xC097CE7BC90715B3, 56, 36},
	{0x8F7E32CE7BEA5C70, 83, 44},
	{0xD5D238A4ABE98068, 109, 52},
	{0x9F4F2726179A2245, 136, 60},
	{0xED63A231D4C4FB27, 162, 68},
	{0xB0DE65388CC8ADA8, 189, 76},
	{0x83C7088E1AAB65DB, 216, 84},
	{0xC45D1DF942711D9A, 242, 92},
	{0x924D692CA61BE758, 269, 100},
	{0xDA01EE641A708DEA, 295, 108},
	{0xA26DA3999AEF774A, 322, 116},
	{0xF209787BB47D6B85, 348, 124},
	{0xB454E4A179DD1877, 375, 132},
	{0x865B86925B9BC5C2, 402, 140},
	{0xC83553C5C8965D3D, 428, 148},
	{0x952AB45CFA97A0B3, 455, 156},
	{0xDE469FBD99A05FE3, 481, 164},
	{0xA59BC234DB398C25, 508, 172},
	{0xF6C69A72A3989F5C, 534, 180},
	{0xB7DCBF5354E9BECE, 561, 188},
	{0x88FCF317F22241E2, 588, 196},
	{0xCC20CE9BD35C78A5, 614, 204},
	{0x98165AF37B2153DF, 641, 212},
	{0xE2A0B5DC971F303A, 667, 220},
	{0xA8D9D1535CE3B396, 694, 228},
	{0xFB9B7CD9A4A7443C, 720, 236},
	{0xBB764C4CA7A44410, 747, 244},
	{0x8BAB8EEFB6409C1A, 774, 252},
	{0xD01FEF10A657842C, 800, 260},
	{0x9B10A4E5E9913129, 827, 268},
	{0xE7109BFBA19C0C9D, 853, 276},
	{0xAC2820D9623BF429, 880, 284},
	{0x80444B5E7AA7CF85, 907, 292},
	{0xBF21E44003ACDD2D, 933, 300},
	{0x8E679C2F5E44FF8F, 960, 308},
	{0xD433179D9C8CB841, 986, 316},
	{0x9E19DB92B4E31BA9, 1013, 324},
}

// getCachedPowerForBinaryExponent returns a cached power c = f*2^e ~= 10^-k
// such that alpha <= c.e + e + 64 <= gamma, for a normalized diyFp with
// binary exponent e.
func getCachedPowerForBinaryExponent(e int) cachedPower {
	assert(e >= -1500 && e <= 1500, "grisu2: getCachedPowerForBinaryExponent: exponent out of range")

	// k = ceil((alpha - e - 1) * log10(2)), computed exactly with integers.
	// log10(2) ~= 78913 / 2^18.
	f := alpha - e - 1
	k := (f * 78913) / (1 << 18)
	if f > 0 {
		k++
	}

	index := (-cachedPowersMinDecExp + k + (cachedPowersDecExpStep - 1)) / cachedPowersDecExpStep
	assert(index >= 0 && index < cachedPowersSize, "grisu2: getCachedPowerForBinaryExponent: index out of range")

	c := cachedPowers[index]
	assert(alpha <= c.e+e+diyFpPrecision, "grisu2: getCachedPowerForBinaryExponent: below alpha")
	assert(gamma >= c.e+e+diyFpPrecision, "grisu2: getCachedPowerForBinaryExponent: above gamma")
	return c
}
