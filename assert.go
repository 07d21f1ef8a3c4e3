// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grisu2

// debugAssertions gates the internal range/index checks scattered through
// the Grisu2 pipeline (exponent windows, table index bounds, digit counts,
// buffer widths): a single package-level toggle rather than a build tag,
// so a debug build is just "set this to true and rebuild", with zero cost
// when left false.
const debugAssertions = false

// assert panics with msg if cond is false and debugAssertions is enabled.
// It compiles away to nothing (the call is still emitted, but the branch
// is never true) when debugAssertions is false, so the release build
// throws no exceptions and returns no error codes.
func assert(cond bool, msg string) {
	if debugAssertions && !cond {
		panic(msg)
	}
}
