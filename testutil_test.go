// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grisu2

import "math/rand"

// newTestRand returns a deterministically-seeded generator for the
// stress tests, so a failure is reproducible without depending on
// wall-clock entropy; see DESIGN.md for the sample-size rationale.
func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}
