// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "math/bits"

// extendedFloat is a normalized binary mantissa/exponent pair: the value
// it represents is mantissa * 2**exp, with mantissa having its top bit
// (bit 63) set whenever the value is non-zero and normalized. It is the
// common currency between the fast, moderate and slow paths of the float
// parser, and between the float writer's digit generator and its final
// binary-to-decimal exponent bookkeeping.
type extendedFloat struct {
	mantissa uint64
	exp      int32
}

// normalize left-shifts mantissa until its top bit is set, adjusting exp
// to compensate, and reports the shift applied. A zero mantissa is left
// untouched.
func (f *extendedFloat) normalize() int {
	if f.mantissa == 0 {
		return 0
	}
	shift := bits.LeadingZeros64(f.mantissa)
	f.mantissa <<= uint(shift)
	f.exp -= int32(shift)
	return shift
}
