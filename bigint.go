// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "math/bits"

// bigIntLimbs is the fixed capacity, in 64-bit limbs, of a bigInt. 64 limbs
// (4096 bits) comfortably covers the worst case for the float slow path: a
// 767-digit decimal significand (the longest that can affect a float64's
// rounding) scaled by the largest power of five needed to compare against
// the binary halfway value, per lexical-parse-float's bigint sizing
// rationale.
const bigIntLimbs = 64

// bigInt is a fixed-capacity, stack-allocated arbitrary-precision unsigned
// binary integer: a little-endian array of uint64 limbs plus a length.
// It never allocates. Operations that would exceed bigIntLimbs set
// truncated instead of panicking or growing; the float slow path treats a
// truncated bigInt as a conservative "exactly at the halfway point",
// which is always a safe (if occasionally pessimistic) answer.
//
// Grounded on db47h-decimal's dec_arith.go limb-vector arithmetic
// (mulAddWWW_g / addMul10VVW_g), generalized from base-10**19 decimal
// limbs to base-2**64 binary limbs since the float parser's slow path
// needs to compare binary magnitudes, not decimal ones.
type bigInt struct {
	limbs     [bigIntLimbs]uint64
	n         int // number of significant limbs; 0 means the value is 0
	truncated bool
}

func (b *bigInt) reset() {
	b.n = 0
	b.truncated = false
}

// setUint64 sets b to v.
func (b *bigInt) setUint64(v uint64) {
	b.reset()
	if v != 0 {
		b.limbs[0] = v
		b.n = 1
	}
}

// normalize drops high zero limbs so n is the true significant length.
func (b *bigInt) normalize() {
	for b.n > 0 && b.limbs[b.n-1] == 0 {
		b.n--
	}
}

// mulSmall multiplies b in place by a single 64-bit value.
func (b *bigInt) mulSmall(m uint64) {
	if m == 0 {
		b.reset()
		return
	}
	var carry uint64
	for i := 0; i < b.n; i++ {
		hi, lo := bits.Mul64(b.limbs[i], m)
		lo2, c := bits.Add64(lo, carry, 0)
		b.limbs[i] = lo2
		carry = hi + c
	}
	if carry != 0 {
		if b.n >= bigIntLimbs {
			b.truncated = true
			return
		}
		b.limbs[b.n] = carry
		b.n++
	}
}

// addSmall adds a single 64-bit value to b in place.
func (b *bigInt) addSmall(a uint64) {
	if a == 0 {
		return
	}
	carry := a
	i := 0
	for carry != 0 && i < b.n {
		s, c := bits.Add64(b.limbs[i], carry, 0)
		b.limbs[i] = s
		carry = c
		i++
	}
	if carry != 0 {
		if b.n >= bigIntLimbs {
			b.truncated = true
			return
		}
		b.limbs[b.n] = carry
		b.n++
	}
}

// mulAddSmall multiplies b by m and adds a, the digit-accumulation step
// the float lexer uses to build an exact arbitrary-precision mantissa one
// radix digit at a time (b = b*radix + digit).
func (b *bigInt) mulAddSmall(m, a uint64) {
	b.mulSmall(m)
	b.addSmall(a)
}

// mulPow5 multiplies b in place by 5^exp, chunking through smallPowersOf5
// so each step fits in mulSmall's single-limb multiplier.
func (b *bigInt) mulPow5(exp int) {
	for exp > 0 {
		chunk := exp
		if chunk > maxPowerOf5Exp {
			chunk = maxPowerOf5Exp
		}
		b.mulSmall(smallPowersOf5[chunk])
		exp -= chunk
	}
}

// mulPow10 multiplies b in place by 10^exp (= 2^exp * 5^exp).
func (b *bigInt) mulPow10(exp int) {
	b.mulPow5(exp)
	b.shiftLeft(exp)
}

// shiftLeft shifts b left by n bits in place.
func (b *bigInt) shiftLeft(n int) {
	if n == 0 || b.n == 0 {
		return
	}
	limbShift := n / 64
	bitShift := uint(n % 64)

	var out [bigIntLimbs]uint64
	var carry uint64
	newN := 0
	for i := 0; i < b.n; i++ {
		dst := i + limbShift
		if dst >= bigIntLimbs {
			b.truncated = true
			break
		}
		v := b.limbs[i]
		var lo uint64
		if bitShift == 0 {
			lo = v
		} else {
			lo = (v << bitShift) | carry
			carry = v >> (64 - bitShift)
		}
		out[dst] = lo
		if dst+1 > newN {
			newN = dst + 1
		}
	}
	if carry != 0 {
		dst := b.n + limbShift
		if dst < bigIntLimbs {
			out[dst] = carry
			if dst+1 > newN {
				newN = dst + 1
			}
		} else {
			b.truncated = true
		}
	}
	b.limbs = out
	b.n = newN
	b.normalize()
}

// bitLen returns the number of bits needed to represent b (0 for b == 0).
func (b *bigInt) bitLen() int {
	if b.n == 0 {
		return 0
	}
	return (b.n-1)*64 + bits.Len64(b.limbs[b.n-1])
}

// hi64 returns the top 64 bits of b left-normalized to the MSB, plus a
// flag reporting whether any lower bit that did not fit was non-zero.
// That flag is the deciding factor for ties-to-even rounding in the float
// slow path: a true value means the discarded tail was non-zero, so the
// true value is strictly above the midpoint represented by the returned
// 64 bits.
func (b *bigInt) hi64() (hi uint64, nonZeroTail bool) {
	if b.n == 0 {
		return 0, false
	}
	topIdx := b.n - 1
	shift := uint(64 - bits.Len64(b.limbs[topIdx]))
	hi = b.limbs[topIdx] << shift
	// boundary is the index of the highest limb not already (partly or
	// wholly) folded into hi: with a fractional shift, limbs[topIdx-1]
	// contributes its top `shift` bits to hi, leaving its low bits as
	// tail; with no shift (shift == 0), limbs[topIdx-1] contributes
	// nothing to hi and is entirely tail.
	boundary := topIdx - 1
	if shift > 0 && topIdx > 0 {
		hi |= b.limbs[topIdx-1] >> (64 - shift)
		if b.limbs[topIdx-1]<<shift != 0 {
			nonZeroTail = true
		}
	} else if shift == 0 {
		boundary = topIdx
	}
	for i := 0; i < boundary; i++ {
		if b.limbs[i] != 0 {
			nonZeroTail = true
			break
		}
	}
	return hi, nonZeroTail || b.truncated
}

// add adds other to b in place. Used by the float writer's digit
// generator to form r+mPlus for comparison against s.
func (b *bigInt) add(other *bigInt) {
	n := b.n
	if other.n > n {
		n = other.n
	}
	var carry uint64
	for i := 0; i < n; i++ {
		var bv, ov uint64
		if i < b.n {
			bv = b.limbs[i]
		}
		if i < other.n {
			ov = other.limbs[i]
		}
		s, c1 := bits.Add64(bv, ov, carry)
		carry = c1
		if i >= bigIntLimbs {
			b.truncated = true
			continue
		}
		b.limbs[i] = s
	}
	if carry != 0 {
		if n >= bigIntLimbs {
			b.truncated = true
		} else {
			b.limbs[n] = carry
			n++
		}
	}
	if n > bigIntLimbs {
		n = bigIntLimbs
	}
	b.n = n
	b.normalize()
}

// sub subtracts other from b in place. The caller must ensure b >= other;
// used by the long divisions (divBig and the Eisel-Lemire table builder)
// and by the float writer's digit extraction.
func (b *bigInt) sub(other *bigInt) {
	var borrow uint64
	for i := 0; i < b.n; i++ {
		var ov uint64
		if i < other.n {
			ov = other.limbs[i]
		}
		d, bo := bits.Sub64(b.limbs[i], ov, borrow)
		b.limbs[i] = d
		borrow = bo
	}
	b.normalize()
}

// bitAt returns bit i of b (0 for i outside [0, b.bitLen())), shared by
// the slow float path's long division below and the Eisel-Lemire table
// builder's (see table_lemire.go).
func bitAt(b *bigInt, i int) uint64 {
	if i < 0 {
		return 0
	}
	limb := i / 64
	if limb >= b.n {
		return 0
	}
	return (b.limbs[limb] >> uint(i%64)) & 1
}

// divBig computes the exact integer quotient of a / b via shift-and-
// subtract binary long division, reporting whether the remainder was
// non-zero (the slow float path folds that into its rounding-tail
// tracking exactly like a truncated low bit). b must be non-zero.
func divBig(a, b *bigInt) (q bigInt, remNonZero bool) {
	if bigIntCmp(a, b) == cmpLess {
		return bigInt{}, a.n != 0
	}
	n := a.bitLen()
	var r bigInt
	for i := n - 1; i >= 0; i-- {
		r.shiftLeft(1)
		if bitAt(a, i) != 0 {
			r.addSmall(1)
		}
		var bit uint64
		if bigIntCmp(&r, b) != cmpLess {
			r.sub(b)
			bit = 1
		}
		q.shiftLeft(1)
		if bit != 0 {
			q.addSmall(1)
		}
	}
	return q, r.n != 0
}

// cmpResult is the three-way comparison outcome used by the slow float
// path's halfway test.
type cmpResult int8

const (
	cmpLess    cmpResult = -1
	cmpEqual   cmpResult = 0
	cmpGreater cmpResult = 1
)

// cmp compares a and b as unsigned magnitudes.
func bigIntCmp(a, b *bigInt) cmpResult {
	if a.n != b.n {
		if a.n < b.n {
			return cmpLess
		}
		return cmpGreater
	}
	for i := a.n - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			if a.limbs[i] < b.limbs[i] {
				return cmpLess
			}
			return cmpGreater
		}
	}
	return cmpEqual
}
