// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "math"

// WriteFloat writes v into buf under format and opts, returning the number
// of bytes written. buf must be at least 32 bytes long, which comfortably
// covers the worst case for both float32 and float64 in scientific
// notation and in fixed notation at opts's default exponent range; a
// caller that widens ExponentNotationRange enough to force fixed notation
// on a very small or very large magnitude (e.g. float64's smallest
// subnormal, whose decimal exponent is -323) needs a correspondingly
// larger buffer for the leading/trailing zero run that notation writes
// out in full.
//
// The digits written are the shortest decimal string that reads back as v
// under round-to-nearest parsing (the "shortest round-trip" guarantee every
// modern float formatter makes); special values use opts's NaN/infinity
// strings, and the fixed-vs-scientific choice follows opts's exponent
// notation range. Digits and exponent are always decimal: format's radix,
// exponent base and exponent radix are not applied.
func WriteFloat[T Float](v T, buf []byte, format NumberFormat, opts *Options) int {
	if opts == nil {
		opts = DefaultOptions()
	}

	bits64, neg := floatBitsOf(v)
	mBits, _, infExp := floatLayout[T]()

	exp := int((bits64 >> uint(mBits)) & uint64(infExp))
	frac := bits64 & (uint64(1)<<uint(mBits) - 1)

	pos := 0
	if neg {
		buf[pos] = '-'
		pos++
	} else if format.requiredMantissaSign() && !format.noPositiveMantissaSign() {
		buf[pos] = '+'
		pos++
	}

	if exp == infExp {
		if frac != 0 {
			return pos + copy(buf[pos:], opts.nanString)
		}
		return pos + copy(buf[pos:], opts.infString)
	}
	if exp == 0 && frac == 0 {
		return pos + writeZero(buf[pos:], format, opts)
	}

	m, e2, lowerBoundaryCloser := decompose(exp, frac, mBits, infExp)
	digits, decExp := dragon4(m, e2, lowerBoundaryCloser)
	if opts.trimTrailingZero {
		digits = trimTrailingZeroDigits(digits)
	}

	useSci := decExp-1 < opts.exponentMin || decExp-1 > opts.exponentMax
	if format.noExponentNotation() {
		useSci = false
	}
	if useSci {
		pos += writeScientific(buf[pos:], digits, decExp, format, opts)
	} else {
		pos += writeFixed(buf[pos:], digits, decExp, format, opts)
	}
	return pos
}

// floatBitsOf returns v's unsigned IEEE bit pattern (sign excluded) and its
// sign, for either float32 or float64, widened to uint64 so the caller's
// exponent/mantissa extraction is type-independent.
func floatBitsOf[T Float](v T) (bits64 uint64, neg bool) {
	if isFloat32[T]() {
		b := math.Float32bits(float32(v))
		return uint64(b &^ f32SignMask), b&f32SignMask != 0
	}
	b := math.Float64bits(float64(v))
	return b &^ f64SignMask, b&f64SignMask != 0
}

// writeZero writes "0" (or "0.0" unless TrimTrailingZero) for a signed
// zero; the sign itself was already written by the caller.
func writeZero(buf []byte, format NumberFormat, opts *Options) int {
	if opts.trimTrailingZero {
		buf[0] = '0'
		return 1
	}
	buf[0] = '0'
	buf[1] = format.DecimalPoint()
	buf[2] = '0'
	return 3
}

// decompose recovers the integer significand m, binary exponent e2 and
// "lower boundary is closer" flag for the shortest-digit generator, from a
// finite non-zero float's biased exponent and explicit mantissa field.
// value == m * 2**e2; lowerBoundaryCloser is set exactly when m is a power
// of two adjacent to a normal range with a differently-sized neighbor below
// it, the one case where the round-trip region is not symmetric around v.
func decompose(exp int, frac uint64, mBits, infExp int) (m uint64, e2 int32, lowerBoundaryCloser bool) {
	// The IEEE-754 bias of a k-bit exponent field is 2**(k-1)-1, i.e. half
	// the all-ones (infinite) exponent code; this holds for f16 and bf16 too.
	bias := infExp >> 1
	if exp == 0 {
		// subnormal: hidden bit is 0, exponent pinned at the minimum.
		return frac, int32(1-bias) - int32(mBits), false
	}
	m = frac | uint64(1)<<uint(mBits)
	e2 = int32(exp-bias) - int32(mBits)
	lowerBoundaryCloser = frac == 0 && exp > 1
	return m, e2, lowerBoundaryCloser
}

// trimTrailingZeroDigits drops trailing zero digits, keeping at least one.
func trimTrailingZeroDigits(digits []byte) []byte {
	n := len(digits)
	for n > 1 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}

// dragon4 computes the shortest sequence of decimal digit values (0-9, not
// ASCII) that round-trips back to m * 2**e2 under nearest-even, plus the
// decimal exponent decExp such that the value equals 0.d[0]d[1]...*10**decExp
// (so decExp is the count of digits that belong before the decimal point).
//
// This is the free-format algorithm from Steele & White's "How to Print
// Floating-Point Numbers Accurately" (also known by its Scheme
// implementation name, Dragon4): generate one digit at a time from the
// exact rational m/2**-e2, stopping as soon as the digits produced so far
// are enough to uniquely identify the original float among its neighbors.
// It is built directly on this package's own bigInt (see bigint.go)
// instead of porting a dense precomputed-table implementation such as
// rsc-tmp/ftoa/schubfach's, since every step here reduces to operations
// (shift, compare, subtract, mulSmall, mulPow10) this package's slow float
// parser already exercises and has been checked against by hand.
func dragon4(m uint64, e2 int32, lowerBoundaryCloser bool) (digits []byte, decExp int) {
	var r, s, mPlus, mMinus bigInt

	if e2 >= 0 {
		var be bigInt
		be.setUint64(1)
		be.shiftLeft(int(e2))
		r = be
		r.mulSmall(m)
		if !lowerBoundaryCloser {
			r.shiftLeft(1)
			s.setUint64(2)
			mPlus, mMinus = be, be
		} else {
			r.shiftLeft(2)
			s.setUint64(4)
			mPlus = be
			mPlus.shiftLeft(1)
			mMinus = be
		}
	} else {
		if !lowerBoundaryCloser {
			r.setUint64(m)
			r.shiftLeft(1)
			s.setUint64(1)
			s.shiftLeft(int(1 - e2))
			mPlus.setUint64(1)
			mMinus.setUint64(1)
		} else {
			r.setUint64(m)
			r.shiftLeft(2)
			s.setUint64(1)
			s.shiftLeft(int(2 - e2))
			mPlus.setUint64(2)
			mMinus.setUint64(1)
		}
	}

	// Estimate k = ceil(log10(value)) from the binary magnitude; the fixup
	// loops below correct for this estimate being off by one in either
	// direction, so it only needs to be close.
	log2v := float64(e2) + math.Log2(float64(m))
	k := int(math.Ceil(log2v * 0.3010299956639812))

	if k >= 0 {
		s.mulPow10(k)
	} else {
		scale := -k
		r.mulPow10(scale)
		mPlus.mulPow10(scale)
		mMinus.mulPow10(scale)
	}

	// Fixup: ensure r+mPlus <= s (first digit < 10) and (r+mPlus)*10 > s
	// (first digit >= 1, i.e. k wasn't overestimated).
	for {
		t := r
		t.add(&mPlus)
		if bigIntCmp(&t, &s) == cmpGreater {
			s.mulSmall(10)
			k++
			continue
		}
		break
	}
	for {
		t := r
		t.add(&mPlus)
		t.mulSmall(10)
		if bigIntCmp(&t, &s) != cmpGreater {
			r.mulSmall(10)
			mPlus.mulSmall(10)
			mMinus.mulSmall(10)
			k--
			continue
		}
		break
	}

	var out [32]byte
	n := 0
	for {
		r.mulSmall(10)
		mPlus.mulSmall(10)
		mMinus.mulSmall(10)

		d := uint64(0)
		for bigIntCmp(&r, &s) != cmpLess {
			r.sub(&s)
			d++
		}

		low := bigIntCmp(&r, &mMinus) == cmpLess
		rPlusPlus := r
		rPlusPlus.add(&mPlus)
		high := bigIntCmp(&rPlusPlus, &s) == cmpGreater

		if !low && !high {
			out[n] = byte(d)
			n++
			continue
		}
		if low && !high {
			out[n] = byte(d)
		} else if high && !low {
			out[n] = byte(d + 1)
		} else {
			twice := r
			twice.shiftLeft(1)
			if bigIntCmp(&twice, &s) != cmpLess {
				out[n] = byte(d + 1)
			} else {
				out[n] = byte(d)
			}
		}
		n++
		break
	}

	digits = make([]byte, n)
	copy(digits, out[:n])
	return digits, k
}

// writeFixed writes digits (values 0-9) with decExp (count of digits
// before the point) in fixed notation, e.g. digits=[1,2,3], decExp=1 ->
// "1.23"; decExp<=0 produces leading fractional zeros, e.g. decExp=-1 ->
// "0.0123".
func writeFixed(buf []byte, digits []byte, decExp int, format NumberFormat, opts *Options) int {
	pos := 0
	point := format.DecimalPoint()
	if decExp <= 0 {
		buf[pos] = '0'
		pos++
		buf[pos] = point
		pos++
		for i := 0; i < -decExp; i++ {
			buf[pos] = '0'
			pos++
		}
		for _, d := range digits {
			buf[pos] = digitToChar[d]
			pos++
		}
		return pos
	}
	i := 0
	for ; i < decExp && i < len(digits); i++ {
		buf[pos] = digitToChar[digits[i]]
		pos++
	}
	for ; i < decExp; i++ {
		buf[pos] = '0'
		pos++
	}
	if i < len(digits) {
		buf[pos] = point
		pos++
		for ; i < len(digits); i++ {
			buf[pos] = digitToChar[digits[i]]
			pos++
		}
	} else if !opts.trimTrailingZero {
		buf[pos] = point
		pos++
		buf[pos] = '0'
		pos++
	}
	return pos
}

// writeScientific writes digits in d.ddd<marker><sign>exp form, where exp =
// decExp-1 (the power of ten multiplying the leading digit).
func writeScientific(buf []byte, digits []byte, decExp int, format NumberFormat, opts *Options) int {
	pos := 0
	buf[pos] = digitToChar[digits[0]]
	pos++
	if len(digits) > 1 {
		buf[pos] = format.DecimalPoint()
		pos++
		for _, d := range digits[1:] {
			buf[pos] = digitToChar[d]
			pos++
		}
	} else if !opts.trimTrailingZero {
		buf[pos] = format.DecimalPoint()
		pos++
		buf[pos] = '0'
		pos++
	}
	buf[pos] = format.ExponentMarker()
	pos++

	e := decExp - 1
	neg := e < 0
	if neg {
		e = -e
	}
	if neg {
		if !format.noExponentSign() {
			buf[pos] = '-'
			pos++
		}
	} else if format.requiredExponentSign() && !format.noPositiveExponentSign() && !format.noExponentSign() {
		buf[pos] = '+'
		pos++
	}

	var tmp [8]byte
	tpos := len(tmp)
	if e == 0 {
		tpos--
		tmp[tpos] = '0'
	}
	for e > 0 {
		tpos--
		tmp[tpos] = digitToChar[e%10]
		e /= 10
	}
	if format.requiredExponentDigits() {
		for len(tmp)-tpos < 2 {
			tpos--
			tmp[tpos] = '0'
		}
	}
	pos += copy(buf[pos:], tmp[tpos:])
	return pos
}
