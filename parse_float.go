// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// ParseFloat parses the entirety of b as a floating-point value of type T
// under format, returning ErrInvalidDigit if any byte past a valid prefix
// remains unconsumed.
func ParseFloat[T Float](b []byte, format NumberFormat, opts *Options) (T, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	v, n, err := parseFloatImpl[T](b, format, opts)
	if err != nil {
		return 0, err
	}
	if n != len(b) {
		return 0, newError(ErrInvalidDigit, n)
	}
	return v, nil
}

// ParseFloatPartial parses the longest valid prefix of b as a
// floating-point value of type T, returning the number of bytes consumed.
// Trailing bytes that don't extend the number are not an error.
func ParseFloatPartial[T Float](b []byte, format NumberFormat, opts *Options) (T, int, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	v, n, err := parseFloatImpl[T](b, format, opts)
	if err != nil {
		return 0, n, err
	}
	return v, n, nil
}

// parseFloatImpl lexes one float token, then escalates through
// successively more expensive (and more rigorous) evaluation strategies
// until one of them can certify its answer: the special tokens, the
// exact Clinger fast path, the Eisel-Lemire moderate path, and finally
// the arbitrary-precision slow path.
func parseFloatImpl[T Float](b []byte, format NumberFormat, opts *Options) (result T, consumed int, err *Error) {
	lx, lexErr := lexFloat(b, format, opts)
	if lexErr != nil {
		return 0, lx.consumed, lexErr
	}
	if lx.isNaN {
		return buildNaN[T](lx.neg), lx.consumed, nil
	}
	if lx.isInf {
		return buildInf[T](lx.neg), lx.consumed, nil
	}
	if lx.fastDigits == 0 {
		return buildFloat[T](0, lx.neg), lx.consumed, nil
	}

	radix := format.Radix()
	// The Clinger and Eisel-Lemire fast paths both hardcode base 10 (a
	// pow10Table lookup and a power-of-five mantissa table respectively);
	// they're only sound when lx.exp -- tracked in format.ExponentBase()
	// units -- is itself a base-10 exponent, i.e. radix and exponentBase
	// both equal 10 (the case every NumberFormat the builder produces by
	// default satisfies; see lex_float.go's exponentScaleFactor).
	decimalFast := radix == 10 && format.ExponentBase() == 10

	if opts.incorrect && decimalFast {
		f := clingerApprox(lx.fast, lx.exp)
		v := T(f)
		if lx.neg {
			v = -v
		}
		return v, lx.consumed, nil
	}

	if decimalFast {
		// A float32 result is the float64 result narrowed, which rounds
		// correctly only while the mantissa and the power of ten are both
		// exact float32 values (mantissa < 2**24, |exp| <= 10).
		f32ok := !isFloat32[T]() || (lx.fast < 1<<24 && lx.exp >= -10 && lx.exp <= 10)
		if f, ok := clingerExact(lx.fast, lx.exp, radix); ok && f32ok {
			v := T(f)
			if lx.neg {
				v = -v
			}
			return v, lx.consumed, nil
		}
	}

	mBits, bias, infExp := floatLayout[T]()

	if decimalFast && !lx.manyDigits {
		if mantissa, binExp, ok := eiselLemire64(lx.fast, lx.exp, opts.lossy); ok {
			bits := assembleBits(mantissa, binExp, mBits, bias, infExp, lx.neg, opts.roundingMode)
			return buildFloat[T](bits, lx.neg), lx.consumed, nil
		}
	}
	if opts.lossy && decimalFast {
		// No table entry at all (q out of range): nothing left to try
		// that's cheaper than the slow path, but lossy mode still must
		// not touch bigInt, so fall through to a plain float64 division
		// via the approximate path instead.
		f := clingerApprox(lx.fast, lx.exp)
		v := T(f)
		if lx.neg {
			v = -v
		}
		return v, lx.consumed, nil
	}

	bits := slowFloatBits(&lx.big, lx.exp, format.ExponentBase(), mBits, bias, infExp, lx.neg, opts.roundingMode)
	return buildFloat[T](bits, lx.neg), lx.consumed, nil
}

// pow10Table holds 10**0 .. 10**22, the powers of ten that are exactly
// representable in float64 (10**23 is not).
var pow10Table = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// clingerExact returns mantissa*10**exp computed as a single float64
// multiply or divide, when both operands are exactly representable in
// float64, so that the one hardware operation yields the correctly
// rounded float64 of the exact product or quotient (Clinger). That result
// is not in general the exact value; parseFloatImpl narrows it to float32
// only within the tighter bounds noted there.
func clingerExact(mantissa uint64, exp, radix int) (float64, bool) {
	if radix != 10 {
		return 0, false
	}
	if mantissa >= uint64(1)<<53 {
		return 0, false
	}
	if exp < -22 || exp > 22 {
		return 0, false
	}
	f := float64(mantissa)
	if exp >= 0 {
		return f * pow10Table[exp], true
	}
	return f / pow10Table[-exp], true
}

// clingerApprox computes mantissa*10**exp via ordinary float64 hardware
// arithmetic without any exactness guarantee, for Options.incorrect's
// throughput-over-correctness mode.
func clingerApprox(mantissa uint64, exp int) float64 {
	f := float64(mantissa)
	e := exp
	if e >= 0 {
		for e > 22 {
			f *= 1e22
			e -= 22
		}
		return f * pow10Table[e]
	}
	for e < -22 {
		f /= 1e22
		e += 22
	}
	return f / pow10Table[-e]
}

// buildNaN returns a quiet NaN of type T, with the given sign bit.
func buildNaN[T Float](neg bool) T {
	mBits, _, infExp := floatLayout[T]()
	bits := uint64(infExp)<<uint(mBits) | uint64(1)<<uint(mBits-1)
	return buildFloat[T](bits, neg)
}

// buildInf returns signed infinity of type T.
func buildInf[T Float](neg bool) T {
	mBits, _, infExp := floatLayout[T]()
	bits := uint64(infExp) << uint(mBits)
	return buildFloat[T](bits, neg)
}
