// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// floatLex holds everything the three parse paths (Clinger fast,
// Eisel-Lemire moderate, big-integer slow) need, produced by a single
// left-to-right scan of the input. The scan always builds an exact
// arbitrary-precision mantissa (big) alongside a capped 64-bit one
// (fast): when the input has at most 19 significant digits the two agree
// exactly and either can be used; past that, manyDigits is set and only
// big (together with exp) is trustworthy.
type floatLex struct {
	neg        bool
	isNaN      bool
	isInf      bool
	big        bigInt
	fast       uint64
	fastDigits int
	manyDigits bool
	exp        int // value such that the mantissa, read as an integer, times radix**exp equals the input
	consumed   int
}

// maxClampExp bounds the parsed explicit exponent magnitude. Any decimal
// exponent this large already drives the result to infinity or zero
// regardless of the mantissa, so clamping here avoids int overflow on
// pathological input like "1e999999999999999999".
const maxClampExp = 1 << 28

// lexFloat scans one float token from the start of b under format,
// returning the decoded components or an error. It never partially
// trusts a malformed token: on any lexical error the caller's only
// obligation is to report err at the returned offset.
func lexFloat(b []byte, format NumberFormat, opts *Options) (floatLex, *Error) {
	var lx floatLex
	it := newSkipByteIter(b, format.DigitSeparator(), 0)

	switch c, ok := it.peek(); {
	case ok && c == '-':
		lx.neg = true
		it.next()
	case ok && c == '+':
		if format.noPositiveMantissaSign() {
			return lx, newError(ErrInvalidPositiveSign, it.cursorOffset())
		}
		it.next()
	default:
		if format.requiredMantissaSign() {
			return lx, newError(ErrMissingSign, it.cursorOffset())
		}
	}

	if !format.noSpecial() {
		if ok, n := matchSpecial(&it, opts.nanString, format.caseInsensitiveSpecial()); ok {
			lx.isNaN = true
			lx.consumed = n
			return lx, nil
		}
		// The alternate spelling is tried first: the default "infinity"
		// starts with the primary "inf", which would otherwise win and
		// leave "inity" unconsumed.
		if opts.altInfString != "" {
			if ok, n := matchSpecial(&it, opts.altInfString, format.caseInsensitiveSpecial()); ok {
				lx.isInf = true
				lx.consumed = n
				return lx, nil
			}
		}
		if ok, n := matchSpecial(&it, opts.infString, format.caseInsensitiveSpecial()); ok {
			lx.isInf = true
			lx.consumed = n
			return lx, nil
		}
	}

	radix := uint64(format.Radix())
	seenNonzero := false
	sigDigits := 0
	intDigits := 0
	fracDigits := 0

	it.placement = format.integerSeparator
	intStart := it.cursorOffset()
	if format.noFloatLeadingZeros() {
		if c, ok := it.peek(); ok && c == '0' {
			save := it
			save.next()
			if c2, ok2 := save.peek(); ok2 && int(charToDigit(c2)) < int(radix) {
				return lx, newError(ErrInvalidLeadingZeros, intStart)
			}
		}
	}
	for {
		c, ok := it.peek()
		if !ok {
			break
		}
		d := charToDigit(c)
		if uint64(d) >= radix {
			break
		}
		it.next()
		intDigits++
		lx.consumeDigit(uint64(d), radix, &seenNonzero, &sigDigits)
	}
	it.skipTrailingSeparator()
	if intDigits == 0 && format.requiredIntegerDigits() {
		return lx, newError(ErrEmptyMantissa, intStart)
	}

	if c, ok := it.peekRaw(); ok && c == format.DecimalPoint() {
		it.next()
		it.placement = format.fractionSeparator
		fracStart := it.cursorOffset()
		for {
			c, ok := it.peek()
			if !ok {
				break
			}
			d := charToDigit(c)
			if uint64(d) >= radix {
				break
			}
			it.next()
			fracDigits++
			lx.consumeDigit(uint64(d), radix, &seenNonzero, &sigDigits)
		}
		it.skipTrailingSeparator()
		if fracDigits == 0 && format.requiredFractionDigits() {
			return lx, newError(ErrEmptyMantissa, fracStart)
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return lx, newError(ErrEmptyMantissa, intStart)
	}

	lx.manyDigits = sigDigits > 19
	// lx.exp is tracked in units of format.ExponentBase(), not the mantissa
	// radix: one fractional mantissa digit is worth radix**-1, which is
	// exponentBase**-fracDigitScale when radix is an exact integer power
	// of exponentBase (e.g. radix 16, exponentBase 2, as in a C-style hex
	// float "0x1.8p3": one hex fraction digit is worth 2**-4). When no
	// such clean power relation exists, fracDigitScale falls back to 1,
	// matching this package's original (radix == exponentBase) behavior.
	fracDigitScale, _ := exponentScaleFactor(int(radix), format.ExponentBase())
	lx.exp = -fracDigits * fracDigitScale

	if !format.noExponentNotation() {
		marker := format.ExponentMarker()
		if c, ok := it.peekRaw(); ok && matchesMarker(c, marker, format.caseSensitiveExponent()) {
			save := it
			save.next()
			expNeg := false
			switch c2, ok2 := save.peekRaw(); {
			case ok2 && c2 == '-':
				if format.noExponentSign() {
					return lx, newError(ErrInvalidNegativeSign, save.cursorOffset())
				}
				expNeg = true
				save.next()
			case ok2 && c2 == '+':
				if format.noPositiveExponentSign() || format.noExponentSign() {
					return lx, newError(ErrInvalidPositiveSign, save.cursorOffset())
				}
				save.next()
			default:
				if format.requiredExponentSign() {
					return lx, newError(ErrMissingExponentSign, save.cursorOffset())
				}
			}
			save.placement = format.exponentSeparator
			expStart := save.cursorOffset()
			expDigits := 0
			expRadix := uint64(format.ExponentRadix())
			var expVal int
			for {
				c3, ok3 := save.peek()
				if !ok3 {
					break
				}
				d := charToDigit(c3)
				if uint64(d) >= expRadix {
					break
				}
				save.next()
				expDigits++
				if expVal < maxClampExp {
					expVal = expVal*int(expRadix) + int(d)
					if expVal > maxClampExp {
						expVal = maxClampExp
					}
				}
			}
			save.skipTrailingSeparator()
			if expDigits == 0 {
				if format.requiredExponentDigits() {
					return lx, newError(ErrEmptyExponent, expStart)
				}
			} else {
				it = save
				if expNeg {
					expVal = -expVal
				}
				lx.exp += expVal
			}
		}
	}

	lx.consumed = it.cursorOffset()
	return lx, nil
}

// consumeDigit feeds one radix digit into both the exact big mantissa and
// the capped fast mantissa, skipping digits before the first non-zero one
// so a long run of leading zeros never burns the 19-digit fast budget.
func (lx *floatLex) consumeDigit(d, radix uint64, seenNonzero *bool, sigDigits *int) {
	lx.big.mulAddSmall(radix, d)
	if d != 0 {
		*seenNonzero = true
	}
	if !*seenNonzero {
		return
	}
	*sigDigits++
	if *sigDigits <= 19 {
		lx.fast = lx.fast*radix + d
		lx.fastDigits = *sigDigits
	}
}

// exponentScaleFactor returns k such that radix == base**k, when such an
// integer k exists (the same small set of combinations hex-float notation
// needs: mantissa radix a power of the exponent's base, e.g. 16 and 2).
// ok is false when no such k exists, in which case the caller should fall
// back to treating one mantissa digit as worth one unit of the exponent
// (only exact when radix == base).
func exponentScaleFactor(radix, base int) (k int, ok bool) {
	if base < 2 || radix < base {
		if radix == base {
			return 1, true
		}
		return 1, false
	}
	pow := base
	k = 1
	for pow < radix {
		pow *= base
		k++
	}
	if pow == radix {
		return k, true
	}
	return 1, false
}

// matchesMarker reports whether c introduces an exponent, honoring the
// format's case-sensitivity toggle for the marker byte.
func matchesMarker(c, marker byte, caseSensitive bool) bool {
	if c == marker {
		return true
	}
	if caseSensitive {
		return false
	}
	return toLowerASCII(c) == toLowerASCII(marker)
}

func (f NumberFormat) caseSensitiveExponent() bool { return f.flags.has(flagCaseSensitiveExponent) }

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// matchSpecial reports whether the literal token (e.g. "nan", "inf")
// matches at the iterator's current position, consuming it on success.
// Matching is byte-for-byte against the raw buffer: separators and radix
// digit rules don't apply inside a special token.
func matchSpecial(it *byteIter, token string, caseInsensitive bool) (bool, int) {
	if token == "" {
		return false, 0
	}
	rest := it.remaining()
	if len(rest) < len(token) {
		return false, 0
	}
	for i := 0; i < len(token); i++ {
		a, b := rest[i], token[i]
		if caseInsensitive {
			a, b = toLowerASCII(a), toLowerASCII(b)
		}
		if a != b {
			return false, 0
		}
	}
	it.stepBy(len(token))
	return true, it.cursorOffset()
}
