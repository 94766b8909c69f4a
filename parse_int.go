// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// ParseInt parses the entirety of b as an integer of type T under format,
// returning ErrInvalidDigit if any byte past a valid prefix remains
// unconsumed. opts is accepted for API symmetry with ParseFloat; no
// integer-specific option currently reads from it and nil is accepted.
func ParseInt[T Int](b []byte, format NumberFormat, opts *Options) (T, error) {
	v, it, err := parseIntImpl[T](b, format)
	if err != nil {
		return 0, err
	}
	if !it.isDone() {
		return 0, newError(ErrInvalidDigit, it.cursorOffset())
	}
	return v, nil
}

// ParseIntPartial parses the longest valid prefix of b as an integer of
// type T under format, returning the number of bytes consumed. Unlike
// ParseInt, trailing bytes that don't extend the number are not an error.
func ParseIntPartial[T Int](b []byte, format NumberFormat, opts *Options) (T, int, error) {
	v, it, err := parseIntImpl[T](b, format)
	if err != nil {
		return 0, it.cursorOffset(), err
	}
	return v, it.cursorOffset(), nil
}

// parseIntImpl implements both entry points: it always stops at the first
// byte that cannot extend the number (or at a hard error), and returns the
// iterator positioned there, so the caller can check it.isDone() (complete
// parse) or read it.cursorOffset() (partial parse) as needed.
func parseIntImpl[T Int](b []byte, format NumberFormat) (result T, it byteIter, err *Error) {
	if format.DigitSeparator() == 0 {
		it = newByteIter(b)
	} else {
		it = newSkipByteIter(b, format.DigitSeparator(), format.integerSeparator)
	}

	neg := false
	switch c, ok := it.peek(); {
	case ok && c == '-':
		if !isSigned[T]() {
			return 0, it, newError(ErrInvalidNegativeSign, it.cursorOffset())
		}
		neg = true
		it.next()
	case ok && c == '+':
		if format.noPositiveMantissaSign() {
			return 0, it, newError(ErrInvalidPositiveSign, it.cursorOffset())
		}
		it.next()
	default:
		if format.requiredMantissaSign() {
			return 0, it, newError(ErrMissingSign, it.cursorOffset())
		}
	}

	digitsStart := it.cursorOffset()
	radix := format.Radix()

	if format.noIntegerLeadingZeros() {
		if c, ok := it.peek(); ok && c == '0' {
			save := it
			save.next()
			if c2, ok2 := save.peek(); ok2 && int(charToDigit(c2)) < radix {
				return 0, it, newError(ErrInvalidLeadingZeros, digitsStart)
			}
		}
	}

	var acc uint64
	count := 0
	maxMag := maxUnsignedMagnitude[T]()
	safeDigits := overflowDigits[T](radix)

	// SWAR fast path: plain decimal, no digit separator to dodge.
	if radix == 10 && format.DigitSeparator() == 0 {
		for count+8 < safeDigits {
			raw, ok := it.readWord()
			if !ok || !eightDigitsValid(raw) {
				break
			}
			acc = acc*100000000 + parseEightDigits(raw)
			it.stepBy(8)
			count += 8
		}
		for count+4 < safeDigits {
			raw, ok := it.readWord32()
			if !ok || !fourDigitsValid(raw) {
				break
			}
			acc = acc*10000 + uint64(parseFourDigits(raw))
			it.stepBy(4)
			count += 4
		}
	}

	// Scalar loop: handles everything the fast path left behind, and does
	// exact per-digit overflow detection. The offset is reported one past
	// the crossing digit (matching spec.md's "1-past-the-problematic-byte"
	// convention, e.g. parse_u8("256") = Error(Overflow, 3)), so the digit
	// is consumed before the check.
	for {
		c, ok := it.peek()
		if !ok {
			break
		}
		d := charToDigit(c)
		if int(d) >= radix {
			break
		}
		it.next()
		if acc > (maxMag-uint64(d))/uint64(radix) {
			return 0, it, newError(ErrOverflow, it.cursorOffset())
		}
		acc = acc*uint64(radix) + uint64(d)
		count++
	}

	if count == 0 {
		return 0, it, newError(ErrEmpty, digitsStart)
	}

	if neg {
		if acc == maxMag {
			return T(maxMag), it, nil
		}
		return -T(acc), it, nil
	}
	if isSigned[T]() && acc == maxMag {
		return 0, it, newError(ErrOverflow, it.cursorOffset())
	}
	return T(acc), it, nil
}

// eightDigitsValid reports whether all eight bytes of the little-endian
// word raw are ASCII '0'..'9', using the branchless nibble trick: for a
// digit byte b, (b&0xF0)|(((b+0x06)&0xF0)>>4) always equals 0x33, and
// differs for every non-digit byte value.
func eightDigitsValid(raw uint64) bool {
	const hi = 0xF0F0F0F0F0F0F0F0
	const bump = 0x0606060606060606
	return ((raw&hi)|(((raw+bump)&hi)>>4)) == 0x3333333333333333
}

// parseEightDigits combines eight validated decimal digit bytes (raw, a
// little-endian word whose byte i holds the i-th character of the group,
// most significant digit first) into their numeric value via three rounds
// of SIMD-within-a-register pairing: byte pairs into 2-digit lanes, those
// into 4-digit lanes, and finally the two halves into the 8-digit result.
func parseEightDigits(raw uint64) uint64 {
	val := raw - 0x3030303030303030
	const mask1 = 0x00FF00FF00FF00FF
	const mask2 = 0x0000FFFF0000FFFF
	val = (val&mask1)*10 + ((val >> 8) & mask1)
	val = (val&mask2)*100 + ((val >> 16) & mask2)
	return (val&0xFFFFFFFF)*10000 + (val >> 32)
}

// fourDigitsValid is eightDigitsValid's 32-bit counterpart.
func fourDigitsValid(raw uint32) bool {
	const hi = 0xF0F0F0F0
	const bump = 0x06060606
	return ((raw&hi)|(((raw+bump)&hi)>>4)) == 0x33333333
}

// parseFourDigits is parseEightDigits's 32-bit counterpart: two rounds of
// pairing instead of three.
func parseFourDigits(raw uint32) uint32 {
	val := raw - 0x30303030
	const mask1 = 0x00FF00FF
	val = (val&mask1)*10 + ((val >> 8) & mask1)
	return (val&0xFFFF)*100 + (val >> 16)
}
