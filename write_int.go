// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// WriteInt writes v into buf under format, returning the number of bytes
// written. buf must be at least as long as the worst-case width for T and
// format's radix (65 bytes is always enough for any supported type and
// radix). opts is accepted for API symmetry with WriteFloat; no
// integer-specific option currently reads from it and nil is accepted.
func WriteInt[T Int](v T, buf []byte, format NumberFormat, opts *Options) int {
	radix := format.Radix()

	neg := isSigned[T]() && v < 0
	mag := magnitudeOf(v)

	n := digitCount64(mag, radix)
	total := n
	if neg {
		total++
	}
	// Emit digits back-to-front, starting from the exact length computed
	// above.
	pos := total
	if radix == 10 {
		writeDecimalDigits(buf[:total], &pos, mag)
	} else {
		writeRadixDigits(buf[:total], &pos, mag, radix)
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return total
}

// magnitudeOf returns v's absolute value as a uint64, correctly handling
// the signed minimum (whose magnitude does not fit in T itself).
func magnitudeOf[T Int](v T) uint64 {
	if isSigned[T]() && v < 0 {
		if v == T(maxUnsignedMagnitude[T]()) {
			// v is the type minimum: negating it in T itself would
			// overflow (there's no +128 in an int8), so its magnitude is
			// produced directly from the unsigned bound instead.
			return maxUnsignedMagnitude[T]()
		}
		return uint64(-v)
	}
	return uint64(v)
}

// writeDecimalDigits fills buf[:*pos] right-to-left with v's decimal
// digits, two at a time via digitPairTable, using *pos as the write
// cursor (pre-decremented before each store).
func writeDecimalDigits(buf []byte, pos *int, v uint64) {
	for v >= 100 {
		idx := (v % 100) * 2
		v /= 100
		*pos -= 2
		buf[*pos] = digitPairTable[idx]
		buf[*pos+1] = digitPairTable[idx+1]
	}
	if v >= 10 {
		idx := v * 2
		*pos -= 2
		buf[*pos] = digitPairTable[idx]
		buf[*pos+1] = digitPairTable[idx+1]
		return
	}
	*pos--
	buf[*pos] = digitToChar[v]
}

// writeRadixDigits is writeDecimalDigits's one-digit-at-a-time fallback
// for non-decimal radices.
func writeRadixDigits(buf []byte, pos *int, v uint64, radix int) {
	r := uint64(radix)
	for {
		d := v % r
		v /= r
		*pos--
		buf[*pos] = digitToChar[d]
		if v == 0 {
			return
		}
	}
}
