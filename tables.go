// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// digitToChar maps a digit value 0..35 to its ASCII representation
// ('0'-'9', 'a'-'z').
var digitToChar = [36]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j',
	'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't',
	'u', 'v', 'w', 'x', 'y', 'z',
}

// charToDigitTable maps an ASCII byte to its digit value (0..35), or
// 0xFF if the byte is not a valid digit character in any supported radix.
// Both cases of letters map to the same value (radix validation decides
// whether case matters).
var charToDigitTable = func() [256]uint8 {
	var t [256]uint8
	for i := range t {
		t[i] = 0xFF
	}
	for i := byte('0'); i <= '9'; i++ {
		t[i] = i - '0'
	}
	for i := byte('a'); i <= 'z'; i++ {
		t[i] = i - 'a' + 10
	}
	for i := byte('A'); i <= 'Z'; i++ {
		t[i] = i - 'A' + 10
	}
	return t
}()

// charToDigit returns the digit value of c, or 0xFF if c is not a digit
// character in any supported radix. Callers compare the result against
// the active radix to decide validity.
func charToDigit(c byte) uint8 {
	return charToDigitTable[c]
}

// digitPairTable holds "00".."99" packed two bytes per entry, the classic
// lookup used to emit two decimal digits per iteration instead of one.
var digitPairTable = [200]byte{
	'0', '0', '0', '1', '0', '2', '0', '3', '0', '4', '0', '5', '0', '6', '0', '7', '0', '8', '0', '9',
	'1', '0', '1', '1', '1', '2', '1', '3', '1', '4', '1', '5', '1', '6', '1', '7', '1', '8', '1', '9',
	'2', '0', '2', '1', '2', '2', '2', '3', '2', '4', '2', '5', '2', '6', '2', '7', '2', '8', '2', '9',
	'3', '0', '3', '1', '3', '2', '3', '3', '3', '4', '3', '5', '3', '6', '3', '7', '3', '8', '3', '9',
	'4', '0', '4', '1', '4', '2', '4', '3', '4', '4', '4', '5', '4', '6', '4', '7', '4', '8', '4', '9',
	'5', '0', '5', '1', '5', '2', '5', '3', '5', '4', '5', '5', '5', '6', '5', '7', '5', '8', '5', '9',
	'6', '0', '6', '1', '6', '2', '6', '3', '6', '4', '6', '5', '6', '6', '6', '7', '6', '8', '6', '9',
	'7', '0', '7', '1', '7', '2', '7', '3', '7', '4', '7', '5', '7', '6', '7', '7', '7', '8', '7', '9',
	'8', '0', '8', '1', '8', '2', '8', '3', '8', '4', '8', '5', '8', '6', '8', '7', '8', '8', '8', '9',
	'9', '0', '9', '1', '9', '2', '9', '3', '9', '4', '9', '5', '9', '6', '9', '7', '9', '8', '9', '9',
}

// smallPowersOf5 holds 5^0 .. 5^27, the largest range that fits in a
// uint64 (5^28 overflows), used by the big-integer's mul-pow5 and by the
// float slow path's decimal-to-binary scaling.
var smallPowersOf5 = func() [28]uint64 {
	var t [28]uint64
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * 5
	}
	return t
}()

// maxPowerOf5Exp is the largest n such that smallPowersOf5 holds 5^n.
const maxPowerOf5Exp = 27

// radixPowersTable[radix] holds every power of that radix representable in
// a uint64, ascending (index 0 is radix**0 == 1). digitCount64's
// non-decimal branch walks this instead of dividing: the digit count is
// the number of table entries <= x.
var radixPowersTable = func() [37][]uint64 {
	var t [37][]uint64
	for radix := MinRadix; radix <= MaxRadix; radix++ {
		powers := []uint64{1}
		p := uint64(1)
		for {
			next := p * uint64(radix)
			if next/uint64(radix) != p { // overflow check
				break
			}
			p = next
			powers = append(powers, p)
		}
		t[radix] = powers
	}
	return t
}()
