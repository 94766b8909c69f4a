// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"math/bits"
)

// Int is the set of machine integer types this package can parse and
// write. Unsigned and signed types share the same algorithms; the signed
// ones add sign handling on top.
type Int interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Float is the set of IEEE-754 binary floating-point types this package
// can parse and write.
type Float interface {
	~float32 | ~float64
}

// isSigned reports whether T is one of the signed integer types in Int.
func isSigned[T Int]() bool {
	var z T
	return z-1 < 0
}

func bitSize[T Int]() int {
	var z T
	switch any(z).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	default:
		return 64
	}
}

// maxUnsignedMagnitude returns, as a uint64, the largest magnitude a value
// of T can hold (so for int8 this is 128, matching -INT8_MIN, not 127).
func maxUnsignedMagnitude[T Int]() uint64 {
	size := bitSize[T]()
	if !isSigned[T]() {
		if size == 64 {
			return ^uint64(0)
		}
		return (uint64(1) << size) - 1
	}
	return uint64(1) << (size - 1)
}

// overflowDigits returns the smallest digit count, for the given radix, at
// which overflow of a value of type T becomes possible. Below that digit
// count overflow cannot occur and the fast paths skip the check entirely.
func overflowDigits[T Int](radix int) int {
	max := maxUnsignedMagnitude[T]()
	n := 0
	for max > 0 {
		max /= uint64(radix)
		n++
	}
	return n
}

// fastLog2 returns floor(log2(x)) for x > 0, and -1 for x == 0.
func fastLog2(x uint64) int {
	if x == 0 {
		return -1
	}
	return bits.Len64(x) - 1
}

// digitCount64 returns the number of digits of x written in the given
// radix (radix must be in [2,36]); 1 for x == 0.
func digitCount64(x uint64, radix int) int {
	if x == 0 {
		return 1
	}
	if radix == 10 {
		return decimalDigitCount64(x)
	}
	powers := radixPowersTable[radix]
	n := 0
	for n < len(powers) && powers[n] <= x {
		n++
	}
	return n
}

// decimalDigitCount64 is the fast_log2-table-driven digit counter used by
// the base-10 integer writer: an integer-log2 estimate refined by a single
// comparison against the power-of-ten table, avoiding a division loop.
func decimalDigitCount64(x uint64) int {
	if x == 0 {
		return 1
	}
	// approxDigits[bits.Len64(x)] is either the exact digit count or one
	// too many; powersOf10 disambiguates with a single comparison.
	approx := approxDigits[bits.Len64(x)]
	if x < powersOf10[approx-1] {
		return approx - 1
	}
	return approx
}

// approxDigits[n], for n in [0,64], is the decimal digit count of the
// largest n-bit value (2**n - 1, with 1 for n == 0): the exact count for
// every n-bit value or one more. It is the first estimate in
// decimalDigitCount64.
var approxDigits = [65]int{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// powersOf10 holds 10^0 .. 10^19, the full range a uint64 can hold.
var powersOf10 = [20]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000,
	1000000000000000, 10000000000000000, 100000000000000000, 1000000000000000000,
	10000000000000000000,
}

// IEEE-754 binary64 layout constants.
const (
	f64MantissaBits  = 52
	f64ExponentBits  = 11
	f64ExponentBias  = 1023
	f64HiddenBit     = uint64(1) << f64MantissaBits
	f64MantissaMask  = f64HiddenBit - 1
	f64InfiniteExp   = (1 << f64ExponentBits) - 1
	f64SignMask      = uint64(1) << 63
	f64MinNormalExp2 = -f64ExponentBias + 1
)

// IEEE-754 binary32 layout constants.
const (
	f32MantissaBits = 23
	f32ExponentBits = 8
	f32ExponentBias = 127
	f32HiddenBit    = uint32(1) << f32MantissaBits
	f32MantissaMask = f32HiddenBit - 1
	f32InfiniteExp  = (1 << f32ExponentBits) - 1
	f32SignMask     = uint32(1) << 31
)

// IEEE-754 binary16 (half) layout constants.
const (
	f16MantissaBits = 10
	f16ExponentBits = 5
	f16ExponentBias = 15
	f16InfiniteExp  = (1 << f16ExponentBits) - 1
	f16SignMask     = uint16(1) << 15
)

// bfloat16 layout constants (8-bit exponent like binary32, 7-bit mantissa).
const (
	bf16MantissaBits = 7
	bf16ExponentBits = 8
	bf16ExponentBias = 127
	bf16InfiniteExp  = (1 << bf16ExponentBits) - 1
	bf16SignMask     = uint16(1) << 15
)

// mantissaBits returns the number of explicit (non-hidden) mantissa bits
// for T.
func mantissaBits[T Float]() int {
	var z T
	if _, ok := any(z).(float32); ok {
		return f32MantissaBits
	}
	return f64MantissaBits
}

// isFloat32 reports whether T is float32.
func isFloat32[T Float]() bool {
	var z T
	_, ok := any(z).(float32)
	return ok
}

// floatLayout returns the (explicit mantissa bits, exponent bias,
// infinite-exponent code) triple assembleBits/slowFloatBits need, for T.
func floatLayout[T Float]() (mBits, bias, infExp int) {
	if isFloat32[T]() {
		return f32MantissaBits, f32ExponentBias, f32InfiniteExp
	}
	return f64MantissaBits, f64ExponentBias, f64InfiniteExp
}

// buildFloat packs a sign bit and an unsigned IEEE bit pattern (as
// produced by assembleBits/slowFloatBits) into T.
func buildFloat[T Float](bits uint64, neg bool) T {
	if isFloat32[T]() {
		b := uint32(bits)
		if neg {
			b |= f32SignMask
		}
		return T(math.Float32frombits(b))
	}
	if neg {
		bits |= f64SignMask
	}
	return T(math.Float64frombits(bits))
}
