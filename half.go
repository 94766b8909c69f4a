// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "math/bits"

// Float16 holds an IEEE-754 binary16 ("half precision") bit pattern: 1
// sign bit, 5 exponent bits, 10 explicit mantissa bits.
type Float16 uint16

// BFloat16 holds a bfloat16 bit pattern: binary32's 8-bit exponent paired
// with a 7-bit mantissa, so widening to float32 is a plain left shift of
// the mantissa with no exponent rebias.
type BFloat16 uint16

// Float16FromFloat32 narrows f to binary16 under opts's rounding mode (or
// round-to-nearest-even with a nil opts), rounding the mantissa via the
// same assembleBits path component H's parser uses and producing signed
// infinity on overflow rather than an error.
func Float16FromFloat32(f float32, opts *Options) Float16 {
	return Float16(narrowToHalf(f, f16MantissaBits, f16ExponentBias, f16InfiniteExp, opts))
}

// Float16FromFloat64 is Float16FromFloat32 for a float64 source.
func Float16FromFloat64(f float64, opts *Options) Float16 {
	return Float16(narrowToHalf(f, f16MantissaBits, f16ExponentBias, f16InfiniteExp, opts))
}

// BFloat16FromFloat32 is Float16FromFloat32 targeting bfloat16 layout.
func BFloat16FromFloat32(f float32, opts *Options) BFloat16 {
	return BFloat16(narrowToHalf(f, bf16MantissaBits, bf16ExponentBias, bf16InfiniteExp, opts))
}

// BFloat16FromFloat64 is Float16FromFloat64 targeting bfloat16 layout.
func BFloat16FromFloat64(f float64, opts *Options) BFloat16 {
	return BFloat16(narrowToHalf(f, bf16MantissaBits, bf16ExponentBias, bf16InfiniteExp, opts))
}

// Float32 widens h to binary32. Every binary16 value, finite or not, has
// an exact binary32 representation, so this never rounds.
func (h Float16) Float32() float32 {
	return widenFromHalf[float32](uint16(h), f16MantissaBits, f16ExponentBias, f16InfiniteExp)
}

// Float64 widens h to binary64, exactly.
func (h Float16) Float64() float64 {
	return widenFromHalf[float64](uint16(h), f16MantissaBits, f16ExponentBias, f16InfiniteExp)
}

// Float32 widens b to binary32, exactly (a bfloat16 value is already a
// truncated binary32 significand sharing the same exponent bias).
func (b BFloat16) Float32() float32 {
	return widenFromHalf[float32](uint16(b), bf16MantissaBits, bf16ExponentBias, bf16InfiniteExp)
}

// Float64 widens b to binary64, exactly.
func (b BFloat16) Float64() float64 {
	return widenFromHalf[float64](uint16(b), bf16MantissaBits, bf16ExponentBias, bf16InfiniteExp)
}

// ParseFloat16 parses the entirety of buf as a float16, by running it
// through component H's ParseFloat[float32] and narrowing the result.
func ParseFloat16(buf []byte, format NumberFormat, opts *Options) (Float16, error) {
	f, err := ParseFloat[float32](buf, format, opts)
	if err != nil {
		return 0, err
	}
	return Float16FromFloat32(f, opts), nil
}

// ParseFloat16Partial is ParseFloat16 over the longest valid prefix of buf.
func ParseFloat16Partial(buf []byte, format NumberFormat, opts *Options) (Float16, int, error) {
	f, n, err := ParseFloatPartial[float32](buf, format, opts)
	if err != nil {
		return 0, n, err
	}
	return Float16FromFloat32(f, opts), n, nil
}

// WriteFloat16 widens h to float32 and writes it via component I's
// WriteFloat, so float16 values are formatted with the same shortest
// round-trip guarantee as float32/float64.
func WriteFloat16(h Float16, buf []byte, format NumberFormat, opts *Options) int {
	return WriteFloat(h.Float32(), buf, format, opts)
}

// ParseBFloat16 is ParseFloat16 targeting bfloat16 layout.
func ParseBFloat16(buf []byte, format NumberFormat, opts *Options) (BFloat16, error) {
	f, err := ParseFloat[float32](buf, format, opts)
	if err != nil {
		return 0, err
	}
	return BFloat16FromFloat32(f, opts), nil
}

// ParseBFloat16Partial is ParseFloat16Partial targeting bfloat16 layout.
func ParseBFloat16Partial(buf []byte, format NumberFormat, opts *Options) (BFloat16, int, error) {
	f, n, err := ParseFloatPartial[float32](buf, format, opts)
	if err != nil {
		return 0, n, err
	}
	return BFloat16FromFloat32(f, opts), n, nil
}

// WriteBFloat16 is WriteFloat16 targeting bfloat16 layout.
func WriteBFloat16(b BFloat16, buf []byte, format NumberFormat, opts *Options) int {
	return WriteFloat(b.Float32(), buf, format, opts)
}

// narrowToHalf rounds f down to a 16-bit float layout (dstMBits explicit
// mantissa bits, dstBias exponent bias, dstInfExp infinite-exponent code),
// reusing decompose (write_float.go) to recover f's exact significand and
// assembleBits (round_float.go) to round it into the narrower layout --
// the same two primitives component H/I already use for parsing and
// writing, rather than a half-precision-specific bit-twiddling rewrite.
func narrowToHalf[T Float](f T, dstMBits, dstBias, dstInfExp int, opts *Options) uint16 {
	if opts == nil {
		opts = DefaultOptions()
	}
	srcBits, neg := floatBitsOf(f)
	srcMBits, _, srcInfExp := floatLayout[T]()
	exp := int((srcBits >> uint(srcMBits)) & uint64(srcInfExp))
	frac := srcBits & (uint64(1)<<uint(srcMBits) - 1)

	var dstBits uint64
	switch {
	case exp == srcInfExp:
		if frac != 0 {
			dstBits = uint64(dstInfExp)<<uint(dstMBits) | uint64(1)<<uint(dstMBits-1)
		} else {
			dstBits = uint64(dstInfExp) << uint(dstMBits)
		}
	case exp == 0 && frac == 0:
		dstBits = 0
	default:
		m, e2, _ := decompose(exp, frac, srcMBits, srcInfExp)
		mantissa, binExp := normalize64(m, e2)
		dstBits = assembleBits(mantissa, binExp, dstMBits, dstBias, dstInfExp, neg, opts.roundingMode)
	}
	result := uint16(dstBits)
	if neg {
		result |= uint16(f16SignMask)
	}
	return result
}

// widenFromHalf recovers the exact T value of a 16-bit float layout (same
// parameters as narrowToHalf's destination side, here the source).
func widenFromHalf[T Float](bits16 uint16, srcMBits, srcBias, srcInfExp int) T {
	neg := bits16&uint16(f16SignMask) != 0
	magnitude := bits16 &^ uint16(f16SignMask)
	exp := int(magnitude >> uint(srcMBits))
	frac := uint64(magnitude) & (uint64(1)<<uint(srcMBits) - 1)

	switch {
	case exp == srcInfExp:
		if frac != 0 {
			return buildNaN[T](neg)
		}
		return buildInf[T](neg)
	case exp == 0 && frac == 0:
		return buildFloat[T](0, neg)
	}

	m, e2, _ := decompose(exp, frac, srcMBits, srcInfExp)
	mantissa, binExp := normalize64(m, e2)
	dstMBits, dstBias, dstInfExp := floatLayout[T]()
	// A half-precision significand always fits a wider layout's mantissa
	// field without rounding; ToNearestEven here never actually discards
	// a nonzero tail, it's just assembleBits's generic contract.
	bits64 := assembleBits(mantissa, binExp, dstMBits, dstBias, dstInfExp, neg, ToNearestEven)
	return buildFloat[T](bits64, neg)
}

// normalize64 renormalizes a significand m (value == m * 2**e2, m != 0)
// so its most significant set bit sits at bit 63, the form assembleBits
// expects, adjusting the exponent to compensate.
func normalize64(m uint64, e2 int32) (mantissa uint64, binExp int32) {
	lz := bits.LeadingZeros64(m)
	return m << uint(lz), e2 - int32(lz)
}
