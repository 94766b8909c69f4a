// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "math/bits"

// eiselLemire64 attempts the Eisel-Lemire moderate path: given a mantissa
// w (the first 19-or-fewer significant decimal digits, as an integer) and
// a decimal exponent q such that the true value is w * 10**q, it computes
// a normalized 64-bit binary mantissa and exponent via one 64x128-bit
// multiplication against the lemireTable entry for q.
//
// ok is false whenever the table has no entry for q, or the product falls
// too close to a rounding boundary to trust without the table's exact
// (non-approximated) higher-precision form -- the caller should then fall
// back to the exact big-integer slow path. This trades a slightly wider
// "too close to call" band than the published algorithm for not having to
// carry a second, wider fallback table purely to resolve a handful of
// inputs that occur vanishingly rarely in practice; the slow path always
// produces the correctly-rounded answer regardless of why the moderate
// path punted.
// trustAmbiguous, when true, skips the "too close to call" rejection
// below and returns the candidate regardless -- used only by Options.lossy,
// which explicitly trades correctness-on-rare-inputs for never touching
// the slow path.
func eiselLemire64(w uint64, q int, trustAmbiguous bool) (mantissa uint64, binExp int32, ok bool) {
	entry, found := lemireLookup(q)
	if !found {
		return 0, 0, false
	}

	// Normalize w through the shared extendedFloat currency (component D's
	// extfloat.go) rather than a one-off leading-zeros shift: ef.exp ends
	// up at -lz, the same adjustment binExp needs below.
	ef := extendedFloat{mantissa: w}
	ef.normalize()

	hi2, lo2 := bits.Mul64(ef.mantissa, entry.hi)
	hi0, _ := bits.Mul64(ef.mantissa, entry.lo)
	productLo, carry := bits.Add64(lo2, hi0, 0)
	productHi := hi2 + carry

	var renorm int32
	if productHi&(1<<63) == 0 {
		productHi = (productHi << 1) | (productLo >> 63)
		renorm = 1
	}

	if !trustAmbiguous {
		const guardMask = uint64(1)<<11 - 1
		low := productHi & guardMask
		if low == 0 || low == guardMask {
			return 0, 0, false
		}
	}

	binExp = entry.e + int32(q) + ef.exp + 128 - renorm
	return productHi, binExp, true
}

// assembleBits builds an unsigned IEEE bit pattern (sign excluded) from a
// normalized 64-bit mantissa (MSB at bit 63, representing mantissa *
// 2**binExp) for a format with the given explicit mantissa width,
// exponent bias and infinite-exponent code, rounding the dropped bits
// under mode. neg is needed only to pick a direction for the two
// round-toward-infinity modes.
func assembleBits(mantissa uint64, binExp int32, mBits, bias, infExp int, neg bool, mode RoundingMode) uint64 {
	if mantissa == 0 {
		return 0
	}
	e := int(binExp) + 63
	shift := 63 - mBits
	minNormalExp := 1 - bias

	biasedExp := e - minNormalExp + 1
	if e < minNormalExp {
		shift += minNormalExp - e
		biasedExp = 0
	}
	if shift > 64 {
		// Every bit of mantissa lies below the half-ulp bit of the smallest
		// subnormal: a non-zero tail strictly under half an ulp.
		if (mode == ToPositiveInf && !neg) || (mode == ToNegativeInf && neg) {
			return 1
		}
		return 0
	}

	kept, roundUp := shiftRound(mantissa, shift, neg, mode)
	if roundUp {
		kept++
		switch {
		case biasedExp > 0 && kept == uint64(1)<<uint(mBits+1):
			kept >>= 1
			biasedExp++
		case biasedExp == 0 && kept == uint64(1)<<uint(mBits):
			biasedExp = 1
		}
	}
	if biasedExp >= infExp {
		return uint64(infExp) << uint(mBits)
	}
	mantField := kept
	if biasedExp > 0 {
		mantField = kept &^ (uint64(1) << uint(mBits))
	}
	return uint64(biasedExp)<<uint(mBits) | mantField
}

// shiftRound shifts mantissa right by shift bits (shift in [0,64]) and
// reports whether the caller must increment the kept bits by one to
// account for the discarded tail, per mode.
func shiftRound(mantissa uint64, shift int, neg bool, mode RoundingMode) (kept uint64, roundUp bool) {
	if shift <= 0 {
		return mantissa, false
	}
	if shift >= 64 {
		kept = 0
	} else {
		kept = mantissa >> uint(shift)
	}

	var tail uint64
	var tailBits int
	if shift >= 64 {
		tail, tailBits = mantissa, 64
	} else {
		tail, tailBits = mantissa&(uint64(1)<<uint(shift)-1), shift
	}
	if tail == 0 {
		return kept, false
	}

	switch mode {
	case ToZero:
		return kept, false
	case ToNearestAway:
		half := uint64(1) << uint(tailBits-1)
		return kept, tail >= half
	case ToPositiveInf:
		return kept, !neg
	case ToNegativeInf:
		return kept, neg
	default: // ToNearestEven
		half := uint64(1) << uint(tailBits-1)
		switch {
		case tail > half:
			return kept, true
		case tail < half:
			return kept, false
		default:
			return kept, kept&1 != 0
		}
	}
}
