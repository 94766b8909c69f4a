// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// RoundingMode determines how a float's exact decimal value is rounded to
// the nearest representable binary value when the two are not equal.
// Named and ordered after db47h-decimal's RoundingMode, the bundle this
// package's Options borrows the "precision + rounding mode" builder
// ergonomics from (see context.Context in the teacher).
type RoundingMode byte

// The supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // IEEE-754 default: ties round to an even mantissa
	ToNearestAway                     // ties round away from zero
	ToZero                            // truncate
	ToNegativeInf                     // round towards -Inf
	ToPositiveInf                     // round towards +Inf
)

//go:generate stringer -type=RoundingMode

// Options bundles the runtime-adjustable knobs that are not baked into a
// NumberFormat: the NaN/infinity strings, the rounding mode, and a couple
// of throughput/strictness dials. Unlike NumberFormat, these never affect
// which algorithm is monomorphized, only its runtime behavior, so they are
// an ordinary (not bit-packed) struct.
type Options struct {
	nanString    string
	infString    string
	altInfString string // alternate accepted spelling, e.g. "infinity"

	roundingMode RoundingMode

	// exponentMin/exponentMax bound the decimal exponent range for which
	// the float writer prefers fixed notation; outside that range it
	// switches to scientific notation using the format's exponent marker.
	exponentMin int
	exponentMax int

	trimTrailingZero bool
	lossy            bool
	incorrect        bool
}

// DefaultOptions returns the package defaults: NaN = "NaN", infinity =
// "inf" (parsers additionally accept "infinity"), round to nearest even,
// fixed notation for decimal exponents in [-4, 20] and scientific
// otherwise (matching strconv's 'g'-verb switch points), no trailing-zero
// trimming, not lossy, not incorrect.
func DefaultOptions() *Options {
	o, _ := NewOptionsBuilder().Build()
	return o
}

// NewOptionsBuilder starts building an Options value from the package
// defaults.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{
		nanString:   "NaN",
		infString:   "inf",
		altInf:      "infinity",
		exponentMin: -4,
		exponentMax: 20,
	}
}

// OptionsBuilder is a fluent builder for Options.
type OptionsBuilder struct {
	nanString, infString, altInf string
	roundingMode                 RoundingMode
	exponentMin, exponentMax     int
	trimTrailingZero             bool
	lossy                        bool
	incorrect                    bool
}

// NanString sets the string the writer emits, and one of the strings the
// parser accepts (case per the format's CaseInsensitiveSpecial toggle),
// for NaN.
func (b *OptionsBuilder) NanString(s string) *OptionsBuilder {
	b.nanString = s
	return b
}

// InfString sets the primary infinity string used by both writer and
// parser.
func (b *OptionsBuilder) InfString(s string) *OptionsBuilder {
	b.infString = s
	return b
}

// AlternateInfString sets an additional string the parser accepts for
// infinity (never emitted by the writer). Pass "" to disable it.
func (b *OptionsBuilder) AlternateInfString(s string) *OptionsBuilder {
	b.altInf = s
	return b
}

// RoundingMode sets the rounding mode the float parser's moderate and slow
// paths, and Float16/BFloat16 narrowing, round by. The Clinger fast path
// always rounds to nearest-even, and the float writer does not read it.
func (b *OptionsBuilder) RoundingMode(m RoundingMode) *OptionsBuilder {
	b.roundingMode = m
	return b
}

// ExponentNotationRange sets the inclusive decimal-exponent range within
// which the float writer prefers fixed notation; outside of it, the
// writer switches to scientific notation.
func (b *OptionsBuilder) ExponentNotationRange(min, max int) *OptionsBuilder {
	b.exponentMin, b.exponentMax = min, max
	return b
}

// TrimTrailingZero controls whether the float writer trims a lone
// trailing ".0" fractional zero (e.g. "1" instead of "1.0").
func (b *OptionsBuilder) TrimTrailingZero(v bool) *OptionsBuilder {
	b.trimTrailingZero = v
	return b
}

// Lossy makes the float parser return the Eisel-Lemire candidate
// unconditionally, skipping the slow fallback even when Eisel-Lemire
// itself reports the result as ambiguous. Faster, not always correctly
// rounded.
func (b *OptionsBuilder) Lossy(v bool) *OptionsBuilder {
	b.lossy = v
	return b
}

// Incorrect skips the moderate and slow paths entirely, accepting the
// Clinger-fast-path approximation (nearest float to mantissa*10^exp in
// float64 arithmetic) even when it is not provably exact. Intended only
// for throughput benchmarking against other engines that make the same
// trade-off. It applies to decimal formats (radix and exponent base 10);
// other formats still take the slow path.
func (b *OptionsBuilder) Incorrect(v bool) *OptionsBuilder {
	b.incorrect = v
	return b
}

// Build validates the accumulated options and returns the Options value,
// or a descriptor error (ErrInvalidSpecial) if the NaN/infinity strings
// are empty or collide with each other.
func (b *OptionsBuilder) Build() (*Options, error) {
	if b.nanString == "" || b.infString == "" {
		return nil, newError(ErrInvalidSpecial, 0)
	}
	if b.nanString == b.infString || b.nanString == b.altInf {
		return nil, newError(ErrInvalidSpecial, 0)
	}
	return &Options{
		nanString:        b.nanString,
		infString:        b.infString,
		altInfString:     b.altInf,
		roundingMode:     b.roundingMode,
		exponentMin:      b.exponentMin,
		exponentMax:      b.exponentMax,
		trimTrailingZero: b.trimTrailingZero,
		lossy:            b.lossy,
		incorrect:        b.incorrect,
	}, nil
}
