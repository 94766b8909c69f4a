// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "fmt"

// An ErrorKind identifies the reason a parse or a descriptor/options
// validation failed.
type ErrorKind int8

// The complete set of error kinds produced by this package. Offsets
// accompanying each kind are documented on Error.
const (
	// ErrInvalidDigit: a byte that is not a valid digit for the configured
	// radix was found where a digit was required.
	ErrInvalidDigit ErrorKind = iota
	// ErrEmpty: the input (or the mantissa/exponent sub-span) was empty.
	ErrEmpty
	// ErrMissingSign: a sign was required but absent.
	ErrMissingSign
	// ErrInvalidPositiveSign: a '+' sign was present but forbidden.
	ErrInvalidPositiveSign
	// ErrInvalidNegativeSign: a '-' sign was present but forbidden (e.g.
	// parsing an unsigned integer type).
	ErrInvalidNegativeSign
	// ErrInvalidLeadingZeros: a leading zero was present where the format
	// forbids one.
	ErrInvalidLeadingZeros
	// ErrInvalidPunctuation: the descriptor itself is invalid (decimal
	// point equal to the exponent marker, or either byte non-ASCII).
	ErrInvalidPunctuation
	// ErrOverflow: the parsed integer magnitude exceeds the target type's
	// range.
	ErrOverflow
	// ErrUnderflow: the parsed integer magnitude is below the target
	// type's range (only relevant to signed-to-unsigned edge cases).
	ErrUnderflow
	// ErrMissingMantissaSign: mantissa sign required but absent.
	ErrMissingMantissaSign
	// ErrMissingExponentSign: exponent sign required but absent.
	ErrMissingExponentSign
	// ErrEmptyMantissa: a float's mantissa had no integer and no fraction
	// digits, or lacked the integer or fraction digits the format requires.
	ErrEmptyMantissa
	// ErrEmptyExponent: an exponent marker was present with no following
	// digits.
	ErrEmptyExponent
	// ErrInvalidMantissaRadix: the descriptor's mantissa radix is out of
	// the supported 2..=36 range.
	ErrInvalidMantissaRadix
	// ErrInvalidExponentBase: the descriptor's exponent base is out of
	// range.
	ErrInvalidExponentBase
	// ErrInvalidExponentRadix: the descriptor's exponent-digit radix is
	// out of range.
	ErrInvalidExponentRadix
	// ErrInvalidDigitSeparator: the configured separator byte collides
	// with a digit, the sign, the decimal point, or the exponent marker.
	ErrInvalidDigitSeparator
	// ErrInvalidSpecial: a configured NaN/infinity string is empty, or the
	// NaN string equals an infinity string. The strings are not checked
	// against the digits of any radix.
	ErrInvalidSpecial
)

//go:generate stringer -type=ErrorKind

// Error is the error type returned by every parse operation and by
// NumberFormat/Options validation. The zero value is not a valid error;
// always construct via the package's internal helpers.
type Error struct {
	Kind ErrorKind
	// Offset is the byte offset within the input at which the error was
	// detected. For ErrInvalidDigit it is the offending byte's index; for
	// ErrEmpty it is 0; for ErrOverflow it is one past the digit that
	// pushed the accumulator out of range (e.g. parse_u8("256") reports
	// offset 3, matching the "1-past-the-problematic-byte" convention).
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical: %s at byte offset %d", e.Kind, e.Offset)
}

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, &Error{Kind: ErrOverflow}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind ErrorKind, offset int) *Error {
	return &Error{Kind: kind, Offset: offset}
}
