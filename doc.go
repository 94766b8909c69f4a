// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lexical implements a configurable numeric conversion engine: string
to native integer/float and back, without going through the standard
library's fixed-syntax strconv.

The package is organized around three kinds of value:

A NumberFormat is a small immutable descriptor (mantissa radix, digit
separator, decimal point and exponent marker bytes, and a family of
syntactic toggles) that parameterizes every algorithm in the package. Build
one with NewNumberFormatBuilder:

	fmt, err := NewNumberFormatBuilder().Radix(10).Build()

Options carries the runtime-adjustable knobs that are not baked into a
NumberFormat: the NaN/infinity strings, the rounding mode, and a couple of
throughput/strictness dials. The zero value of Options is not meaningful;
use DefaultOptions or NewOptionsBuilder:

	opts := DefaultOptions()

Parsing and writing are free functions parameterized by the value type:

	v, err := ParseInt[int32](b, fmt, opts)
	v, n, err := ParseIntPartial[int32](b, fmt, opts)
	n := WriteInt(v, buf, fmt, opts)

	f, err := ParseFloat[float64](b, fmt, opts)
	n := WriteFloat(f, buf, fmt, opts)

All operations are pure functions of their arguments: no heap allocation on
the hot paths (the big-integer fallback used by the float parser's slow
path is a fixed-capacity stack array, not a slice growth), no locale
awareness, no global mutable state. A NumberFormat or Options value may be
shared and reused concurrently from any number of goroutines.

Errors are values of type *Error, carrying an ErrorKind and the byte offset
at which parsing failed; see the Error and ErrorKind documentation for the
full list of kinds and how offsets are computed.
*/
package lexical
