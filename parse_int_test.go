// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"strconv"
	"testing"
)

func TestParseIntDecimal(t *testing.T) {
	format := Decimal()
	for _, d := range []struct {
		s    string
		want int64
	}{
		{"0", 0},
		{"-0", 0},
		{"1", 1},
		{"-1", -1},
		{"+42", 42},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
		{"00042", 42},
	} {
		got, err := ParseInt[int64]([]byte(d.s), format, nil)
		if err != nil {
			t.Errorf("ParseInt(%q) error: %v", d.s, err)
			continue
		}
		if got != d.want {
			t.Errorf("ParseInt(%q) = %d, want %d", d.s, got, d.want)
		}
	}
}

func TestParseIntOverflow(t *testing.T) {
	format := Decimal()
	if _, err := ParseInt[int8]([]byte("200"), format, nil); err == nil {
		t.Fatalf("ParseInt[int8](200) expected overflow error")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrOverflow {
		t.Fatalf("ParseInt[int8](200) error = %v, want ErrOverflow", err)
	}
	if _, err := ParseInt[uint8]([]byte("-1"), format, nil); err == nil {
		t.Fatalf("ParseInt[uint8](-1) expected sign error")
	}
}

// TestParseIntOverflowOffset checks the exact offsets from spec.md section
// 8 scenario 1: overflow is reported one byte past the digit that crossed
// the limit, not at the digit itself.
func TestParseIntOverflowOffset(t *testing.T) {
	format := Decimal()
	if _, err := ParseInt[uint8]([]byte("256"), format, nil); err == nil {
		t.Fatalf("ParseInt[uint8](256) expected ErrOverflow")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrOverflow || e.Offset != 3 {
		t.Fatalf("ParseInt[uint8](256) error = %v, want ErrOverflow at offset 3", err)
	}
	if _, err := ParseInt[uint8]([]byte("354"), format, nil); err == nil {
		t.Fatalf("ParseInt[uint8](354) expected ErrOverflow")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrOverflow || e.Offset < 2 {
		t.Fatalf("ParseInt[uint8](354) error = %v, want ErrOverflow at offset >= 2", err)
	}
}

func TestParseIntInvalidDigit(t *testing.T) {
	format := Decimal()
	if _, err := ParseInt[int64]([]byte("12a"), format, nil); err == nil {
		t.Fatalf("ParseInt(12a) expected ErrInvalidDigit")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrInvalidDigit || e.Offset != 2 {
		t.Fatalf("ParseInt(12a) error = %v, want ErrInvalidDigit at offset 2", err)
	}
}

func TestParseIntPartial(t *testing.T) {
	format := Decimal()
	got, n, err := ParseIntPartial[int64]([]byte("123abc"), format, nil)
	if err != nil {
		t.Fatalf("ParseIntPartial error: %v", err)
	}
	if got != 123 || n != 3 {
		t.Fatalf("ParseIntPartial(123abc) = (%d, %d), want (123, 3)", got, n)
	}
}

func TestParseIntEmpty(t *testing.T) {
	if _, err := ParseInt[int64]([]byte(""), Decimal(), nil); err == nil {
		t.Fatalf("ParseInt(\"\") expected ErrEmpty")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrEmpty {
		t.Fatalf("ParseInt(\"\") error = %v, want ErrEmpty", err)
	}
}

func TestParseIntRadix16(t *testing.T) {
	format, err := NewNumberFormatBuilder().Radix(16).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, d := range []struct {
		s    string
		want uint64
	}{
		{"ff", 255},
		{"FF", 255},
		{"0", 0},
		{"7fffffffffffffff", math.MaxInt64},
	} {
		got, err := ParseInt[uint64]([]byte(d.s), format, nil)
		if err != nil {
			t.Errorf("ParseInt(%q, radix 16) error: %v", d.s, err)
			continue
		}
		if got != d.want {
			t.Errorf("ParseInt(%q, radix 16) = %d, want %d", d.s, got, d.want)
		}
	}
}

// TestParseIntRoundTrip exercises ParseInt[int64] on the extremes of every
// signed width against strconv as an independent oracle, the same role IDec plays for the teacher's Decimal
// arithmetic tests.
func TestParseIntRoundTrip(t *testing.T) {
	format := Decimal()
	vals := []int64{0, 1, -1, 7, -7, 100, -100, 12345, -12345,
		math.MaxInt8, math.MinInt8, math.MaxInt16, math.MinInt16,
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}
	for _, v := range vals {
		s := strconv.FormatInt(v, 10)
		got, err := ParseInt[int64]([]byte(s), format, nil)
		if err != nil {
			t.Errorf("ParseInt(%q) error: %v", s, err)
			continue
		}
		if got != v {
			t.Errorf("ParseInt(%q) = %d, want %d", s, got, v)
		}
	}
}
