// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"strconv"
	"testing"
)

func TestParseFloat64Decimal(t *testing.T) {
	format := Decimal()
	for _, d := range []struct {
		s    string
		want float64
	}{
		{"0", 0},
		{"-0", 0}, // sign checked separately below
		{"1", 1},
		{"1.5", 1.5},
		{"-1.5", -1.5},
		{"1e10", 1e10},
		{"1.5e-10", 1.5e-10},
		{"0.1", 0.1},
		{"3.14159265358979", 3.14159265358979},
	} {
		got, err := ParseFloat[float64]([]byte(d.s), format, nil)
		if err != nil {
			t.Errorf("ParseFloat(%q) error: %v", d.s, err)
			continue
		}
		if got != d.want {
			t.Errorf("ParseFloat(%q) = %v, want %v", d.s, got, d.want)
		}
	}
}

func TestParseFloat64NegativeZero(t *testing.T) {
	got, err := ParseFloat[float64]([]byte("-0"), Decimal(), nil)
	if err != nil {
		t.Fatalf("ParseFloat(-0) error: %v", err)
	}
	if !math.Signbit(got) || got != 0 {
		t.Fatalf("ParseFloat(-0) = %v, want negative zero", got)
	}
}

// TestParseFloat64StrtodBoundary checks the large-exponent scenario from
// spec.md section 8 against the bit pattern a correctly-rounding strtod
// produces for the same string.
func TestParseFloat64StrtodBoundary(t *testing.T) {
	got, err := ParseFloat[float64]([]byte("2.808895523222369e+306"), Decimal(), nil)
	if err != nil {
		t.Fatalf("ParseFloat error: %v", err)
	}
	want, _ := strconv.ParseFloat("2.808895523222369e+306", 64)
	if got != want {
		t.Fatalf("ParseFloat(2.808895523222369e+306) = %x, want %x",
			math.Float64bits(got), math.Float64bits(want))
	}
}

func TestParseFloat64UnderflowToZero(t *testing.T) {
	got, err := ParseFloat[float64]([]byte("1e-400"), Decimal(), nil)
	if err != nil {
		t.Fatalf("ParseFloat(1e-400) error: %v", err)
	}
	if got != 0 || math.Signbit(got) {
		t.Fatalf("ParseFloat(1e-400) = %v, want +0.0", got)
	}
}

func TestParseFloat64OverflowToInf(t *testing.T) {
	got, err := ParseFloat[float64]([]byte("1e400"), Decimal(), nil)
	if err != nil {
		t.Fatalf("ParseFloat(1e400) error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Fatalf("ParseFloat(1e400) = %v, want +Inf", got)
	}
}

func TestParseFloat64SmallestSubnormal(t *testing.T) {
	got, err := ParseFloat[float64]([]byte("5e-324"), Decimal(), nil)
	if err != nil {
		t.Fatalf("ParseFloat(5e-324) error: %v", err)
	}
	if math.Float64bits(got) != 1 {
		t.Fatalf("ParseFloat(5e-324) bits = %#x, want 0x1", math.Float64bits(got))
	}
}

func TestParseFloat64SubnormalBoundary(t *testing.T) {
	got, err := ParseFloat[float64]([]byte("2.4703282292062327208828439643e-324"), Decimal(), nil)
	if err != nil {
		t.Fatalf("ParseFloat error: %v", err)
	}
	if math.Float64bits(got) != 1 {
		t.Fatalf("ParseFloat bits = %#x, want 0x1", math.Float64bits(got))
	}
}

func TestParseFloat64RoundTripWriteFloat(t *testing.T) {
	var buf [32]byte
	for _, v := range []float64{0.1, 1, -1, 3.14159265358979, 1e100, 1e-100,
		1.7976931348623157e308, 5e-324} {
		n := WriteFloat(v, buf[:], Decimal(), nil)
		got, err := ParseFloat[float64](buf[:n], Decimal(), nil)
		if err != nil {
			t.Errorf("round-trip %v (%q): parse error %v", v, buf[:n], err)
			continue
		}
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("round-trip %v (%q) = %v, want exact", v, buf[:n], got)
		}
	}
}

func TestParseFloatInvalidDigit(t *testing.T) {
	if _, err := ParseFloat[float32]([]byte("1.1.0"), Decimal(), nil); err == nil {
		t.Fatal("ParseFloat(1.1.0) expected ErrInvalidDigit")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrInvalidDigit || e.Offset != 3 {
		t.Fatalf("ParseFloat(1.1.0) error = %v, want ErrInvalidDigit at offset 3", err)
	}
}

func TestParseFloatPartial(t *testing.T) {
	got, n, err := ParseFloatPartial[float32]([]byte("1.1.0"), Decimal(), nil)
	if err != nil {
		t.Fatalf("ParseFloatPartial error: %v", err)
	}
	if got != 1.1 || n != 3 {
		t.Fatalf("ParseFloatPartial(1.1.0) = (%v, %d), want (1.1, 3)", got, n)
	}
}

func TestParseFloatDigitSeparator(t *testing.T) {
	format, err := NewNumberFormatBuilder().
		DigitSeparator('_', SeparatorInternal, SeparatorInternal, SeparatorInternal).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got, err := ParseFloat[float64]([]byte("1_2.34"), format, nil)
	if err != nil {
		t.Fatalf("ParseFloat(1_2.34) error: %v", err)
	}
	if got != 12.34 {
		t.Fatalf("ParseFloat(1_2.34) = %v, want 12.34", got)
	}

	if _, err := ParseFloat[float64]([]byte("_12.34"), format, nil); err == nil {
		t.Fatal("ParseFloat(_12.34) expected error at offset 0")
	} else if e, ok := err.(*Error); !ok || e.Offset != 0 {
		t.Fatalf("ParseFloat(_12.34) error = %v, want offset 0", err)
	}

	if _, err := ParseFloat[float64]([]byte("12.34_"), format, nil); err == nil {
		t.Fatal("ParseFloat(12.34_) expected error at offset 5")
	} else if e, ok := err.(*Error); !ok || e.Offset != 5 {
		t.Fatalf("ParseFloat(12.34_) error = %v, want offset 5", err)
	}
}

func TestParseFloatNoFloatLeadingZeros(t *testing.T) {
	format, err := NewNumberFormatBuilder().NoFloatLeadingZeros(true).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := ParseFloat[float64]([]byte("01.5"), format, nil); err == nil {
		t.Fatal("ParseFloat(01.5) expected ErrInvalidLeadingZeros")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrInvalidLeadingZeros {
		t.Fatalf("ParseFloat(01.5) error = %v, want ErrInvalidLeadingZeros", err)
	}
	got, err := ParseFloat[float64]([]byte("10.5"), format, nil)
	if err != nil || got != 10.5 {
		t.Fatalf("ParseFloat(10.5) = (%v, %v), want (10.5, nil)", got, err)
	}
}

func TestParseFloatNaNInf(t *testing.T) {
	got, err := ParseFloat[float64]([]byte("NaN"), Decimal(), nil)
	if err != nil || !math.IsNaN(got) {
		t.Fatalf("ParseFloat(NaN) = (%v, %v), want NaN", got, err)
	}
	got, err = ParseFloat[float64]([]byte("-inf"), Decimal(), nil)
	if err != nil || !math.IsInf(got, -1) {
		t.Fatalf("ParseFloat(-inf) = (%v, %v), want -Inf", got, err)
	}
	got, err = ParseFloat[float64]([]byte("infinity"), Decimal(), nil)
	if err != nil || !math.IsInf(got, 1) {
		t.Fatalf("ParseFloat(infinity) = (%v, %v), want +Inf", got, err)
	}
}

func TestParseFloatRadix16(t *testing.T) {
	got, err := ParseFloat[float64]([]byte("1.8p3"), Hex(), nil)
	if err != nil {
		t.Fatalf("ParseFloat(1.8p3, Hex) error: %v", err)
	}
	if got != 12 { // 1.8(16) = 1.5; 1.5 * 2**3 = 12
		t.Fatalf("ParseFloat(1.8p3, Hex) = %v, want 12", got)
	}
}
