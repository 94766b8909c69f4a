// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"testing"
)

func TestFloat16RoundTripExactValues(t *testing.T) {
	for _, v := range []float32{0, 1, -1, 2, 0.5, 100, -100, 65504} {
		h := Float16FromFloat32(v, nil)
		got := h.Float32()
		if got != v {
			t.Errorf("Float16 round-trip %v -> %v, want exact", v, got)
		}
	}
}

func TestFloat16Infinity(t *testing.T) {
	h := Float16FromFloat32(float32(math.Inf(1)), nil)
	if !math.IsInf(float64(h.Float32()), 1) {
		t.Errorf("Float16(+Inf).Float32() = %v, want +Inf", h.Float32())
	}
	h = Float16FromFloat32(float32(math.Inf(-1)), nil)
	if !math.IsInf(float64(h.Float32()), -1) {
		t.Errorf("Float16(-Inf).Float32() = %v, want -Inf", h.Float32())
	}
}

func TestFloat16Overflow(t *testing.T) {
	// float16 max finite value is 65504; anything larger rounds to
	// infinity rather than erroring (half.go's documented overflow
	// behavior).
	h := Float16FromFloat32(1e10, nil)
	if !math.IsInf(float64(h.Float32()), 1) {
		t.Errorf("Float16(1e10).Float32() = %v, want +Inf", h.Float32())
	}
}

func TestFloat16ParseWriteRoundTrip(t *testing.T) {
	var buf [32]byte
	format := Decimal()
	h, err := ParseFloat16([]byte("1.5"), format, nil)
	if err != nil {
		t.Fatalf("ParseFloat16(1.5) error: %v", err)
	}
	if h.Float32() != 1.5 {
		t.Fatalf("ParseFloat16(1.5) = %v, want 1.5", h.Float32())
	}
	n := WriteFloat16(h, buf[:], format, nil)
	if string(buf[:n]) != "1.5" {
		t.Fatalf("WriteFloat16(1.5) = %q, want %q", buf[:n], "1.5")
	}
}

func TestBFloat16RoundTripExactValues(t *testing.T) {
	for _, v := range []float32{0, 1, -1, 2, 100, -100} {
		b := BFloat16FromFloat32(v, nil)
		got := b.Float32()
		if got != v {
			t.Errorf("BFloat16 round-trip %v -> %v, want exact", v, got)
		}
	}
}

func TestBFloat16TruncatesMantissa(t *testing.T) {
	// bfloat16 keeps only float32's top 7 mantissa bits, so a value that
	// needs more precision than that is not preserved exactly, but it
	// must still widen back to a finite, same-sign value.
	b := BFloat16FromFloat32(1.23456789, nil)
	got := b.Float32()
	if got == 0 || math.Signbit(float64(got)) {
		t.Fatalf("BFloat16(1.23456789).Float32() = %v, want small positive rounding", got)
	}
	if math.Abs(float64(got-1.23456789)) > 0.02 {
		t.Fatalf("BFloat16(1.23456789).Float32() = %v, too far from source", got)
	}
}

func TestParseBFloat16(t *testing.T) {
	b, err := ParseBFloat16([]byte("2"), Decimal(), nil)
	if err != nil {
		t.Fatalf("ParseBFloat16(2) error: %v", err)
	}
	if b.Float32() != 2 {
		t.Fatalf("ParseBFloat16(2) = %v, want 2", b.Float32())
	}
}
