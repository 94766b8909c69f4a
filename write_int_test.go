// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"strconv"
	"testing"
)

func TestWriteIntDecimal(t *testing.T) {
	format := Decimal()
	var buf [32]byte
	for _, v := range []int64{0, 1, -1, 42, -42, 100, 12345, -12345,
		math.MaxInt64, math.MinInt64} {
		n := WriteInt(v, buf[:], format, nil)
		got := string(buf[:n])
		want := strconv.FormatInt(v, 10)
		if got != want {
			t.Errorf("WriteInt(%d) = %q, want %q", v, got, want)
		}
	}
}

func TestWriteIntRadix16(t *testing.T) {
	format, err := NewNumberFormatBuilder().Radix(16).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var buf [32]byte
	for _, v := range []uint64{0, 255, 4096, math.MaxUint64} {
		n := WriteInt(v, buf[:], format, nil)
		got := string(buf[:n])
		want := strconv.FormatUint(v, 16)
		if got != want {
			t.Errorf("WriteInt(%d, radix 16) = %q, want %q", v, got, want)
		}
	}
}

// TestWriteParseIntRoundTrip exercises WriteInt followed by ParseInt
// against the int8, uint8 and int64 extremes, the round-trip property
// spec.md section 8 requires for every integer type.
func TestWriteParseIntRoundTrip(t *testing.T) {
	format := Decimal()
	var buf [32]byte

	int8Vals := []int8{0, 1, -1, math.MaxInt8, math.MinInt8}
	for _, v := range int8Vals {
		n := WriteInt(v, buf[:], format, nil)
		got, err := ParseInt[int8](buf[:n], format, nil)
		if err != nil || got != v {
			t.Errorf("round-trip int8(%d): got=%d err=%v", v, got, err)
		}
	}

	uint8Vals := []uint8{0, 1, 42, math.MaxUint8}
	for _, v := range uint8Vals {
		n := WriteInt(v, buf[:], format, nil)
		got, err := ParseInt[uint8](buf[:n], format, nil)
		if err != nil || got != v {
			t.Errorf("round-trip uint8(%d): got=%d err=%v", v, got, err)
		}
	}

	int64Vals := []int64{0, 1, -1, math.MaxInt64, math.MinInt64}
	for _, v := range int64Vals {
		n := WriteInt(v, buf[:], format, nil)
		got, err := ParseInt[int64](buf[:n], format, nil)
		if err != nil || got != v {
			t.Errorf("round-trip int64(%d): got=%d err=%v", v, got, err)
		}
	}
}

func TestWriteIntNegativeZero(t *testing.T) {
	format := Decimal()
	var buf [8]byte
	n := WriteInt(int64(0), buf[:], format, nil)
	if string(buf[:n]) != "0" {
		t.Fatalf("WriteInt(0) = %q, want %q", buf[:n], "0")
	}
}
