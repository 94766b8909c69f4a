// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "testing"

func TestNumberFormatBuilderDefaults(t *testing.T) {
	f, err := NewNumberFormatBuilder().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if f.Radix() != 10 {
		t.Errorf("Radix() = %d, want 10", f.Radix())
	}
	if f.DecimalPoint() != '.' {
		t.Errorf("DecimalPoint() = %q, want '.'", f.DecimalPoint())
	}
	if f.ExponentMarker() != 'e' {
		t.Errorf("ExponentMarker() = %q, want 'e'", f.ExponentMarker())
	}
}

func TestNumberFormatBuilderHexExponentMarker(t *testing.T) {
	f, err := NewNumberFormatBuilder().Radix(16).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if f.ExponentMarker() != '^' {
		t.Errorf("ExponentMarker() = %q, want '^' for radix 16", f.ExponentMarker())
	}
}

func TestNumberFormatBuilderInvalidRadix(t *testing.T) {
	for _, r := range []int{0, 1, 37, 100} {
		if _, err := NewNumberFormatBuilder().Radix(r).Build(); err == nil {
			t.Errorf("Build with radix %d: expected error", r)
		} else if e, ok := err.(*Error); !ok || e.Kind != ErrInvalidMantissaRadix {
			t.Errorf("Build with radix %d: error = %v, want ErrInvalidMantissaRadix", r, err)
		}
	}
}

func TestNumberFormatBuilderSeparatorCollidesWithDigit(t *testing.T) {
	// '5' is a valid decimal digit; it cannot double as a separator.
	_, err := NewNumberFormatBuilder().DigitSeparator('5', SeparatorInternal, SeparatorNone, SeparatorNone).Build()
	if err == nil {
		t.Fatal("expected ErrInvalidDigitSeparator")
	}
	if e, ok := err.(*Error); !ok || e.Kind != ErrInvalidDigitSeparator {
		t.Fatalf("error = %v, want ErrInvalidDigitSeparator", err)
	}
}

func TestNumberFormatBuilderDecimalPointEqualsMarker(t *testing.T) {
	_, err := NewNumberFormatBuilder().DecimalPoint('e').Build()
	if err == nil {
		t.Fatal("expected ErrInvalidPunctuation")
	}
	if e, ok := err.(*Error); !ok || e.Kind != ErrInvalidPunctuation {
		t.Fatalf("error = %v, want ErrInvalidPunctuation", err)
	}
}

func TestNumberFormatBuilderValidSeparator(t *testing.T) {
	f, err := NewNumberFormatBuilder().
		DigitSeparator('_', SeparatorInternal, SeparatorInternal, SeparatorNone).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if f.DigitSeparator() != '_' {
		t.Errorf("DigitSeparator() = %q, want '_'", f.DigitSeparator())
	}
}

func TestOptionsBuilderDefaults(t *testing.T) {
	o := DefaultOptions()
	if o.nanString != "NaN" || o.infString != "inf" {
		t.Errorf("defaults = (%q, %q), want (%q, %q)", o.nanString, o.infString, "NaN", "inf")
	}
	if o.roundingMode != ToNearestEven {
		t.Errorf("default rounding mode = %v, want ToNearestEven", o.roundingMode)
	}
}

func TestOptionsBuilderRejectsCollidingSpecials(t *testing.T) {
	_, err := NewOptionsBuilder().NanString("inf").InfString("inf").Build()
	if err == nil {
		t.Fatal("expected ErrInvalidSpecial")
	}
	if e, ok := err.(*Error); !ok || e.Kind != ErrInvalidSpecial {
		t.Fatalf("error = %v, want ErrInvalidSpecial", err)
	}
}

func TestOptionsBuilderRejectsEmptyStrings(t *testing.T) {
	_, err := NewOptionsBuilder().NanString("").Build()
	if err == nil {
		t.Fatal("expected ErrInvalidSpecial for empty NaN string")
	}
}
