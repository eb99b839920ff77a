package lexical

import "testing"

func TestMaxFormattedWidth(t *testing.T) {
	// MaxFormattedWidth is a sizing upper bound, not necessarily tight;
	// check it is large enough to hold the widest actual rendering
	// WriteInteger could produce for uint64's max value in each radix.
	cases := []struct {
		radix int
		min   int
	}{
		{2, 64},  // 2**64-1 is 64 binary digits
		{10, 20}, // 2**64-1 is 20 decimal digits
		{16, 16}, // 2**64-1 is 16 hex digits
		{36, 13}, // 2**64-1 fits in 13 base-36 digits
	}
	for _, c := range cases {
		if got := MaxFormattedWidth[uint64](c.radix); got < c.min {
			t.Errorf("MaxFormattedWidth[uint64](%d) = %d, too small (need >= %d)", c.radix, got, c.min)
		}
	}
}

func TestMaxFormattedWidthSmallerKinds(t *testing.T) {
	if got := MaxFormattedWidth[int8](10); got < 4 {
		t.Errorf("MaxFormattedWidth[int8](10) = %d, too small for \"-128\"", got)
	}
	if got := MaxFormattedWidth[uint8](16); got < 2 {
		t.Errorf("MaxFormattedWidth[uint8](16) = %d, too small for \"ff\"", got)
	}
}

func TestMaxFloatWidth(t *testing.T) {
	if got := MaxFloatWidth(10); got != 24 {
		t.Errorf("MaxFloatWidth(10) = %d, want 24", got)
	}
	// Non-decimal radixes don't search for the shortest round-trip
	// string (writeRadix in write_float.go), so the bound must be wide
	// enough to hold a sign plus binary64's full integer-part digit count
	// at that radix (256 hex digits); check that floor rather than pin an
	// exact value.
	if got := MaxFloatWidth(16); got < 1+256 {
		t.Errorf("MaxFloatWidth(16) = %d, too small for a full-precision hex float", got)
	}
	if got, want := MaxFloatWidth(2), MaxFloatWidth(16); got <= want {
		t.Errorf("MaxFloatWidth(2) = %d, want > MaxFloatWidth(16) = %d (binary needs more digits than hex)", got, want)
	}
}
