package table

import "testing"

func TestDigitValue(t *testing.T) {
	cases := []struct {
		c     byte
		radix int
		value uint8
		ok    bool
	}{
		{'0', 10, 0, true},
		{'9', 10, 9, true},
		{'a', 16, 10, true},
		{'A', 16, 10, true},
		{'z', 36, 35, true},
		{'g', 16, 0, false},
		{'-', 10, 0, false},
		{' ', 2, 0, false},
		{'1', 2, 1, true},
		{'2', 2, 0, false},
	}
	for _, c := range cases {
		v, ok := DigitValue(c.c, c.radix)
		if ok != c.ok || (ok && v != c.value) {
			t.Errorf("DigitValue(%q, %d) = (%d, %v), want (%d, %v)", c.c, c.radix, v, ok, c.value, c.ok)
		}
	}
}

func TestDigit(t *testing.T) {
	if got := Digit(10, 16, false); got != 'a' {
		t.Errorf("Digit(10, 16, false) = %q, want 'a'", got)
	}
	if got := Digit(10, 16, true); got != 'A' {
		t.Errorf("Digit(10, 16, true) = %q, want 'A'", got)
	}
	if got := Digit(9, 10, false); got != '9' {
		t.Errorf("Digit(9, 10, false) = %q, want '9'", got)
	}
}

func TestDigitPairs(t *testing.T) {
	for i, pair := range DigitPairs {
		want := string([]byte{byte('0' + i/10), byte('0' + i%10)})
		if pair != want {
			t.Fatalf("DigitPairs[%d] = %q, want %q", i, pair, want)
		}
	}
}

func TestDecimalDigits(t *testing.T) {
	cases := []struct {
		x    uint64
		want uint
	}{
		{0, 0},
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{999999999999999999, 18},
		{1000000000000000000, 19},
		{18446744073709551615, 20},
	}
	for _, c := range cases {
		if got := DecimalDigits(c.x); got != c.want {
			t.Errorf("DecimalDigits(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestPow10(t *testing.T) {
	v := uint64(1)
	for i, p := range Pow10 {
		if p != v {
			t.Fatalf("Pow10[%d] = %d, want %d", i, p, v)
		}
		if i < len(Pow10)-1 {
			v *= 10
		}
	}
}

func TestPow10f(t *testing.T) {
	v := 1.0
	for i := 0; i <= 22; i++ {
		if got := Pow10f(i); got != v {
			t.Errorf("Pow10f(%d) = %v, want %v", i, got, v)
		}
		v *= 10
	}
}
