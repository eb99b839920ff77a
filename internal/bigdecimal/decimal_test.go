package bigdecimal

import "testing"

func TestAssignString(t *testing.T) {
	cases := []struct {
		v    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{9, "9"},
		{10, "10"},
		{100, "100"},
		{12345, "12345"},
		{18446744073709551615, "18446744073709551615"},
	}
	for _, c := range cases {
		var d Decimal
		d.Assign(c.v)
		if got := d.String(); got != c.want {
			t.Errorf("Assign(%d).String() = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestReset(t *testing.T) {
	var d Decimal
	d.Assign(12345)
	d.Reset()
	if got := d.String(); got != "0" {
		t.Fatalf("after Reset, String() = %q, want %q", got, "0")
	}
	if d.ND != 0 || d.DP != 0 || d.Neg {
		t.Fatalf("after Reset, d = %+v, want zero value", d)
	}
}

func TestStringFractional(t *testing.T) {
	var d Decimal
	// 0.0012345, i.e. digits "12345" with DP = -2.
	d.D[0], d.D[1], d.D[2], d.D[3], d.D[4] = '1', '2', '3', '4', '5'
	d.ND = 5
	d.DP = -2
	if got, want := d.String(), "0.0012345"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStringMixed(t *testing.T) {
	var d Decimal
	d.D[0], d.D[1], d.D[2] = '1', '2', '3'
	d.ND = 3
	d.DP = 2
	if got, want := d.String(), "12.3"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestDigit(t *testing.T) {
	var d Decimal
	d.Assign(123)
	if got := d.digit(0); got != '1' {
		t.Errorf("digit(0) = %q, want '1'", got)
	}
	if got := d.digit(2); got != '3' {
		t.Errorf("digit(2) = %q, want '3'", got)
	}
	if got := d.digit(5); got != '0' {
		t.Errorf("digit(5) (out of range) = %q, want '0'", got)
	}
}
