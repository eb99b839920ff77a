package lexical

import "testing"

func TestWriteIntegerDecimal(t *testing.T) {
	cases := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{9, "9"},
		{10, "10"},
		{99, "99"},
		{100, "100"},
		{12345, "12345"},
		{-12345, "-12345"},
		{9223372036854775807, "9223372036854775807"},
		{-9223372036854775808, "-9223372036854775808"},
	}
	opts := DefaultWriteIntegerOptions()
	for _, c := range cases {
		var buf [32]byte
		n := WriteInteger(c.v, opts, buf[:])
		if got := string(buf[:n]); got != c.want {
			t.Errorf("WriteInteger(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestWriteIntegerUnsigned(t *testing.T) {
	var buf [32]byte
	n := WriteInteger(uint64(18446744073709551615), DefaultWriteIntegerOptions(), buf[:])
	if got, want := string(buf[:n]), "18446744073709551615"; got != want {
		t.Errorf("WriteInteger(uint64 max) = %q, want %q", got, want)
	}
}

func TestWriteIntegerRadix(t *testing.T) {
	opts := WriteIntegerOptions{Radix: 16}
	var buf [32]byte
	n := WriteInteger(uint64(255), opts, buf[:])
	if got, want := string(buf[:n]), "ff"; got != want {
		t.Errorf("WriteInteger base16(255) = %q, want %q", got, want)
	}

	opts.Uppercase = true
	n = WriteInteger(uint64(255), opts, buf[:])
	if got, want := string(buf[:n]), "FF"; got != want {
		t.Errorf("WriteInteger base16 uppercase(255) = %q, want %q", got, want)
	}
}

func TestWriteIntegerRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 42, -42, 1000000, -1000000, 7654321}
	parseOpts := DefaultParseIntegerOptions()
	writeOpts := DefaultWriteIntegerOptions()
	for _, v := range values {
		var buf [32]byte
		n := WriteInteger(v, writeOpts, buf[:])
		r := ParseInteger[int64](buf[:n], parseOpts)
		if !r.Ok() || r.Value != v {
			t.Errorf("round trip of %d through %q failed: %+v", v, buf[:n], r)
		}
	}
}
