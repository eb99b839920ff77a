package lexical

import (
	"testing"

	"github.com/numeric-go/lexical/format"
)

func TestParseIntegerBasic(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"1", 1, true},
		{"-1", -1, true},
		{"+1", 1, true},
		{"123456789", 123456789, true},
		{"-123456789", -123456789, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false}, // partial parse of "1" then trailing "." fails full-consume
	}
	opts := DefaultParseIntegerOptions()
	for _, c := range cases {
		r := ParseInteger[int64]([]byte(c.in), opts)
		if r.Ok() != c.ok {
			t.Errorf("ParseInteger[int64](%q) ok = %v, want %v (err=%v)", c.in, r.Ok(), c.ok, r.Err)
			continue
		}
		if c.ok && r.Value != c.want {
			t.Errorf("ParseInteger[int64](%q) = %d, want %d", c.in, r.Value, c.want)
		}
	}
}

func TestParseIntegerPartial(t *testing.T) {
	r := ParseIntegerPartial[int64]([]byte("123abc"), DefaultParseIntegerOptions())
	if !r.Ok() || r.Value != 123 || r.Consumed != 3 {
		t.Fatalf("ParseIntegerPartial(\"123abc\") = %+v, want value 123 consumed 3", r)
	}
}

func TestParseIntegerOverflow(t *testing.T) {
	r := ParseInteger[int8]([]byte("200"), DefaultParseIntegerOptions())
	if r.Ok() {
		t.Fatalf("ParseInteger[int8](\"200\") should overflow, got %d", r.Value)
	}
	if r.Err.Kind != ErrOverflow {
		t.Errorf("err kind = %v, want ErrOverflow", r.Err.Kind)
	}
}

func TestParseIntegerUnsignedRejectsSign(t *testing.T) {
	r := ParseInteger[uint64]([]byte("-1"), DefaultParseIntegerOptions())
	if r.Ok() {
		t.Fatal("ParseInteger[uint64](\"-1\") should fail")
	}
}

func TestParseIntegerRadix(t *testing.T) {
	opts := ParseIntegerOptions{Format: format.Standard, Radix: 16}
	r := ParseInteger[uint64]([]byte("ff"), opts)
	if !r.Ok() || r.Value != 255 {
		t.Fatalf("ParseInteger base16(\"ff\") = %+v, want 255", r)
	}
}

func TestParseIntegerLeadingZeros(t *testing.T) {
	f, err := format.NewBuilder().
		RequiredIntegerDigits(true).
		NoIntegerLeadingZeros(true).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	opts := ParseIntegerOptions{Format: f, Radix: 10}

	if r := ParseInteger[int64]([]byte("0"), opts); !r.Ok() {
		t.Errorf("a single \"0\" should always be legal, got err %v", r.Err)
	}
	if r := ParseInteger[int64]([]byte("01"), opts); r.Ok() {
		t.Error("\"01\" should be rejected under NoIntegerLeadingZeros")
	}
}

func TestParseIntegerSeparators(t *testing.T) {
	opts := ParseIntegerOptions{Format: format.TOML, Radix: 10}
	r := ParseInteger[int64]([]byte("1_000_000"), opts)
	if !r.Ok() || r.Value != 1000000 {
		t.Fatalf("ParseInteger(\"1_000_000\") under TOML = %+v, want 1000000", r)
	}
	if r := ParseInteger[int64]([]byte("_1000"), opts); r.Ok() {
		t.Error("TOML should reject a leading separator")
	}
	if r := ParseInteger[int64]([]byte("1__000"), opts); r.Ok() {
		t.Error("TOML should reject consecutive separators")
	}
}

func TestParseIntegerRequiredSign(t *testing.T) {
	f, err := format.NewBuilder().
		RequiredIntegerDigits(true).
		RequiredMantissaSign(true).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	opts := ParseIntegerOptions{Format: f, Radix: 10}
	if r := ParseInteger[int64]([]byte("5"), opts); r.Ok() {
		t.Error("required sign: bare \"5\" should be rejected")
	}
	if r := ParseInteger[int64]([]byte("+5"), opts); !r.Ok() {
		t.Errorf("required sign: \"+5\" should be accepted, got err %v", r.Err)
	}
}
