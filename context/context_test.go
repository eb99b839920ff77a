package context_test

import (
	"math/big"
	"testing"

	"github.com/numeric-go/lexical/context"
	"github.com/numeric-go/lexical/format"
)

func TestContextRoundTrip(t *testing.T) {
	c := context.New(format.Standard)

	var buf [32]byte
	n := context.WriteFloat[float64](c, 2.5, buf[:])
	r := context.ParseFloat[float64](c, buf[:n])
	if !r.Ok() || r.Value != 2.5 {
		t.Fatalf("round trip of 2.5 through context = %+v", r)
	}
}

func TestContextRadix(t *testing.T) {
	c := context.New(format.Standard).WithRadix(16)

	var buf [32]byte
	n := context.WriteInt[uint64](c, 255, buf[:])
	if got, want := string(buf[:n]), "ff"; got != want {
		t.Errorf("WriteInt base16(255) = %q, want %q", got, want)
	}
	r := context.ParseInt[uint64](c, []byte("ff"))
	if !r.Ok() || r.Value != 255 {
		t.Fatalf("ParseInt base16(\"ff\") = %+v, want 255", r)
	}
}

func TestContextUppercase(t *testing.T) {
	c := context.New(format.Standard).WithRadix(16).WithUppercase(true)
	var buf [32]byte
	n := context.WriteInt[uint64](c, 255, buf[:])
	if got, want := string(buf[:n]), "FF"; got != want {
		t.Errorf("WriteInt uppercase base16(255) = %q, want %q", got, want)
	}
}

func TestContextFormat(t *testing.T) {
	c := context.New(format.JSON)
	if c.Format() != format.JSON {
		t.Error("Format() should return the grammar the Context was built from")
	}
}

func TestNewFloatFromBig(t *testing.T) {
	c := context.New(format.Standard)
	x := new(big.Float).SetFloat64(3.5)

	var buf [32]byte
	n := context.NewFloatFromBig(c, x, buf[:])
	if got, want := string(buf[:n]), "3.5"; got != want {
		t.Errorf("NewFloatFromBig(3.5) = %q, want %q", got, want)
	}
}
