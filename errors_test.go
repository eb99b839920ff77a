package lexical

import "testing"

func TestErrorKindString(t *testing.T) {
	if got, want := ErrEmpty.String(), "Empty"; got != want {
		t.Errorf("ErrEmpty.String() = %q, want %q", got, want)
	}
	if got, want := ErrInvalidOptions.String(), "InvalidOptions"; got != want {
		t.Errorf("ErrInvalidOptions.String() = %q, want %q", got, want)
	}
}

func TestErrorError(t *testing.T) {
	e := &Error{Kind: ErrOverflow, Index: 7}
	if got, want := e.Error(), "lexical: Overflow at index 7"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestItoa(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{123, "123"},
		{-42, "-42"},
	}
	for _, c := range cases {
		if got := itoa(c.n); got != c.want {
			t.Errorf("itoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}
