package lexical

import "testing"

func TestRoundingModeString(t *testing.T) {
	if got, want := NearestTiesEven.String(), "NearestTiesEven"; got != want {
		t.Errorf("NearestTiesEven.String() = %q, want %q", got, want)
	}
	if got, want := NearestTiesAway.String(), "NearestTiesAway"; got != want {
		t.Errorf("NearestTiesAway.String() = %q, want %q", got, want)
	}
}
