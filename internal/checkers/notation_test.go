package checkers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pos := NewEmptyPosition(Giveaway, Dark)
	pos.Place(0, 1, Light, King)
	pos.Place(2, 3, Light, Man)
	pos.Place(5, 4, Dark, Man)
	pos.Place(6, 1, Dark, King)
	pos.ForcedFrom = indexOf(5, 4)
	pos.Hash = pos.CalculateHash()

	decoded, err := DecodePosition(pos.Encode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(*pos, *decoded); diff != "" {
		t.Fatalf("round trip drift:\n%s", diff)
	}
}

func TestEncodeInitialPosition(t *testing.T) {
	got := NewInitialPosition(Classic).Encode()
	want := "1M1M1M1M/M1M1M1M1/1M1M1M1M/8/8/m1m1m1m1/1m1m1m1m/m1m1m1m1 w c -"
	if got != want {
		t.Fatalf("initial encoding:\ngot  %s\nwant %s", got, want)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8/8 w c", // missing forced field
		"8/8/8/8/8/8/8 w c -", // seven rows
		"9/8/8/8/8/8/8/8 w c -",
		"8/8/8/8/8/8/8/8 x c -",
		"8/8/8/8/8/8/8/8 w z -",
		"8/8/8/8/8/8/8/8 w c 64",
		"x7/8/8/8/8/8/8/8 w c -",
	}
	for _, s := range bad {
		if _, err := DecodePosition(s); err == nil {
			t.Fatalf("decoded garbage %q", s)
		}
	}
}
