package engine

import "testing"

func TestAllowedTurn(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for _, current := range dirs {
		for _, requested := range dirs {
			allowed := AllowedTurn(requested, current)
			wantAllowed := requested != current.Opposite()
			if allowed != wantAllowed {
				t.Errorf("AllowedTurn(%v, %v) = %v, expected %v",
					requested, current, allowed, wantAllowed)
			}
		}
	}

	// Spot checks: same direction and perpendicular turns are allowed.
	if !AllowedTurn(DirUp, DirUp) {
		t.Error("same-direction request should be allowed")
	}
	if !AllowedTurn(DirLeft, DirUp) || !AllowedTurn(DirRight, DirUp) {
		t.Error("perpendicular turns should be allowed")
	}
	if AllowedTurn(DirDown, DirUp) {
		t.Error("exact reversal should be rejected")
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite(Opposite(%v)) != %v", d, d)
		}
		if d.Opposite() == d {
			t.Errorf("%v should not be its own opposite", d)
		}
	}
}

func TestDelta(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Coord
	}{
		{DirUp, Coord{X: 0, Y: -1}},
		{DirDown, Coord{X: 0, Y: 1}},
		{DirLeft, Coord{X: -1, Y: 0}},
		{DirRight, Coord{X: 1, Y: 0}},
	}

	for _, tc := range tests {
		if got := tc.dir.Delta(); got != tc.want {
			t.Errorf("%v.Delta() = %v, expected %v", tc.dir, got, tc.want)
		}
	}
}
