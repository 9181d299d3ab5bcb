package hex

import "testing"

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	d, err := NewDimensions(w, h)
	if err != nil {
		t.Fatalf("NewDimensions(%d, %d): %v", w, h, err)
	}
	return NewGrid(d)
}

func TestIsValidPositionBoundaries(t *testing.T) {
	g := mustGrid(t, 5, 10)

	tests := []struct {
		name string
		pos  GridPosition
		want bool
	}{
		{"origin", GridPosition{0, 0}, true},
		{"max corner", GridPosition{4, 9}, true},
		{"top right corner", GridPosition{4, 0}, true},
		{"bottom left corner", GridPosition{0, 9}, true},
		{"interior", GridPosition{2, 5}, true},
		{"left of origin", GridPosition{-1, 0}, false},
		{"above origin", GridPosition{0, -1}, false},
		{"diagonal outside origin", GridPosition{-1, -1}, false},
		{"q at width", GridPosition{5, 0}, false},
		{"r at height", GridPosition{0, 10}, false},
		{"past max corner", GridPosition{5, 10}, false},
		{"q at width on last row", GridPosition{5, 9}, false},
		{"r at height on last column", GridPosition{4, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsValidPosition(tt.pos); got != tt.want {
				t.Errorf("IsValidPosition(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestIsValidPositionExhaustive(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 3}, {5, 10}, {7, 2}} {
		w, h := size[0], size[1]
		g := mustGrid(t, w, h)
		for q := -2; q < w+2; q++ {
			for r := -2; r < h+2; r++ {
				want := q >= 0 && q < w && r >= 0 && r < h
				if got := g.IsValidPosition(GridPosition{q, r}); got != want {
					t.Errorf("%dx%d: IsValidPosition(%d,%d) = %v, want %v", w, h, q, r, got, want)
				}
			}
		}
	}
}

func TestPositionsOrder(t *testing.T) {
	g := mustGrid(t, 2, 3)
	want := []GridPosition{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}

	var got []GridPosition
	for p := range g.Positions() {
		got = append(got, p)
	}

	if len(got) != len(want) {
		t.Fatalf("Positions() yielded %d positions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPositionsEarlyStop(t *testing.T) {
	g := mustGrid(t, 5, 10)
	n := 0
	for range g.Positions() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d positions, want 3", n)
	}
}

func TestValidNeighbors(t *testing.T) {
	g := mustGrid(t, 3, 3)

	tests := []struct {
		name string
		pos  GridPosition
		want []GridPosition
	}{
		{"center", GridPosition{1, 1}, []GridPosition{{2, 1}, {1, 2}, {0, 2}, {0, 1}, {1, 0}, {2, 0}}},
		{"origin corner", GridPosition{0, 0}, []GridPosition{{1, 0}, {0, 1}}},
		{"far corner", GridPosition{2, 2}, []GridPosition{{1, 2}, {2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ValidNeighbors(tt.pos)
			if len(got) != len(tt.want) {
				t.Fatalf("ValidNeighbors(%v) = %v, want %v", tt.pos, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ValidNeighbors(%v)[%d] = %v, want %v", tt.pos, i, got[i], tt.want[i])
				}
			}
		})
	}
}
