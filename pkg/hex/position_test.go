package hex

import (
	"testing"

	errs "github.com/matzehuels/hexlife/pkg/errors"
)

func TestNeighborsOrder(t *testing.T) {
	p := GridPosition{Q: 2, R: 2}
	want := [DirectionCount]GridPosition{
		{Q: 3, R: 2}, // E
		{Q: 2, R: 3}, // SE
		{Q: 1, R: 3}, // SW
		{Q: 1, R: 2}, // W
		{Q: 2, R: 1}, // NW
		{Q: 3, R: 1}, // NE
	}

	got := p.Neighbors()
	if got != want {
		t.Fatalf("Neighbors() = %v, want %v", got, want)
	}

	for d := 0; d < DirectionCount; d++ {
		n, err := p.Neighbor(d)
		if err != nil {
			t.Fatalf("Neighbor(%d) error = %v", d, err)
		}
		if n != want[d] {
			t.Errorf("Neighbor(%d) = %v, want %v", d, n, want[d])
		}
	}
}

func TestNeighborsSet(t *testing.T) {
	p := GridPosition{Q: 2, R: 2}
	want := map[GridPosition]bool{
		{Q: 3, R: 2}: true, {Q: 2, R: 3}: true, {Q: 1, R: 3}: true,
		{Q: 1, R: 2}: true, {Q: 2, R: 1}: true, {Q: 3, R: 1}: true,
	}

	seen := make(map[GridPosition]bool)
	for _, n := range p.Neighbors() {
		if !want[n] {
			t.Errorf("unexpected neighbor %v", n)
		}
		seen[n] = true
	}
	if len(seen) != len(want) {
		t.Errorf("got %d distinct neighbors, want %d", len(seen), len(want))
	}
}

func TestNeighborDirectionConstants(t *testing.T) {
	origin := GridPosition{}
	tests := []struct {
		name string
		dir  int
		want GridPosition
	}{
		{"east", East, GridPosition{Q: 1, R: 0}},
		{"south-east", SouthEast, GridPosition{Q: 0, R: 1}},
		{"south-west", SouthWest, GridPosition{Q: -1, R: 1}},
		{"west", West, GridPosition{Q: -1, R: 0}},
		{"north-west", NorthWest, GridPosition{Q: 0, R: -1}},
		{"north-east", NorthEast, GridPosition{Q: 1, R: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := origin.Neighbor(tt.dir)
			if err != nil {
				t.Fatalf("Neighbor(%d) error = %v", tt.dir, err)
			}
			if got != tt.want {
				t.Errorf("Neighbor(%d) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestNeighborOutOfRange(t *testing.T) {
	p := GridPosition{Q: 2, R: 2}
	for _, d := range []int{-1, 6, 100} {
		_, err := p.Neighbor(d)
		if err == nil {
			t.Errorf("Neighbor(%d) error = nil, want OUT_OF_RANGE", d)
			continue
		}
		if !errs.Is(err, errs.ErrCodeOutOfRange) {
			t.Errorf("Neighbor(%d) code = %v, want %v", d, errs.GetCode(err), errs.ErrCodeOutOfRange)
		}
	}
}

func TestPositionEquality(t *testing.T) {
	a := GridPosition{Q: 1, R: 2}
	b := GridPosition{Q: 1, R: 2}
	c := GridPosition{Q: 2, R: 1}

	if a != b {
		t.Error("equal coordinates should compare equal")
	}
	if a == c {
		t.Error("swapped coordinates should not compare equal")
	}

	m := map[GridPosition]string{a: "a"}
	if m[b] != "a" {
		t.Error("equal positions should hash to the same map key")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b GridPosition
		want int
	}{
		{GridPosition{0, 0}, GridPosition{0, 0}, 0},
		{GridPosition{0, 0}, GridPosition{1, 0}, 1},
		{GridPosition{0, 0}, GridPosition{1, -1}, 1},
		{GridPosition{0, 0}, GridPosition{2, 2}, 4},
		{GridPosition{2, 2}, GridPosition{-1, 3}, 3},
	}

	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("%v.Distance(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Distance(tt.a); got != tt.want {
			t.Errorf("%v.Distance(%v) = %d, want %d (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}

	p := GridPosition{Q: 5, R: -3}
	for _, n := range p.Neighbors() {
		if d := p.Distance(n); d != 1 {
			t.Errorf("distance to neighbor %v = %d, want 1", n, d)
		}
	}
}

func TestPositionString(t *testing.T) {
	if got := (GridPosition{Q: -1, R: 4}).String(); got != "(-1,4)" {
		t.Errorf("String() = %q, want %q", got, "(-1,4)")
	}
}
