package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/hexlife/pkg/hex"
	"github.com/matzehuels/hexlife/pkg/render/transform"
)

func grid(t *testing.T, w, h int) *hex.Grid {
	t.Helper()
	dims, err := hex.NewDimensions(w, h)
	if err != nil {
		t.Fatalf("NewDimensions() error: %v", err)
	}
	return hex.NewGrid(dims)
}

func TestToDOT_Basic(t *testing.T) {
	g := grid(t, 2, 1)
	dot := ToDOT(g, transform.New(50, 400, 300), Options{})

	if !strings.Contains(dot, "graph G {") {
		t.Error("ToDOT() output missing graph declaration")
	}
	if !strings.Contains(dot, `"0_0" [label="(0,0)", pos="400.00,-300.00!"]`) {
		t.Errorf("ToDOT() output missing pinned node (0,0):\n%s", dot)
	}
	if !strings.Contains(dot, `pos="550.00,-300.00!"`) {
		t.Errorf("ToDOT() output missing pinned node (1,0):\n%s", dot)
	}
	if !strings.Contains(dot, `"0_0" -- "1_0"`) {
		t.Error("ToDOT() output missing edge")
	}
	if strings.Contains(dot, `"1_0" -- "0_0"`) {
		t.Error("ToDOT() emitted an edge twice")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(grid(t, 1, 1), transform.New(10, 5, 7), Options{Detailed: true})
	if !strings.Contains(dot, `label="(0,0)\n5,7"`) {
		t.Errorf("ToDOT() detailed output missing pixel center:\n%s", dot)
	}
}

func TestEdgeCount(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{1, 1, 0},
		{2, 1, 1},
		{1, 2, 1},
		// Each 2x2 block adds E, SE and the SW/NE diagonal.
		{2, 2, 5},
		{3, 3, 16},
	}
	for _, tt := range tests {
		g := grid(t, tt.w, tt.h)
		if got := EdgeCount(g); got != tt.want {
			t.Errorf("EdgeCount(%dx%d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
		dot := ToDOT(g, transform.New(30, 0, 0), Options{})
		if got := strings.Count(dot, " -- "); got != tt.want {
			t.Errorf("ToDOT(%dx%d) has %d edges, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}
