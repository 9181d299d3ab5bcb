package render

import (
	"image/color"
	"testing"

	errs "github.com/matzehuels/hexlife/pkg/errors"
)

func TestRectEdges(t *testing.T) {
	r := Rect{X: 162, Y: 0, W: 638, H: 600}
	if r.Right() != 800 {
		t.Errorf("Right() = %d, want 800", r.Right())
	}
	if r.Bottom() != 600 {
		t.Errorf("Bottom() = %d, want 600", r.Bottom())
	}
	if r.String() != "638x600+162+0" {
		t.Errorf("String() = %q", r.String())
	}
}

func TestRectWithin(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"full surface", Rect{0, 0, 800, 600}, true},
		{"inner", Rect{162, 0, 638, 600}, true},
		{"too wide", Rect{162, 0, 639, 600}, false},
		{"too tall", Rect{0, 1, 800, 600}, false},
		{"negative x", Rect{-1, 0, 10, 10}, false},
		{"negative y", Rect{0, -1, 10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Within(800, 600); got != tt.want {
				t.Errorf("Within(800, 600) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckSubRegion(t *testing.T) {
	tests := []struct {
		name    string
		rect    Rect
		wantErr bool
	}{
		{"fits", Rect{162, 0, 638, 600}, false},
		{"exact", Rect{0, 0, 800, 600}, false},
		{"empty width", Rect{10, 0, 0, 600}, true},
		{"empty height", Rect{10, 0, 10, 0}, true},
		{"exceeds right", Rect{700, 0, 200, 600}, true},
		{"exceeds bottom", Rect{0, 100, 800, 600}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSubRegion(800, 600, tt.rect)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckSubRegion(%v) error = %v, wantErr %v", tt.rect, err, tt.wantErr)
			}
			if err != nil && !errs.Is(err, errs.ErrCodeResourceAcquisition) {
				t.Errorf("code = %v, want %v", errs.GetCode(err), errs.ErrCodeResourceAcquisition)
			}
		})
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		c    color.RGBA
		want string
	}{
		{color.RGBA{0, 0, 0, 255}, "#000000"},
		{color.RGBA{100, 100, 100, 255}, "#646464"},
		{color.RGBA{40, 44, 52, 255}, "#282c34"},
		{color.RGBA{255, 255, 255, 0}, "#ffffff"},
	}
	for _, tt := range tests {
		if got := HexColor(tt.c); got != tt.want {
			t.Errorf("HexColor(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestApproxTextWidth(t *testing.T) {
	if got := ApproxTextWidth("HexLife", 10); got != 42 {
		t.Errorf("ApproxTextWidth = %v, want 42", got)
	}
	if got := ApproxTextWidth("", 24); got != 0 {
		t.Errorf("ApproxTextWidth(empty) = %v, want 0", got)
	}
}
