package hex

import (
	"fmt"

	errs "github.com/matzehuels/hexlife/pkg/errors"
)

// Dimensions is the validated size of a grid in cells. The zero value is not
// valid; use NewDimensions.
type Dimensions struct {
	width  int
	height int
}

// NewDimensions validates width and height and returns the dimensions.
// Non-positive values yield an INVALID_DIMENSIONS error; they are never clamped.
func NewDimensions(width, height int) (Dimensions, error) {
	if width <= 0 || height <= 0 {
		return Dimensions{}, errs.New(errs.ErrCodeInvalidDimensions,
			"grid dimensions must be positive, got %dx%d", width, height)
	}
	return Dimensions{width: width, height: height}, nil
}

// Width returns the number of columns (q extent).
func (d Dimensions) Width() int { return d.width }

// Height returns the number of rows (r extent).
func (d Dimensions) Height() int { return d.height }

// Cells returns width*height.
func (d Dimensions) Cells() int { return d.width * d.height }

// String returns "WxH".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.width, d.height)
}
