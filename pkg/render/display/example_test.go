package display_test

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/hexlife/pkg/hex"
	"github.com/matzehuels/hexlife/pkg/render/display"
	"github.com/matzehuels/hexlife/pkg/render/sink"
)

func Example() {
	dims, _ := hex.NewDimensions(3, 3)
	grid := hex.NewGrid(dims)

	surface := sink.NewRecorder(800, 600)
	d, err := display.New(grid, display.Config{
		HexSize:   50,
		LineColor: color.RGBA{100, 100, 100, 255},
		LineWidth: 1,
		Padding:   20,
	}, surface)
	if err != nil {
		fmt.Println(err)
		return
	}
	d.Render()

	o := d.Origin()
	fmt.Printf("origin: (%.1f, %.1f)\n", o.X, o.Y)
	fmt.Println("hexagons:", len(surface.OpsOfKind(sink.OpPolygon)))
	// Output:
	// origin: (170.0, 255.0)
	// hexagons: 9
}
