package planar

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// This is for debugging purposes only

// Padding around the shapes so stray points near the edge stay visible
const dbgDrawPadding = 50

// Render the polygons stacked on one image and print it in the terminal
// (iTerm only). The first polygon is filled; the rest are drawn as outlines,
// which makes it easy to eyeball a hull over its input, or a containment
// polygon with a probe point marked as a tiny triangle.
func dbgDraw(scale float64, polys ...Polygon) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, poly := range polys {
		if len(poly) == 0 {
			continue
		}
		c.MoveTo(poly[0].X, poly[0].Y)
		for _, p := range poly[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		if i == 0 {
			c.SetRGB(0, 0.5, 0)
			c.FillPreserve()
		}
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	if err := c.SavePNG("/tmp/planar_debug.png"); err != nil {
		return errors.Wrap(err, "could not save debug drawing")
	}
	imgcat.CatFile("/tmp/planar_debug.png", os.Stdout)
	return nil
}
