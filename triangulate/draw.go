package triangulate

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// dbgDrawPadding keeps a margin around the shape so nothing touches the
// image edge.
const dbgDrawPadding = 20

// DebugDraw rasterizes a triangulation result over its source polygons and
// prints it to the terminal via iTerm's inline image protocol, in the same
// spirit as the original tool's ad hoc gg/imgcat debug helper. It's meant to
// be called from a test or a CLI flag, never from the triangulation path
// itself.
func DebugDraw(polygons PolygonList, triangles TriangleList, scale float64) error {
	minX, minY, maxX, maxY := bounds(polygons)

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin is bottom-left, then pad and scale into place.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1 / scale)
	for _, tri := range triangles {
		c.MoveTo(tri.A.X, tri.A.Y)
		c.LineTo(tri.B.X, tri.B.Y)
		c.LineTo(tri.C.X, tri.C.Y)
		c.ClosePath()
		if tri.ColorHex != "" {
			c.SetHexColor(tri.ColorHex)
		} else {
			c.SetRGBA(0.3, 0.2, 1, 0.6)
		}
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}

	c.SetLineWidth(2 / scale)
	c.SetRGB(0, 1, 1)
	for _, poly := range polygons {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.Stroke()
	}

	const path = "/tmp/triangulate_debug.png"
	if err := c.SavePNG(path); err != nil {
		return err
	}
	return imgcat.CatFile(path, os.Stdout)
}

func bounds(polygons PolygonList) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, poly := range polygons {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return
}
