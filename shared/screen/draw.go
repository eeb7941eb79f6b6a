// Package screen provides the window and surface drawing used by the viewer.
package screen

import (
	"image/color"
	"math"

	"github.com/Eliasin/projections/shared/geom"
	"github.com/veandco/go-sdl2/sdl"
)

// set colours a single pixel, ignoring coordinates outside the surface.
func set(surface *sdl.Surface, x, y int, c color.Color) {
	if x >= 0 && x < int(surface.W) && y >= 0 && y < int(surface.H) {
		surface.Set(x, y, c)
	}
}

// DrawPoint draws a filled disc of the given radius centred on p.
func DrawPoint(surface *sdl.Surface, p geom.Coord, c color.Color, radius int) {
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if i*i+j*j <= radius*radius {
				set(surface, p.X+i, p.Y+j, c)
			}
		}
	}
}

// DrawSegment draws the line segment between a and b, with a disc of the
// given radius marking either endpoint.
func DrawSegment(surface *sdl.Surface, a, b geom.Coord, c color.Color, radius int) {
	DrawPoint(surface, a, c, radius)
	DrawPoint(surface, b, c, radius)

	// Walk the segment one pixel per step along its longer axis.
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		return
	}
	xInc, yInc := dx/steps, dy/steps
	x, y := float64(a.X), float64(a.Y)
	for i := 0; i <= int(steps); i++ {
		set(surface, int(x), int(y), c)
		x += xInc
		y += yInc
	}
}

// DrawPolygon draws the closed loop running through points in order.
func DrawPolygon(surface *sdl.Surface, points []geom.Coord, c color.Color, radius int) {
	if len(points) == 0 {
		return
	}
	for i := range points {
		DrawSegment(surface, points[i], points[(i+1)%len(points)], c, radius)
	}
}
