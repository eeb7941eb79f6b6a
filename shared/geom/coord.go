// Package geom provides shared geometry functionality for use by the viewer and the plotter.
package geom

// Coord represents an integer coordinate pair in a plane's local 2D frame.
type Coord struct {
	X int
	Y int
}
