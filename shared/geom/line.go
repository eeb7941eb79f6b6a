// Package geom provides shared geometry functionality for use by the viewer and the plotter.
package geom

// Line represents a line in 3-dimensional space as a point and a unit direction.
type Line struct {
	Point Vector
	Dir   Vector
}

// NewLine creates a new line through point with direction dir.
// The direction is normalized; a zero dir yields a DegenerateVectorError.
func NewLine(point, dir Vector) (Line, error) {
	unit, err := dir.Norm()
	if err != nil {
		return Line{}, err
	}
	return Line{Point: point, Dir: unit}, nil
}

// At returns the point l.Point + t*l.Dir.
// The parameter t may be any real number, so At(-1) and At(2) are as valid
// as points between the line's defining pair.
func (l Line) At(t float64) Vector {
	return l.Point.Add(l.Dir.Scale(t))
}
