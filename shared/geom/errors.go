// Package geom provides shared geometry functionality for use by the viewer and the plotter.
package geom

import "fmt"

// DegenerateVectorError reports an attempt to normalize a zero-length vector.
type DegenerateVectorError struct {
	Vector Vector
}

func (e DegenerateVectorError) Error() string {
	return fmt.Sprintf("cannot normalize degenerate vector %v", e.Vector)
}

// NoIntersectionError reports a sightline which never meets the projection
// plane, i.e. the ray from View through Point is parallel to the plane.
type NoIntersectionError struct {
	Point Vector
	View  Vector
}

func (e NoIntersectionError) Error() string {
	return fmt.Sprintf("sightline from %v through %v does not intersect the plane", e.View, e.Point)
}

// SingularBasisError reports a basis whose axes are collinear in their x/y
// components, leaving the decomposition system without a unique solution.
type SingularBasisError struct {
	Basis Basis
}

func (e SingularBasisError) Error() string {
	return fmt.Sprintf("basis %v is singular in its x/y components", e.Basis)
}
