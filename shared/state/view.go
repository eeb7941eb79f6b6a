// Package state provides the scene and view state shared by the viewer and the plotter.
package state

import (
	"bytes"
	"encoding/gob"
	"math"

	"github.com/Eliasin/projections/shared/geom"
)

// View represents an eye point looking onto a projection plane.
// The plane and its derived basis are fixed at construction; the eye
// position is the only mutable field. Mutation must happen strictly between
// frames: the position must not change while any projection call is reading
// it.
type View struct {
	Pos geom.Vector

	plane geom.Plane
	basis geom.Basis
}

// NewView creates a view at pos onto plane. The plane's local coordinate
// axes are derived from hint once and cached for the life of the view, so a
// hint parallel to the plane's normal fails here rather than mid-frame.
func NewView(pos geom.Vector, plane geom.Plane, hint geom.Vector) (*View, error) {
	basis, err := plane.Basis(hint)
	if err != nil {
		return nil, err
	}
	return &View{Pos: pos, plane: plane, basis: basis}, nil
}

// Plane returns the view's projection plane.
func (v *View) Plane() geom.Plane {
	return v.plane
}

// Basis returns the plane's cached local coordinate axes.
func (v *View) Basis() geom.Basis {
	return v.basis
}

// ProjectPoint maps a single 3D point to integer coordinates in the plane's
// local frame. The point is projected through the eye onto the plane, the
// on-plane result is decomposed along the basis axes, and each coefficient
// is rounded half to even. Degenerate configurations surface as
// NoIntersectionError or SingularBasisError; neither is caught here.
func (v *View) ProjectPoint(p geom.Vector) (geom.Coord, error) {
	onPlane, err := v.plane.ProjectFrom(p, v.Pos)
	if err != nil {
		return geom.Coord{}, err
	}
	n, m, err := geom.Decompose(onPlane, v.basis)
	if err != nil {
		return geom.Coord{}, err
	}
	return geom.Coord{X: int(math.RoundToEven(n)), Y: int(math.RoundToEven(m))}, nil
}

// ProjectPoints maps every point in ps through ProjectPoint, preserving
// order. The first point that fails to project aborts the whole batch.
func (v *View) ProjectPoints(ps []geom.Vector) ([]geom.Coord, error) {
	coords := make([]geom.Coord, len(ps))
	for i, p := range ps {
		coord, err := v.ProjectPoint(p)
		if err != nil {
			return nil, err
		}
		coords[i] = coord
	}
	return coords, nil
}

// Translate moves the eye point by delta. No bounds are enforced: the eye
// may end up on or behind the plane, in which case later projections fail
// with NoIntersectionError.
func (v *View) Translate(delta geom.Vector) {
	v.Pos = geom.Sum(v.Pos, delta)
}

// MarshalBinary converts a view into a binary representation.
func (v View) MarshalBinary() ([]byte, error) {
	// Set up the binary encoder.
	writer := bytes.Buffer{}
	encoder := gob.NewEncoder(&writer)

	// Encode the view's eye position, plane, and basis.
	if err := encoder.Encode(v.Pos); err != nil {
		return nil, err
	}
	if err := encoder.Encode(v.plane); err != nil {
		return nil, err
	}
	if err := encoder.Encode(v.basis); err != nil {
		return nil, err
	}

	return writer.Bytes(), nil
}

// UnmarshalBinary derives a view from its binary representation.
func (v *View) UnmarshalBinary(data []byte) error {
	// Set up the binary decoder.
	reader := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(reader)

	// Decode the view's eye position, plane, and basis.
	if err := decoder.Decode(&v.Pos); err != nil {
		return err
	}
	if err := decoder.Decode(&v.plane); err != nil {
		return err
	}
	if err := decoder.Decode(&v.basis); err != nil {
		return err
	}

	return nil
}
