// Package geom provides shared geometry functionality for use by the viewer and the plotter.
package geom

// Plane represents the set of points p satisfying Normal·p + Intercept = 0.
// The normal must be non-zero, but it need not be unit length: its magnitude
// cancels out of every projection formula below.
type Plane struct {
	Normal    Vector
	Intercept float64
}

// NewPlane creates a new plane with the given normal and intercept.
// A zero normal leaves the plane undefined, so it is rejected with a
// DegenerateVectorError.
func NewPlane(normal Vector, intercept float64) (Plane, error) {
	if normal.Zero() {
		return Plane{}, DegenerateVectorError{Vector: normal}
	}
	return Plane{Normal: normal, Intercept: intercept}, nil
}

// ProjectFrom returns the unique intersection of the plane with the
// sightline through view and p. If the sightline is parallel to the plane
// (which includes view and p coinciding), no unique intersection exists and
// a NoIntersectionError is returned.
func (pl Plane) ProjectFrom(p, view Vector) (Vector, error) {
	dir := p.Sub(view)
	denom := pl.Normal.Dot(dir)
	if denom == 0.0 {
		return Vector{}, NoIntersectionError{Point: p, View: view}
	}
	t := -(pl.Normal.Dot(p) + pl.Intercept) / denom
	return p.Add(dir.Scale(t)), nil
}

// ProjectThrough returns the projection of p onto the plane along the
// plane's own normal, independent of any viewpoint. This is equivalent to
// ProjectFrom with the synthetic ray origin p + Normal, but it can never
// fail: the denominator is the squared normal length, which is non-zero by
// construction.
func (pl Plane) ProjectThrough(p Vector) Vector {
	t := (pl.Normal.Dot(p) + pl.Intercept) / pl.Normal.Dot(pl.Normal)
	return p.Sub(pl.Normal.Scale(t))
}

// ProjectLine returns the image of the line l under projection along the
// plane's normal, rebuilt from the projections of two distinct points on l.
// If l runs along the normal, its image degenerates to a single point and a
// DegenerateVectorError is returned.
func (pl Plane) ProjectLine(l Line) (Line, error) {
	p1 := pl.ProjectThrough(l.Point)
	p2 := pl.ProjectThrough(l.At(1))
	return NewLine(p1, p2.Sub(p1))
}

// Basis derives the plane's local coordinate axes from hint. The first axis
// is the normalized projection of hint onto the plane along the normal; the
// second is perpendicular to both the normal and the first, so both axes lie
// in the plane. The hint must not be parallel to the plane's normal, or the
// first axis is undefined and a DegenerateVectorError is returned.
func (pl Plane) Basis(hint Vector) (Basis, error) {
	q, err := pl.ProjectThrough(hint).Norm()
	if err != nil {
		return Basis{}, err
	}
	r, err := pl.Normal.Cross(q).Norm()
	if err != nil {
		return Basis{}, err
	}
	return Basis{Q: q, R: r}, nil
}
