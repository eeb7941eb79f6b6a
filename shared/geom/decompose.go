// Package geom provides shared geometry functionality for use by the viewer and the plotter.
package geom

// Basis holds two in-plane unit vectors serving as a plane's local 2D
// coordinate axes. R is always the normalized cross product of the plane
// normal and Q, so the axes are perpendicular to floating-point tolerance
// (Q itself comes from a projection, not a pure Gram-Schmidt step, so the
// orthogonality is not exact).
type Basis struct {
	Q Vector
	R Vector
}

// Decompose expresses v, which must lie in the span of the basis axes, as a
// coefficient pair (n, m) with v = n*basis.Q + m*basis.R. The solve is a
// direct Cramer elimination over the x/y components only; the z component is
// assumed consistent and is never checked. If the axes are collinear in
// their x/y components the system has no unique solution and a
// SingularBasisError is returned.
func Decompose(v Vector, basis Basis) (float64, float64, error) {
	det := basis.Q.X*basis.R.Y - basis.Q.Y*basis.R.X
	if det == 0.0 {
		return 0, 0, SingularBasisError{Basis: basis}
	}
	n := (v.X*basis.R.Y - v.Y*basis.R.X) / det
	m := (basis.Q.X*v.Y - basis.Q.Y*v.X) / det
	return n, m, nil
}
