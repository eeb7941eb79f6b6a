// Package geom provides shared geometry functionality for use by the viewer and the plotter.
package geom

import (
	"math"

	"github.com/davidreynolds/gos2/exactfloat"
)

// Vector represents a vector in 3-dimensional space.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Add returns the sum of vectors a and b.
func (a Vector) Add(b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns the difference of vectors a and b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns the vector a multiplied by the scalar s.
func (a Vector) Scale(s float64) Vector {
	return Vector{X: s * a.X, Y: s * a.Y, Z: s * a.Z}
}

// Dot returns the dot product of the vectors a and b.
func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of the vectors a and b.
func (a Vector) Cross(b Vector) Vector {
	return Vector{X: a.Y*b.Z - a.Z*b.Y, Y: a.Z*b.X - a.X*b.Z, Z: a.X*b.Y - a.Y*b.X}
}

// Zero returns whether the vector a is a zero vector.
func (a Vector) Zero() bool {
	return a.X == 0.0 && a.Y == 0.0 && a.Z == 0.0
}

// Len returns the length of the vector a.
func (a Vector) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Norm returns the normalized form of the vector a.
// If a is a zero vector, a DegenerateVectorError is returned.
func (a Vector) Norm() (Vector, error) {
	if a.Zero() {
		return Vector{}, DegenerateVectorError{Vector: a}
	}
	mag := a.Len()
	return Vector{X: a.X / mag, Y: a.Y / mag, Z: a.Z / mag}, nil
}

// Sum returns the component-wise sum of the vectors vs.
// Each component is accumulated exactly before a single final rounding, so
// the result does not depend on the order of vs, even across terms of wildly
// different magnitudes.
func Sum(vs ...Vector) Vector {
	x := exactfloat.NewExactFloat(0)
	y := exactfloat.NewExactFloat(0)
	z := exactfloat.NewExactFloat(0)
	for _, v := range vs {
		x = x.Add(exactfloat.NewExactFloat(v.X))
		y = y.Add(exactfloat.NewExactFloat(v.Y))
		z = z.Add(exactfloat.NewExactFloat(v.Z))
	}
	return Vector{X: x.ToDouble(), Y: y.ToDouble(), Z: z.ToDouble()}
}
