// Package state provides the scene and view state shared by the viewer and the plotter.
package state

import (
	"math"

	"github.com/Eliasin/projections/shared/geom"
	"github.com/mwindels/rtreego"
)

// Object represents an instance of a model in 3D space.
type Object struct {
	Pos geom.Vector // The position of the object.

	model *Model // The unit model which this object places in the scene.
}

// NewObject creates an object placing model at pos.
func NewObject(pos geom.Vector, model *Model) *Object {
	return &Object{Pos: pos, model: model}
}

// Bounds gets the rectangular bounding box containing the object o.
func (o *Object) Bounds() *rtreego.Rect {
	// Set up a minimal bounding box.
	// Note: because we use o.Pos, the scene's R-Tree must be rebuilt if an object moves!
	xMin, xMax := o.Pos.X, o.Pos.X
	yMin, yMax := o.Pos.Y, o.Pos.Y
	zMin, zMax := o.Pos.Z, o.Pos.Z

	// For each vertex in the object's model, expand the box if necessary.
	if o.model != nil {
		for _, v := range o.model.vertices {
			xMin = math.Min(xMin, o.Pos.X+v.X)
			xMax = math.Max(xMax, o.Pos.X+v.X)

			yMin = math.Min(yMin, o.Pos.Y+v.Y)
			yMax = math.Max(yMax, o.Pos.Y+v.Y)

			zMin = math.Min(zMin, o.Pos.Z+v.Z)
			zMax = math.Max(zMax, o.Pos.Z+v.Z)
		}
	}

	// Create the bounding box.
	bbox, err := rtreego.NewRect(rtreego.Point{xMin, yMin, zMin}, []float64{math.Max(xMax-xMin, boundEpsilon), math.Max(yMax-yMin, boundEpsilon), math.Max(zMax-zMin, boundEpsilon)})
	if err != nil {
		panic(err)
	}

	return bbox
}

// Outlines returns each face of the object as a loop of world-space
// vertices, in face order. Each loop is ready to hand to View.ProjectPoints.
func (o *Object) Outlines() [][]geom.Vector {
	outlines := make([][]geom.Vector, 0, len(o.model.faces))
	for _, face := range o.model.faces {
		loop := make([]geom.Vector, 0, len(face))
		for _, index := range face {
			loop = append(loop, geom.Sum(o.Pos, o.model.vertices[index]))
		}
		outlines = append(outlines, loop)
	}
	return outlines
}
