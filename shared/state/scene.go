// Package state provides the scene and view state shared by the viewer and the plotter.
package state

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/Eliasin/projections/shared/geom"
	"github.com/mwindels/rtreego"
)

// defaultHint is the basis hint used when a scene file does not supply one.
// It is not parallel to any axis-aligned normal, so it works for the common
// coordinate planes out of the box.
var defaultHint = geom.Vector{X: 1, Y: 1, Z: 1}

// Scene represents a collection of objects watched by a single view.
type Scene struct {
	Objs *rtreego.Rtree
	View *View
}

// StoredObject is used to unmarshal object data from the JSON format.
type StoredObject struct {
	Model string      `json:"model"`
	Pos   geom.Vector `json:"pos"`
}

// storedView mirrors the view parameters of a JSON scene file.
type storedView struct {
	Pos       geom.Vector  `json:"pos"`
	Normal    geom.Vector  `json:"normal"`
	Intercept float64      `json:"intercept"`
	Hint      *geom.Vector `json:"hint,omitempty"`
}

// storedScene mirrors the layout of a JSON scene file.
type storedScene struct {
	View    storedView     `json:"view"`
	Objects []StoredObject `json:"objects"`
}

// NewScene creates an empty scene watched by view.
func NewScene(view *View) *Scene {
	return &Scene{Objs: rtreego.NewTree(3, 2, 5), View: view}
}

// Insert adds an object to the scene.
func (s *Scene) Insert(o *Object) {
	s.Objs.Insert(o)
}

// Objects returns every object in the scene.
func (s *Scene) Objects() []*Object {
	spatials := s.Objs.SearchCondition(func(nbb *rtreego.Rect) bool { return true })
	objs := make([]*Object, 0, len(spatials))
	for _, sp := range spatials {
		objs = append(objs, sp.(*Object))
	}
	return objs
}

// Within returns every object whose bounding box overlaps the axis-aligned
// box spanning min and max.
func (s *Scene) Within(min, max geom.Vector) []*Object {
	objs := []*Object{}
	for _, sp := range s.Objs.SearchCondition(func(nbb *rtreego.Rect) bool { return overlaps(nbb, min, max) }) {
		objs = append(objs, sp.(*Object))
	}
	return objs
}

// overlaps determines whether a bounding box overlaps the axis-aligned box
// spanning min and max.
func overlaps(bbox *rtreego.Rect, min, max geom.Vector) bool {
	mins := [3]float64{min.X, min.Y, min.Z}
	maxs := [3]float64{max.X, max.Y, max.Z}
	for i := 0; i < 3; i++ {
		if bbox.PointCoord(i) > maxs[i] || bbox.PointCoord(i)+bbox.LengthsCoord(i) < mins[i] {
			return false
		}
	}
	return true
}

// LoadScene reads a scene from either a JSON scene file or a binary
// snapshot, chosen by file extension.
func LoadScene(path string) (*Scene, error) {
	if strings.HasSuffix(path, ".snapshot") {
		return SceneFromSnapshot(path)
	}
	return SceneFromFile(path)
}

// SceneFromFile returns a new scene based on a provided JSON scene file.
// Model paths within the file are resolved relative to the file itself, and
// objects naming the same model file share one loaded copy.
func SceneFromFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var stored storedScene
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}

	// Build the view out of the stored parameters.
	plane, err := geom.NewPlane(stored.View.Normal, stored.View.Intercept)
	if err != nil {
		return nil, err
	}
	hint := defaultHint
	if stored.View.Hint != nil {
		hint = *stored.View.Hint
	}
	view, err := NewView(stored.View.Pos, plane, hint)
	if err != nil {
		return nil, err
	}

	// Load each object's model and place it.
	scene := NewScene(view)
	models := make(map[string]*Model)
	for _, so := range stored.Objects {
		model, exists := models[so.Model]
		if !exists {
			model, err = ModelFromFile(relativePath(path, so.Model))
			if err != nil {
				// If the model can't be found at the relative path, try the path as given.
				model, err = ModelFromFile(so.Model)
				if err != nil {
					return nil, err
				}
			}
			models[so.Model] = model
		}
		scene.Insert(NewObject(so.Pos, model))
	}

	return scene, nil
}

// DemoScene builds the built-in demonstration scene: a single quadrilateral
// watched from the origin onto the plane 2x + 2y + z = 0. The view starts on
// the plane itself, so the quad collapses to the local origin until the eye
// is translated off the plane.
func DemoScene() (*Scene, error) {
	model, err := NewModel(
		[]geom.Vector{
			{X: 100, Y: 50, Z: 1},
			{X: 100, Y: 200, Z: 1},
			{X: 250, Y: 200, Z: 1},
			{X: 250, Y: 50, Z: 1},
		},
		[][]uint{{0, 1, 2, 3}},
	)
	if err != nil {
		return nil, err
	}
	plane, err := geom.NewPlane(geom.Vector{X: 2, Y: 2, Z: 1}, 0)
	if err != nil {
		return nil, err
	}
	view, err := NewView(geom.Vector{}, plane, defaultHint)
	if err != nil {
		return nil, err
	}
	scene := NewScene(view)
	scene.Insert(NewObject(geom.Vector{}, model))
	return scene, nil
}
