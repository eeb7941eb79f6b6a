// Package state provides the scene and view state shared by the viewer and the plotter.
package state

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/Eliasin/projections/shared/geom"
)

// MarshalBinary converts a scene into a binary representation.
func (s Scene) MarshalBinary() ([]byte, error) {
	// Set up the binary encoder.
	writer := bytes.Buffer{}
	encoder := gob.NewEncoder(&writer)

	// Deduplicate models so objects sharing one write it only once.
	objs := s.Objects()
	models := make([]*Model, 0)
	modelIndices := make(map[*Model]uint)
	positions := make([]geom.Vector, 0, len(objs))
	modelRefs := make([]uint, 0, len(objs))
	for _, o := range objs {
		index, exists := modelIndices[o.model]
		if !exists {
			index = uint(len(models))
			modelIndices[o.model] = index
			models = append(models, o.model)
		}
		positions = append(positions, o.Pos)
		modelRefs = append(modelRefs, index)
	}

	// Encode the scene's models, objects, and view.
	if err := encoder.Encode(models); err != nil {
		return nil, err
	}
	if err := encoder.Encode(positions); err != nil {
		return nil, err
	}
	if err := encoder.Encode(modelRefs); err != nil {
		return nil, err
	}
	if err := encoder.Encode(s.View); err != nil {
		return nil, err
	}

	return writer.Bytes(), nil
}

// UnmarshalBinary derives a scene from its binary representation.
func (s *Scene) UnmarshalBinary(data []byte) error {
	// Set up the binary decoder.
	reader := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(reader)

	// Decode the scene's models, objects, and view.
	var models []*Model
	var positions []geom.Vector
	var modelRefs []uint
	view := &View{}
	if err := decoder.Decode(&models); err != nil {
		return err
	}
	if err := decoder.Decode(&positions); err != nil {
		return err
	}
	if err := decoder.Decode(&modelRefs); err != nil {
		return err
	}
	if err := decoder.Decode(view); err != nil {
		return err
	}
	if len(positions) != len(modelRefs) {
		return fmt.Errorf("snapshot lists %d positions but %d model references", len(positions), len(modelRefs))
	}

	// Rebuild an R-Tree for the objects, relinking each to its shared model.
	restored := NewScene(view)
	for i := range positions {
		if modelRefs[i] >= uint(len(models)) {
			return fmt.Errorf("snapshot object %d refers to model %d of %d", i, modelRefs[i], len(models))
		}
		restored.Insert(NewObject(positions[i], models[modelRefs[i]]))
	}

	*s = *restored
	return nil
}

// WriteSnapshot saves a scene to a file in binary form.
func WriteSnapshot(path string, s *Scene) error {
	data, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SceneFromSnapshot restores a scene previously saved with WriteSnapshot.
func SceneFromSnapshot(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scene := &Scene{}
	if err := scene.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return scene, nil
}
