// Package state provides the scene and view state shared by the viewer and the plotter.
package state

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"

	"github.com/Eliasin/projections/shared/geom"
	"github.com/mwindels/gwob"
)

// Model represents a polygonal wireframe model.
// Only vertex positions and face loops are kept: the projection pipeline
// draws outlines, so materials and normals from source files are discarded.
type Model struct {
	vertices []geom.Vector // The distinct vertices of this model.
	faces    [][]uint      // Vertex index loops, one per face.
}

// NewModel creates a model from a vertex list and face loops.
// Every face must be a loop of at least three in-range vertex indices.
func NewModel(vertices []geom.Vector, faces [][]uint) (*Model, error) {
	for i, f := range faces {
		if len(f) < 3 {
			return nil, fmt.Errorf("face %d has %d vertices, need at least 3", i, len(f))
		}
		for _, index := range f {
			if index >= uint(len(vertices)) {
				return nil, fmt.Errorf("face %d refers to vertex %d of %d", i, index, len(vertices))
			}
		}
	}
	return &Model{vertices: vertices, faces: faces}, nil
}

// ModelFromFile returns a new model based on a provided Wavefront OBJ file.
// Repeated vertex positions are merged so shared corners project once.
func ModelFromFile(path string) (*Model, error) {
	options := gwob.ObjParserOptions{LogStats: false, Logger: func(s string) { log.Println(s) }, IgnoreNormals: true}

	// Read in the mesh from the file.
	inputMesh, err := gwob.NewObjFromFile(path, &options)
	if err != nil {
		return nil, err
	}

	vertexStride := inputMesh.StrideSize / 4
	vertexOffset := inputMesh.StrideOffsetPosition / 4

	// Initialize the model.
	model := &Model{
		vertices: make([]geom.Vector, 0, len(inputMesh.Coord)/vertexStride),
	}

	// Assemble the model, one triangle per face loop.
	vertexMap := make(map[geom.Vector]uint)
	for _, g := range inputMesh.Groups {
		for f := 0; f < g.IndexCount/3; f++ {
			face := make([]uint, 0, 3)
			for v := 0; v < 3; v++ {
				vIndex := g.IndexBegin + (3*f + v)
				vVertex := geom.Vector{
					X: inputMesh.Coord64(vertexStride*inputMesh.Indices[vIndex] + vertexOffset),
					Y: inputMesh.Coord64(vertexStride*inputMesh.Indices[vIndex] + vertexOffset + 1),
					Z: inputMesh.Coord64(vertexStride*inputMesh.Indices[vIndex] + vertexOffset + 2),
				}

				// Add the new vertex if it hasn't been seen before.
				if vVertexIndex, exists := vertexMap[vVertex]; exists {
					face = append(face, vVertexIndex)
				} else {
					vertexMap[vVertex] = uint(len(model.vertices))
					face = append(face, uint(len(model.vertices)))
					model.vertices = append(model.vertices, vVertex)
				}
			}

			model.faces = append(model.faces, face)
		}
	}

	return model, nil
}

// NumVertices returns the number of distinct vertices in the model m.
func (m *Model) NumVertices() int {
	return len(m.vertices)
}

// NumFaces returns the number of face loops in the model m.
func (m *Model) NumFaces() int {
	return len(m.faces)
}

// MarshalBinary converts a model into a binary representation.
func (m Model) MarshalBinary() ([]byte, error) {
	// Set up the binary encoder.
	writer := bytes.Buffer{}
	encoder := gob.NewEncoder(&writer)

	// Encode the model's vertices and faces.
	if err := encoder.Encode(m.vertices); err != nil {
		return nil, err
	}
	if err := encoder.Encode(m.faces); err != nil {
		return nil, err
	}

	return writer.Bytes(), nil
}

// UnmarshalBinary derives a model from its binary representation.
func (m *Model) UnmarshalBinary(data []byte) error {
	// Set up the binary decoder.
	reader := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(reader)

	// Decode the model's vertices and faces.
	if err := decoder.Decode(&m.vertices); err != nil {
		return err
	}
	if err := decoder.Decode(&m.faces); err != nil {
		return err
	}

	return nil
}
