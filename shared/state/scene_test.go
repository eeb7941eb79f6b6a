package state_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Eliasin/projections/shared/geom"
	"github.com/Eliasin/projections/shared/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleOBJ is a minimal single-faced model file.
const triangleOBJ = `v 0 0 10
v 40 0 10
v 0 30 10
f 1 2 3
`

// sceneJSON places two copies of the triangle, watched straight on from
// above the z = 0 plane.
const sceneJSON = `{
	"view": {
		"pos": {"X": 0, "Y": 0, "Z": 30},
		"normal": {"X": 0, "Y": 0, "Z": 1},
		"intercept": 0,
		"hint": {"X": 1, "Y": 0, "Z": 0}
	},
	"objects": [
		{"model": "triangle.obj", "pos": {"X": 0, "Y": 0, "Z": 0}},
		{"model": "triangle.obj", "pos": {"X": 100, "Y": 100, "Z": 0}}
	]
}`

// givenSceneFile writes the triangle scene into a temporary directory and
// returns the scene file's path.
func givenSceneFile(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "triangle.obj"), []byte(triangleOBJ), 0644))
	scenePath := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(scenePath, []byte(sceneJSON), 0644))
	return scenePath
}

func TestDemoScene(t *testing.T) {
	t.Run("ought to collapse to the origin from the initial eye", func(t *testing.T) {
		scn, err := state.DemoScene()
		require.NoError(t, err)

		objs := scn.Objects()
		require.Len(t, objs, 1)
		outlines := objs[0].Outlines()
		require.Len(t, outlines, 1)

		coords, err := scn.View.ProjectPoints(outlines[0])
		require.NoError(t, err)
		for _, coord := range coords {
			assert.Equal(t, geom.Coord{X: 0, Y: 0}, coord)
		}
	})

	t.Run("ought to spread out once the eye leaves the plane", func(t *testing.T) {
		scn, err := state.DemoScene()
		require.NoError(t, err)
		scn.View.Translate(geom.Vector{Z: 10})

		outlines := scn.Objects()[0].Outlines()
		coords, err := scn.View.ProjectPoints(outlines[0])

		require.NoError(t, err)
		require.Len(t, coords, 4)
		assert.Equal(t, geom.Coord{X: 11, Y: -1}, coords[0])
		assert.NotEqual(t, coords[0], coords[2])
	})
}

func TestSceneFromFile(t *testing.T) {
	t.Run("ought to load objects and view from JSON", func(t *testing.T) {
		scn, err := state.SceneFromFile(givenSceneFile(t))

		require.NoError(t, err)
		require.Len(t, scn.Objects(), 2)
		assert.Equal(t, geom.Vector{Z: 30}, scn.View.Pos)
	})

	t.Run("ought to project the stored scene straight on", func(t *testing.T) {
		scn, err := state.SceneFromFile(givenSceneFile(t))
		require.NoError(t, err)

		// Pick out the object at the origin; the R-Tree does not promise
		// insertion order.
		var origin *state.Object
		for _, obj := range scn.Objects() {
			if obj.Pos.Zero() {
				origin = obj
			}
		}
		require.NotNil(t, origin)

		coords, err := scn.View.ProjectPoints(origin.Outlines()[0])

		require.NoError(t, err)
		assert.Equal(t, []geom.Coord{{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 0, Y: 45}}, coords)
	})

	t.Run("ought to fail on a missing model", func(t *testing.T) {
		dir := t.TempDir()
		scenePath := filepath.Join(dir, "scene.json")
		require.NoError(t, os.WriteFile(scenePath, []byte(sceneJSON), 0644))

		_, err := state.SceneFromFile(scenePath)

		require.Error(t, err)
	})
}

func TestWithin(t *testing.T) {
	t.Run("ought to select only objects overlapping the region", func(t *testing.T) {
		scn, err := state.SceneFromFile(givenSceneFile(t))
		require.NoError(t, err)

		near := scn.Within(geom.Vector{X: -5, Y: -5, Z: -5}, geom.Vector{X: 50, Y: 50, Z: 50})

		require.Len(t, near, 1)
		assert.Equal(t, geom.Vector{}, near[0].Pos)
	})

	t.Run("ought to return nothing for an empty region", func(t *testing.T) {
		scn, err := state.SceneFromFile(givenSceneFile(t))
		require.NoError(t, err)

		assert.Empty(t, scn.Within(geom.Vector{X: -50, Y: -50, Z: -50}, geom.Vector{X: -40, Y: -40, Z: -40}))
	})
}

func TestSnapshot(t *testing.T) {
	t.Run("ought to survive a save and restore round trip", func(t *testing.T) {
		scn, err := state.SceneFromFile(givenSceneFile(t))
		require.NoError(t, err)
		scn.View.Translate(geom.Vector{Z: -10})

		path := filepath.Join(t.TempDir(), "scene.snapshot")
		require.NoError(t, state.WriteSnapshot(path, scn))
		restored, err := state.LoadScene(path)
		require.NoError(t, err)

		require.Len(t, restored.Objects(), 2)
		assert.Equal(t, scn.View.Pos, restored.View.Pos)

		// The restored scene projects identically to the original.
		p := geom.Vector{X: 40, Y: 0, Z: 10}
		before, err := scn.View.ProjectPoint(p)
		require.NoError(t, err)
		after, err := restored.View.ProjectPoint(p)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}
