package geom_test

import (
	"testing"

	"github.com/Eliasin/projections/shared/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	t.Run("ought to normalize the direction", func(t *testing.T) {
		line, err := geom.NewLine(geom.Vector{X: 1, Y: 2, Z: 3}, geom.Vector{X: 0, Y: 0, Z: -5})

		require.NoError(t, err)
		assert.Equal(t, geom.Vector{X: 1, Y: 2, Z: 3}, line.Point)
		assert.Equal(t, geom.Vector{X: 0, Y: 0, Z: -1}, line.Dir)
	})

	t.Run("ought to reject a zero direction", func(t *testing.T) {
		_, err := geom.NewLine(geom.Vector{X: 1, Y: 2, Z: 3}, geom.Vector{})

		var degenerate geom.DegenerateVectorError
		require.ErrorAs(t, err, &degenerate)
	})
}

func TestAt(t *testing.T) {
	line, err := geom.NewLine(geom.Vector{X: 1, Y: 1, Z: 1}, geom.Vector{X: 2, Y: 0, Z: 0})
	require.NoError(t, err)

	t.Run("ought to evaluate at any parameter", func(t *testing.T) {
		assert.Equal(t, geom.Vector{X: 1, Y: 1, Z: 1}, line.At(0))
		assert.Equal(t, geom.Vector{X: 3.5, Y: 1, Z: 1}, line.At(2.5))
		assert.Equal(t, geom.Vector{X: -9, Y: 1, Z: 1}, line.At(-10))
	})

	t.Run("ought to be stateless between calls", func(t *testing.T) {
		first := line.At(4)
		second := line.At(4)

		assert.Equal(t, first, second)
	})
}
