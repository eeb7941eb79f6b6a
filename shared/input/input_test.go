package input_test

import (
	"testing"

	"github.com/Eliasin/projections/shared/geom"
	"github.com/Eliasin/projections/shared/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveDelta(t *testing.T) {
	t.Run("ought to map each movement event to a single-axis step", func(t *testing.T) {
		expected := map[input.Event]geom.Vector{
			input.MoveLeft:  {X: -10},
			input.MoveRight: {X: 10},
			input.MoveUp:    {Y: 10},
			input.MoveDown:  {Y: -10},
			input.MoveIn:    {Z: 10},
			input.MoveOut:   {Z: -10},
		}
		for event, delta := range expected {
			actual, moves := input.MoveDelta(event)

			require.True(t, moves)
			assert.Equal(t, delta, actual)
		}
	})

	t.Run("ought not to move the viewpoint for other events", func(t *testing.T) {
		for _, event := range []input.Event{input.Quit, input.Snapshot} {
			_, moves := input.MoveDelta(event)

			assert.False(t, moves)
		}
	})

	t.Run("ought to pair opposing events into cancelling deltas", func(t *testing.T) {
		pairs := [][2]input.Event{
			{input.MoveLeft, input.MoveRight},
			{input.MoveUp, input.MoveDown},
			{input.MoveIn, input.MoveOut},
		}
		for _, pair := range pairs {
			a, _ := input.MoveDelta(pair[0])
			b, _ := input.MoveDelta(pair[1])

			assert.Equal(t, geom.Vector{}, geom.Sum(a, b))
		}
	})
}
