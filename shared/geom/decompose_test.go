package geom_test

import (
	"testing"

	"github.com/Eliasin/projections/shared/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	t.Run("ought to recover the coefficients of a spanned vector", func(t *testing.T) {
		basis := geom.Basis{
			Q: geom.Vector{X: 0.6, Y: 0.8, Z: 0},
			R: geom.Vector{X: -0.8, Y: 0.6, Z: 0},
		}
		coefficients := [][2]float64{
			{3.5, -2},
			{0, 0},
			{-1, 1},
			{1e3, 1e-3},
		}
		for _, c := range coefficients {
			v := basis.Q.Scale(c[0]).Add(basis.R.Scale(c[1]))

			n, m, err := geom.Decompose(v, basis)

			require.NoError(t, err)
			assert.InDelta(t, c[0], n, tolerance)
			assert.InDelta(t, c[1], m, tolerance)
		}
	})

	t.Run("ought to reject axes collinear in x and y", func(t *testing.T) {
		basis := geom.Basis{
			Q: geom.Vector{X: 1, Y: 2, Z: 0},
			R: geom.Vector{X: 2, Y: 4, Z: 1},
		}

		_, _, err := geom.Decompose(geom.Vector{X: 1, Y: 2, Z: 3}, basis)

		var singular geom.SingularBasisError
		require.ErrorAs(t, err, &singular)
	})

	t.Run("ought to reject axes with no x or y extent", func(t *testing.T) {
		basis := geom.Basis{
			Q: geom.Vector{Z: 1},
			R: geom.Vector{Z: -1},
		}

		_, _, err := geom.Decompose(geom.Vector{Z: 5}, basis)

		var singular geom.SingularBasisError
		require.ErrorAs(t, err, &singular)
	})
}
