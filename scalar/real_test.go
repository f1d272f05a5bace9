// SPDX-License-Identifier: MIT
// Package scalar_test contains unit tests for the Real element.
package scalar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lamath/scalar"
)

func TestReal_Identities(t *testing.T) {
	t.Parallel()

	var x scalar.Real // the zero value IS the additive identity
	require.Equal(t, scalar.Real(0), x.Zero())
	require.Equal(t, scalar.Real(1), x.One())
	require.Equal(t, x, x.Zero())

	// identities behave as identities
	v := scalar.Real(3.5)
	require.Equal(t, v, v.Add(x.Zero()))
	require.Equal(t, v, v.Mul(x.One()))
}

func TestReal_Arithmetic(t *testing.T) {
	t.Parallel()

	a, b := scalar.Real(6), scalar.Real(4)
	require.Equal(t, scalar.Real(10), a.Add(b))
	require.Equal(t, scalar.Real(2), a.Sub(b))
	require.Equal(t, scalar.Real(24), a.Mul(b))
	require.Equal(t, scalar.Real(1.5), a.Div(b))
	require.Equal(t, scalar.Real(-6), a.Neg())
	require.True(t, a.Equal(6))
	require.False(t, a.Equal(b))
	require.Equal(t, scalar.Real(4), scalar.Real(16).Sqrt())
	require.Equal(t, 6.0, a.Float64())
}

func TestReal_Sqrt_NegativeIsNaN(t *testing.T) {
	t.Parallel()

	// mirrors math.Sqrt instead of inventing an error channel
	require.True(t, math.IsNaN(float64(scalar.Real(-1).Sqrt())))
}

func TestReal_Uniform(t *testing.T) {
	t.Parallel()

	var x scalar.Real
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := x.Uniform(rng, -2, 3)
		require.GreaterOrEqual(t, float64(v), -2.0)
		require.Less(t, float64(v), 3.0)
	}

	// same seed, same sequence
	a := x.Uniform(rand.New(rand.NewSource(7)), 0, 1)
	b := x.Uniform(rand.New(rand.NewSource(7)), 0, 1)
	require.Equal(t, a, b)
}
