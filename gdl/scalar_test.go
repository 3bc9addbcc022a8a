package gdl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parabola() (f, df func(float64) float64) {
	f = func(x float64) float64 { return 0.5 * ((x-5)*(x-5) + 2) }
	df = func(x float64) float64 { return x - 5 }
	return f, df
}

func TestMinimizeParabola(t *testing.T) {
	f, df := parabola()

	x, trajectory, converged, err := Minimize(f, df, 9, ScalarParams{LearningRate: 0.5, Epsilon: 1e-4, MaxIters: 100})
	require.NoError(t, err)
	require.True(t, converged)
	require.InDelta(t, 5.0, x, 1e-3)
	require.InDelta(t, 1.0, f(x), 1e-6)

	// With η = 0.5 the distance to the optimum halves every step, so 4/2^k
	// drops below the threshold within 16 updates.
	require.LessOrEqual(t, len(trajectory), 20)
	for i := 1; i < len(trajectory); i++ {
		require.LessOrEqual(t, trajectory[i].Value, trajectory[i-1].Value)
	}
}

func TestMinimizeNonConvergence(t *testing.T) {
	f, df := parabola()

	x, trajectory, converged, err := Minimize(f, df, 9, ScalarParams{LearningRate: 0.5, Epsilon: 1e-4, MaxIters: 3})
	require.NoError(t, err)
	require.False(t, converged)
	require.Len(t, trajectory, 4)
	require.InDelta(t, 5.5, x, 1e-12)
}

func TestMinimizeValidation(t *testing.T) {
	f, df := parabola()

	_, _, _, err := Minimize(f, df, 9, ScalarParams{})
	require.ErrorIs(t, err, ErrInvalidHyperparameter)
}
