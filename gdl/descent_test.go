package gdl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFitGradientDescentConverges(t *testing.T) {
	ds := testDataset(t)
	design, err := ds.Design(1)
	require.NoError(t, err)

	result, err := FitGradientDescent(design, ds.Target(), BatchParams{LearningRate: 0.01})
	require.NoError(t, err)
	require.True(t, result.Converged)

	a, b := ExactMinimizer(ds)
	require.InDelta(t, b, result.Weights.At(0, 0), 1e-2)
	require.InDelta(t, a, result.Weights.At(1, 0), 1e-2)
}

func TestFitGradientDescentAveragedGradient(t *testing.T) {
	ds := testDataset(t)
	design, err := ds.Design(1)
	require.NoError(t, err)

	result, err := FitGradientDescent(design, ds.Target(), BatchParams{LearningRate: 0.01, MaxEpochs: 1})
	require.NoError(t, err)

	// At w = 0 the averaged gradient is (2/n)·Xᵀ·(−y).
	initial := result.Trajectory[0]
	require.Equal(t, 0, initial.Epoch)
	require.Equal(t, []float64{0, 0}, initial.Weights)
	require.InDeltaSlice(t, []float64{-10.5, -53.5}, initial.Gradient, 1e-12)
}

func TestFitGradientDescentLossMonotone(t *testing.T) {
	ds := testDataset(t)
	design, err := ds.Design(1)
	require.NoError(t, err)

	result, err := FitGradientDescent(design, ds.Target(), BatchParams{LearningRate: 0.01, MaxEpochs: 500})
	require.NoError(t, err)

	losses := result.Trajectory.Losses()
	for i := 1; i < len(losses); i++ {
		require.LessOrEqual(t, losses[i], losses[i-1]+1e-12)
	}
}

func TestFitGradientDescentNonConvergence(t *testing.T) {
	ds := testDataset(t)
	design, err := ds.Design(1)
	require.NoError(t, err)

	result, err := FitGradientDescent(design, ds.Target(), BatchParams{LearningRate: 0.01, MaxEpochs: 5})
	require.NoError(t, err)
	require.False(t, result.Converged)
	require.Equal(t, 5, result.Epochs)
	for j := 0; j < 2; j++ {
		require.False(t, math.IsNaN(result.Weights.At(j, 0)))
		require.False(t, math.IsInf(result.Weights.At(j, 0), 0))
	}
}

func TestFitGradientDescentTrajectory(t *testing.T) {
	ds := testDataset(t)
	design, err := ds.Design(1)
	require.NoError(t, err)

	result, err := FitGradientDescent(design, ds.Target(), BatchParams{LearningRate: 0.01, RecordPeriod: 100})
	require.NoError(t, err)

	trajectory := result.Trajectory
	require.Equal(t, 0, trajectory[0].Epoch)
	require.Equal(t, result.Epochs, trajectory.Last().Epoch)
	for i, rec := range trajectory {
		if i > 0 {
			require.Greater(t, rec.Epoch, trajectory[i-1].Epoch)
		}
		if i > 0 && i < len(trajectory)-1 {
			require.Zero(t, rec.Epoch%100)
		}
		require.Len(t, rec.Weights, 2)
		require.Len(t, rec.Gradient, 2)
		require.Len(t, rec.Prediction, 4)
	}
}

func TestFitGradientDescentValidation(t *testing.T) {
	ds := testDataset(t)
	design, err := ds.Design(1)
	require.NoError(t, err)

	_, err = FitGradientDescent(design, ds.Target(), BatchParams{LearningRate: -0.1})
	require.ErrorIs(t, err, ErrInvalidHyperparameter)

	_, err = FitGradientDescent(design, ds.Target(), BatchParams{})
	require.ErrorIs(t, err, ErrInvalidHyperparameter)

	_, err = FitGradientDescent(design, ds.Target(), BatchParams{LearningRate: 0.01, MaxEpochs: -1})
	require.ErrorIs(t, err, ErrInvalidHyperparameter)

	short := mat.NewDense(2, 1, []float64{1, 2})
	_, err = FitGradientDescent(design, short, BatchParams{LearningRate: 0.01})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
