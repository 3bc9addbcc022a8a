package gdl

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrajectoryDumpRoundTrip(t *testing.T) {
	ds := testDataset(t)
	design, err := ds.Design(1)
	require.NoError(t, err)

	result, err := FitGradientDescent(design, ds.Target(), BatchParams{LearningRate: 0.01, MaxEpochs: 6, RecordPeriod: 2})
	require.NoError(t, err)

	fileName := filepath.Join(t.TempDir(), "trajectory.json")
	require.NoError(t, result.Trajectory.Dump(fileName))

	raw, err := os.ReadFile(fileName)
	require.NoError(t, err)

	var decoded Trajectory
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, result.Trajectory, decoded)
}

func TestTrajectoryAccessors(t *testing.T) {
	trajectory := Trajectory{
		{Epoch: 0, Loss: 4},
		{Epoch: 1, Loss: 2},
		{Epoch: 2, Loss: 1},
	}
	require.Equal(t, []float64{4, 2, 1}, trajectory.Losses())
	require.Equal(t, 2, trajectory.Last().Epoch)
}
