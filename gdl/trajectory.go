package gdl

import (
	"encoding/json"
	"os"

	"gonum.org/v1/gonum/mat"
)

//Record is one reported state of an iterative solver. Every field is fixed
//and present on every record.
type Record struct {
	Epoch      int       `json:"epoch"`
	Weights    []float64 `json:"weights"`
	Prediction []float64 `json:"prediction"`
	Gradient   []float64 `json:"gradient"`
	Loss       float64   `json:"loss"`
}

//Trajectory is the ordered, append-only sequence of recorded solver states.
//Epochs are strictly increasing and start at 0.
type Trajectory []Record

//Last returns the final recorded state.
func (tr Trajectory) Last() Record {
	return tr[len(tr)-1]
}

//Losses returns the loss column of the trajectory, one value per record.
func (tr Trajectory) Losses() []float64 {
	losses := make([]float64, len(tr))
	for i, rec := range tr {
		losses[i] = rec.Loss
	}
	return losses
}

//Dump writes the trajectory as indented JSON for the external presentation
//layer.
func (tr Trajectory) Dump(fileName string) error {
	dst, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer dst.Close()

	trajectoryByteRepr, err := json.MarshalIndent(tr, "", "  ")
	if err != nil {
		return err
	}
	_, err = dst.Write(trajectoryByteRepr)
	return err
}

//FitResult is the outcome of an iterative fit: the final weights, the
//recorded trajectory, and whether the gradient threshold was reached before
//the epoch cap. Non-convergence is a status, never an error, because the
//best-effort weights remain a usable, inspectable result.
type FitResult struct {
	Weights    *mat.Dense
	Trajectory Trajectory
	Converged  bool
	Epochs     int
}

func newRecord(epoch int, w, pred, grad *mat.Dense, loss float64) Record {
	return Record{
		Epoch:      epoch,
		Weights:    mat.Col(nil, 0, w),
		Prediction: mat.Col(nil, 0, pred),
		Gradient:   mat.Col(nil, 0, grad),
		Loss:       loss,
	}
}
