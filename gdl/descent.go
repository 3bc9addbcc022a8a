package gdl

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Default termination settings shared by the iterative solvers.
const (
	DefaultEpsilon   = 1e-4
	DefaultMaxEpochs = 20000
)

//BatchParams collects arguments for the batch steepest descent solver.
//Zero values of Epsilon, MaxEpochs and RecordPeriod receive the defaults
//1e-4, 20000 and 1; the learning rate is always caller supplied.
type BatchParams struct {
	LearningRate float64
	Epsilon      float64
	MaxEpochs    int
	RecordPeriod int
}

func (p *BatchParams) applyDefaults() {
	if p.Epsilon == 0 {
		p.Epsilon = DefaultEpsilon
	}
	if p.MaxEpochs == 0 {
		p.MaxEpochs = DefaultMaxEpochs
	}
	if p.RecordPeriod == 0 {
		p.RecordPeriod = 1
	}
}

func (p BatchParams) validate() error {
	if p.LearningRate <= 0 {
		return fmt.Errorf("%w: learning rate %g must be positive", ErrInvalidHyperparameter, p.LearningRate)
	}
	if p.Epsilon < 0 {
		return fmt.Errorf("%w: convergence threshold %g is negative", ErrInvalidHyperparameter, p.Epsilon)
	}
	if p.MaxEpochs < 0 {
		return fmt.Errorf("%w: max epochs %d is negative", ErrInvalidHyperparameter, p.MaxEpochs)
	}
	if p.RecordPeriod < 0 {
		return fmt.Errorf("%w: record period %d is negative", ErrInvalidHyperparameter, p.RecordPeriod)
	}
	return nil
}

//FitGradientDescent runs batch steepest descent for least squares linear
//regression on a fixed design matrix. The gradient uses the averaged
//convention g = (2/n)·Xᵀ·(ŷ−y), which keeps the effective step size
//independent of the dataset size; the learning rate is fixed across epochs.
//
//Weights start at zero. The solver stops as soon as the L1 norm of the
//gradient falls below Epsilon, or after MaxEpochs updates, whichever comes
//first. The trajectory always contains the initial zero-weight state and
//the final state, with intermediate records every RecordPeriod epochs.
func FitGradientDescent(x mat.Matrix, y *mat.Dense, params BatchParams) (*FitResult, error) {
	params.applyDefaults()
	if err := params.validate(); err != nil {
		return nil, err
	}
	h, d := x.Dims()
	if targetH := Height(y); targetH != h {
		return nil, fmt.Errorf("%w: design matrix has %d rows, target has %d", ErrDimensionMismatch, h, targetH)
	}

	w := mat.NewDense(d, 1, nil)
	pred := mat.NewDense(h, 1, nil)
	grad := mat.NewDense(d, 1, nil)
	resid := mat.NewDense(h, 1, nil)

	batchGradient := func() {
		pred.Mul(x, w)
		resid.Sub(pred, y)
		grad.Mul(x.T(), resid)
		grad.Scale(2/float64(h), grad)
	}

	batchGradient()
	loss := MSE(pred, y)
	trajectory := Trajectory{newRecord(0, w, pred, grad, loss)}

	epochs := 0
	for epochs < params.MaxEpochs && floats.Norm(mat.Col(nil, 0, grad), 1) >= params.Epsilon {
		for j := 0; j < d; j++ {
			w.Set(j, 0, w.At(j, 0)-params.LearningRate*grad.At(j, 0))
		}
		epochs++

		batchGradient()
		loss = MSE(pred, y)
		if epochs%params.RecordPeriod == 0 {
			trajectory = append(trajectory, newRecord(epochs, w, pred, grad, loss))
		}
	}

	if trajectory.Last().Epoch != epochs {
		trajectory = append(trajectory, newRecord(epochs, w, pred, grad, loss))
	}

	return &FitResult{
		Weights:    w,
		Trajectory: trajectory,
		Converged:  floats.Norm(mat.Col(nil, 0, grad), 1) < params.Epsilon,
		Epochs:     epochs,
	}, nil
}
