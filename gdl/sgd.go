package gdl

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

//SGDParams collects arguments for the stochastic gradient descent solver.
//LearningRate is η₀ of the decaying schedule η_t = η₀/√t and must be tuned
//to the scale of the design matrix; the solver never infers it. Zero values
//of Epsilon, MaxEpochs and RecordPeriod receive the defaults 1e-4, 20000
//and 200. Seed feeds the sample index generator, so runs with the same seed
//are bit-for-bit reproducible.
//
//By default the stopping rule thresholds the L1 norm of the single-sample
//gradient estimate. That
//estimate is high-variance, so the rule can fire early near a direction the
//drawn sample cannot see; FullGradientCheck switches the test to the
//full-batch gradient without changing the update rule.
type SGDParams struct {
	LearningRate      float64
	Epsilon           float64
	MaxEpochs         int
	RecordPeriod      int
	Seed              int64
	FullGradientCheck bool
}

func (p *SGDParams) applyDefaults() {
	if p.Epsilon == 0 {
		p.Epsilon = DefaultEpsilon
	}
	if p.MaxEpochs == 0 {
		p.MaxEpochs = DefaultMaxEpochs
	}
	if p.RecordPeriod == 0 {
		p.RecordPeriod = 200
	}
}

func (p SGDParams) validate() error {
	return BatchParams{
		LearningRate: p.LearningRate,
		Epsilon:      p.Epsilon,
		MaxEpochs:    p.MaxEpochs,
		RecordPeriod: p.RecordPeriod,
	}.validate()
}

//FitSGD runs stochastic gradient descent for least squares linear regression
//on a fixed design matrix. Each iteration t ≥ 1 draws one sample index
//uniformly at random, steps along the unaveraged single-sample gradient
//g = 2·(ŷᵢ−yᵢ)·xᵢ with the decaying rate η_t = η₀/√t, and then tests the
//stopping rule described on SGDParams. The shrinking schedule is what damps
//the oscillation of the iterates near the optimum.
//
//Recorded states snapshot the full-batch prediction, gradient and loss so
//the trajectory stays comparable with the batch solver; records are taken
//every RecordPeriod iterations, always starting with the zero-weight state
//at t=0 and ending with the final state.
func FitSGD(x mat.Matrix, y *mat.Dense, params SGDParams) (*FitResult, error) {
	params.applyDefaults()
	if err := params.validate(); err != nil {
		return nil, err
	}
	h, d := x.Dims()
	if targetH := Height(y); targetH != h {
		return nil, fmt.Errorf("%w: design matrix has %d rows, target has %d", ErrDimensionMismatch, h, targetH)
	}

	rng := rand.New(rand.NewSource(params.Seed))

	w := mat.NewDense(d, 1, nil)
	pred := mat.NewDense(h, 1, nil)
	grad := mat.NewDense(d, 1, nil)
	resid := mat.NewDense(h, 1, nil)
	sampleGrad := make([]float64, d)

	batchSnapshot := func() float64 {
		pred.Mul(x, w)
		resid.Sub(pred, y)
		grad.Mul(x.T(), resid)
		grad.Scale(2/float64(h), grad)
		return MSE(pred, y)
	}

	loss := batchSnapshot()
	trajectory := Trajectory{newRecord(0, w, pred, grad, loss)}

	converged := false
	iterations := 0
	for t := 1; t <= params.MaxEpochs; t++ {
		i := rng.Intn(h)

		yHat := 0.0
		for j := 0; j < d; j++ {
			yHat += x.At(i, j) * w.At(j, 0)
		}
		residual := yHat - y.At(i, 0)

		gradNorm := 0.0
		for j := 0; j < d; j++ {
			sampleGrad[j] = 2 * residual * x.At(i, j)
			gradNorm += math.Abs(sampleGrad[j])
		}
		if params.FullGradientCheck {
			batchSnapshot()
			gradNorm = 0.0
			for j := 0; j < d; j++ {
				gradNorm += math.Abs(grad.At(j, 0))
			}
		}
		if gradNorm < params.Epsilon {
			converged = true
			break
		}

		eta := params.LearningRate / math.Sqrt(float64(t))
		for j := 0; j < d; j++ {
			w.Set(j, 0, w.At(j, 0)-eta*sampleGrad[j])
		}
		iterations = t

		if t%params.RecordPeriod == 0 {
			loss = batchSnapshot()
			trajectory = append(trajectory, newRecord(t, w, pred, grad, loss))
		}
	}

	loss = batchSnapshot()
	if trajectory.Last().Epoch != iterations {
		trajectory = append(trajectory, newRecord(iterations, w, pred, grad, loss))
	}

	return &FitResult{
		Weights:    w,
		Trajectory: trajectory,
		Converged:  converged,
		Epochs:     iterations,
	}, nil
}
