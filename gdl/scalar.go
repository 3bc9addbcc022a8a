package gdl

import (
	"fmt"
	"math"
)

//ScalarParams collects arguments for the single-variable demonstrator.
//Zero values of Epsilon and MaxIters receive the defaults 1e-4 and 20000.
type ScalarParams struct {
	LearningRate float64
	Epsilon      float64
	MaxIters     int
}

//ScalarRecord is one reported state of the single-variable demonstrator.
type ScalarRecord struct {
	Iteration int     `json:"iteration"`
	X         float64 `json:"x"`
	Value     float64 `json:"value"`
	Gradient  float64 `json:"gradient"`
}

//Minimize runs steepest descent on a single-variable function, the simplest
//form of the method used to introduce it: x ← x − η·f′(x), with the raw,
//unaveraged derivative as the step direction. It stops once |f′(x)| falls
//below Epsilon or after MaxIters updates and reports non-convergence as a
//status alongside the best-effort position.
func Minimize(f, df func(float64) float64, x0 float64, params ScalarParams) (float64, []ScalarRecord, bool, error) {
	if params.Epsilon == 0 {
		params.Epsilon = DefaultEpsilon
	}
	if params.MaxIters == 0 {
		params.MaxIters = DefaultMaxEpochs
	}
	if params.LearningRate <= 0 {
		return 0, nil, false, fmt.Errorf("%w: learning rate %g must be positive", ErrInvalidHyperparameter, params.LearningRate)
	}
	if params.Epsilon < 0 || params.MaxIters < 0 {
		return 0, nil, false, fmt.Errorf("%w: negative termination setting", ErrInvalidHyperparameter)
	}

	x := x0
	grad := df(x)
	trajectory := []ScalarRecord{{Iteration: 0, X: x, Value: f(x), Gradient: grad}}

	iterations := 0
	for iterations < params.MaxIters && math.Abs(grad) >= params.Epsilon {
		x -= params.LearningRate * grad
		grad = df(x)
		iterations++
		trajectory = append(trajectory, ScalarRecord{Iteration: iterations, X: x, Value: f(x), Gradient: grad})
	}

	return x, trajectory, math.Abs(grad) < params.Epsilon, nil
}
