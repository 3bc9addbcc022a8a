package gdl

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gorgonia.org/tensor"
)

//Surface holds mean squared residual values of the line y = a·x + b over a
//grid of candidate (a, b) pairs. Aggregate is the len(Slopes)×len(Intercepts)
//whole-dataset surface; PerInstance stacks one such grid per observation so
//the contribution of every data point can be inspected separately. Both are
//immutable once computed.
type Surface struct {
	Slopes      []float64
	Intercepts  []float64
	Aggregate   *mat.Dense
	PerInstance *tensor.Dense
}

//At returns the aggregate surface value for slope index j and intercept
//index k.
func (s *Surface) At(j, k int) float64 {
	return s.Aggregate.At(j, k)
}

//InstanceAt returns the contribution of observation i to the cell (j, k).
func (s *Surface) InstanceAt(i, j, k int) (float64, error) {
	v, err := s.PerInstance.At(i, j, k)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

//ArgMin returns the indices of the smallest aggregate cell.
func (s *Surface) ArgMin() (j, k int) {
	best := s.Aggregate.At(0, 0)
	for p := 0; p < len(s.Slopes); p++ {
		for q := 0; q < len(s.Intercepts); q++ {
			if v := s.Aggregate.At(p, q); v < best {
				best = v
				j, k = p, q
			}
		}
	}
	return j, k
}

//LossSurface evaluates the mean squared residual of the dataset over every
//candidate (slope, intercept) pair. The floor is added to every cell so that
//downstream log-scale rendering never takes the logarithm of zero; it must
//be non-negative. Aggregate cells hold meanᵢ[(yᵢ − (a·xᵢ + b))²] + floor,
//per-instance cells the un-averaged (yᵢ − (a·xᵢ + b))² + floor.
func LossSurface(ds Dataset, slopes, intercepts []float64, floor float64) (*Surface, error) {
	if floor < 0 {
		return nil, fmt.Errorf("%w: floor %g is negative", ErrInvalidHyperparameter, floor)
	}
	if len(slopes) == 0 || len(intercepts) == 0 {
		return nil, fmt.Errorf("%w: empty candidate grid", ErrInvalidHyperparameter)
	}
	n := ds.Len()
	if n == 0 {
		return nil, ErrEmptyDataset
	}

	perInstance := tensor.New(tensor.WithShape(n, len(slopes), len(intercepts)), tensor.Of(tensor.Float64))
	aggregate := mat.NewDense(len(slopes), len(intercepts), nil)

	for j, a := range slopes {
		for k, b := range intercepts {
			total := 0.0
			for i := 0; i < n; i++ {
				r := ds.Y[i] - (a*ds.X[i] + b)
				if err := perInstance.SetAt(r*r+floor, i, j, k); err != nil {
					return nil, err
				}
				total += r * r
			}
			aggregate.Set(j, k, total/float64(n)+floor)
		}
	}

	return &Surface{
		Slopes:      slopes,
		Intercepts:  intercepts,
		Aggregate:   aggregate,
		PerInstance: perInstance,
	}, nil
}

//ExactMinimizer returns the least squares slope and intercept of the simple
//regression line through the dataset: a = Cov(x,y)/Var(x) and
//b = mean(y) − a·mean(x). The shared normalization of covariance and
//variance cancels in the ratio, so the result equals the population
//convention that divides both by n. It is the ground truth the iterative
//solvers are validated against and the star marker on loss-surface plots.
//The dataset needs at least two observations with non-constant x for the
//slope to be finite.
func ExactMinimizer(ds Dataset) (a, b float64) {
	a = stat.Covariance(ds.X, ds.Y, nil) / stat.Variance(ds.X, nil)
	b = stat.Mean(ds.Y, nil) - a*stat.Mean(ds.X, nil)
	return a, b
}
