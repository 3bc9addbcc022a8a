package gdl

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//SolveOLS solves the normal equations w = (XᵀX)⁻¹Xᵀy. It fails with
//ErrSingularMatrix when XᵀX is not invertible, which happens with fewer
//samples than parameters or with degenerate feature columns; callers can
//then reduce the degree or switch to SolveRidge.
func SolveOLS(x mat.Matrix, y *mat.Dense) (*mat.Dense, error) {
	return SolveRidge(x, y, 0)
}

//SolveRidge solves the regularized normal equations w = (XᵀX + αI)⁻¹Xᵀy.
//For any α > 0 the left hand side is positive definite and therefore always
//invertible; α = 0 degenerates to plain OLS and may still be singular.
//The magnitude of α is a caller policy, a typical sweep being
//1e-9, 1e-6, 1e-3, 1.
func SolveRidge(x mat.Matrix, y *mat.Dense, alpha float64) (*mat.Dense, error) {
	if alpha < 0 {
		return nil, fmt.Errorf("%w: regularization strength %g is negative", ErrInvalidHyperparameter, alpha)
	}
	h, d := x.Dims()
	targetH, targetW := y.Dims()
	if targetH != h {
		return nil, fmt.Errorf("%w: design matrix has %d rows, target has %d", ErrDimensionMismatch, h, targetH)
	}
	if targetW != 1 {
		return nil, fmt.Errorf("%w: target must be a single column, got %d", ErrDimensionMismatch, targetW)
	}

	lhs := mat.NewDense(d, d, nil)
	lhs.Mul(x.T(), x)
	for i := 0; i < d; i++ {
		lhs.Set(i, i, lhs.At(i, i)+alpha)
	}

	rhs := mat.NewDense(d, 1, nil)
	rhs.Mul(x.T(), y)

	var w mat.Dense
	if err := w.Solve(lhs, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}
	return &w, nil
}

//FitClosedForm computes least squares weights directly. A nil alpha requests
//the plain OLS solution; otherwise the ridge solution for *alpha is
//returned. The call is a pure function of its inputs: repeated invocations
//with identical arguments produce bit-identical weights.
func FitClosedForm(x mat.Matrix, y *mat.Dense, alpha *float64) (*mat.Dense, error) {
	if alpha == nil {
		return SolveOLS(x, y)
	}
	return SolveRidge(x, y, *alpha)
}
