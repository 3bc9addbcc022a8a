package gdl

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//ExpandPolynomial maps raw scalar inputs into an n×(degree+1) design matrix
//whose column j holds x^j. Column 0 is the constant bias column, so degree 0
//yields a single column of ones and degree 1 yields the standard [1, x]
//design matrix of simple linear regression.
func ExpandPolynomial(xs []float64, degree int) (*mat.Dense, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, degree)
	}
	if len(xs) == 0 {
		return nil, ErrEmptyDataset
	}

	design := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		pow := 1.0
		for j := 0; j <= degree; j++ {
			design.Set(i, j, pow)
			pow *= x
		}
	}
	return design, nil
}
