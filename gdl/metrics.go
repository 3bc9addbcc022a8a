package gdl

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

//MSE returns the mean squared residual between a prediction column and a
//target column of the same height.
func MSE(prediction, target mat.Matrix) float64 {
	h := Height(prediction)
	s := 0.0
	for i := 0; i < h; i++ {
		d := prediction.At(i, 0) - target.At(i, 0)
		s += d * d
	}
	return s / float64(h)
}

//RMSE returns the root mean squared residual between a prediction column and
//a target column.
func RMSE(prediction, target mat.Matrix) float64 {
	return math.Sqrt(MSE(prediction, target))
}
