package gdl

import (
	"fmt"
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

//Dataset is an ordered collection of (x, y) observations. All solvers treat
//it as read only; each fit owns its own weight state.
type Dataset struct {
	X []float64
	Y []float64
}

//NewDataset unites raw observations into one Dataset object after checking
//their consistency.
func NewDataset(xs, ys []float64) (Dataset, error) {
	if len(xs) == 0 {
		return Dataset{}, ErrEmptyDataset
	}
	if len(xs) != len(ys) {
		return Dataset{}, fmt.Errorf("%w: %d x values against %d y values", ErrDimensionMismatch, len(xs), len(ys))
	}
	return Dataset{X: xs, Y: ys}, nil
}

//Len returns the number of observations.
func (ds Dataset) Len() int {
	return len(ds.X)
}

//Design builds the polynomial design matrix of the requested degree from the
//x values of the dataset.
func (ds Dataset) Design(degree int) (*mat.Dense, error) {
	return ExpandPolynomial(ds.X, degree)
}

//Target returns the y values as a fresh n×1 column.
func (ds Dataset) Target() *mat.Dense {
	return mat.NewDense(len(ds.Y), 1, append([]float64(nil), ds.Y...))
}

//FitInputs pairs a design matrix with its target column for one solve call.
type FitInputs struct {
	Design *mat.Dense
	Target *mat.Dense
}

//Predict applies a weight column to the design matrix.
func (fi *FitInputs) Predict(w *mat.Dense) *mat.Dense {
	pred := mat.NewDense(Height(fi.Design), 1, nil)
	pred.Mul(fi.Design, w)
	return pred
}

//ReadDataset reads two components of a data set and unites them into one
//Dataset object.
func ReadDataset(fileNameX, fileNameY string) (Dataset, error) {
	xs, err := ReadNpy(fileNameX)
	if err != nil {
		return Dataset{}, err
	}
	ys, err := ReadNpy(fileNameY)
	if err != nil {
		return Dataset{}, err
	}
	return NewDataset(Flatten(xs), Flatten(ys))
}

//ReadNpy reads the content of an npy file.
func ReadNpy(fileName string) (*mat.Dense, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gdl: read %s: %w", fileName, err)
	}

	denseMat := &mat.Dense{}
	if err := r.Read(denseMat); err != nil {
		return nil, fmt.Errorf("gdl: read %s: %w", fileName, err)
	}
	return denseMat, nil
}

//WriteNpy writes a matrix into an npy file.
func WriteNpy(fileName string, m *mat.Dense) error {
	dst, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer dst.Close()

	if err := npyio.Write(dst, m); err != nil {
		return fmt.Errorf("gdl: write %s: %w", fileName, err)
	}
	return nil
}

//Flatten returns the values of a matrix in row major order. Npy files may
//carry a vector as either a row or a column; callers treat the result as a
//plain sequence.
func Flatten(m *mat.Dense) []float64 {
	h, w := m.Dims()
	out := make([]float64, 0, h*w)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

//Height returns the number of rows of a matrix.
func Height(m mat.Matrix) int {
	h, _ := m.Dims()
	return h
}
