package gdl

import (
	"errors"
	"log"
)

var (
	// ErrInvalidDegree reports a negative polynomial degree.
	ErrInvalidDegree = errors.New("gdl: polynomial degree must be non-negative")
	// ErrSingularMatrix reports a non-invertible normal equations matrix.
	// Callers can reduce the degree or switch to the ridge solver.
	ErrSingularMatrix = errors.New("gdl: normal equations matrix is singular")
	// ErrInvalidHyperparameter reports a hyperparameter outside its valid range.
	ErrInvalidHyperparameter = errors.New("gdl: invalid hyperparameter")
	// ErrEmptyDataset reports a dataset without observations.
	ErrEmptyDataset = errors.New("gdl: dataset must contain at least one observation")
	// ErrDimensionMismatch reports inconsistent input dimensions.
	ErrDimensionMismatch = errors.New("gdl: dimension mismatch")
)

//HandleError interrupts the program when err is not nil. It is meant for the
//unrecoverable I/O paths of the command line driver, not for library code.
func HandleError(err error) {
	if err != nil {
		log.Panic(err)
	}
}
