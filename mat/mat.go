// Package mat converts row oriented feature matrices into gonum matrices.
package mat

import (
	"errors"

	"github.com/aouyang1/go-clearml/validate"
	"gonum.org/v1/gonum/mat"
)

// ErrNoFeatures is returned when a dense matrix is requested for rows holding no features. gonum does
// not allow zero sized dimensions.
var ErrNoFeatures = errors.New("rows have no features")

// NoFeatures is a matrix with rows but no feature columns. It stands in for a dense matrix when every
// row is empty so that callers only deal with the intercept.
type NoFeatures int

// Dims returns the number of rows and zero columns
func (r NoFeatures) Dims() (int, int) {
	return int(r), 0
}

// At always panics since there are no elements
func (r NoFeatures) At(i, j int) float64 {
	panic(mat.ErrIndexOutOfRange)
}

// T returns the transpose of the matrix
func (r NoFeatures) T() mat.Matrix {
	return mat.Transpose{Matrix: r}
}

// NewDenseFromRows flattens x into a row major dense matrix with len(x) rows and one column per
// feature. The rows are validated to be non-empty and of equal length.
func NewDenseFromRows(x [][]float64) (*mat.Dense, error) {
	n, err := validate.Rows(x)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNoFeatures
	}
	return newDense(x, n), nil
}

// NewMatrixFromRows is like NewDenseFromRows but returns a NoFeatures matrix when the rows are empty
func NewMatrixFromRows(x [][]float64) (mat.Matrix, error) {
	n, err := validate.Rows(x)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return NoFeatures(len(x)), nil
	}
	return newDense(x, n), nil
}

func newDense(x [][]float64, n int) *mat.Dense {
	m := len(x)
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data)
}
