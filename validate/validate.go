// Package validate holds the input checks shared by every public entry point that accepts
// vectors or feature matrices. Checks run before any computation so invalid input never
// results in partial work.
package validate

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyVector       = errors.New("empty vector")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// NotEmpty returns ErrEmptyVector if x has no elements
func NotEmpty[T any](x []T) error {
	if len(x) == 0 {
		return ErrEmptyVector
	}
	return nil
}

// EqualLength returns ErrDimensionMismatch if a and b have different lengths
func EqualLength[T1, T2 any](a []T1, b []T2) error {
	if len(a) != len(b) {
		return fmt.Errorf("got lengths %d and %d, %w", len(a), len(b), ErrDimensionMismatch)
	}
	return nil
}

// Rows checks that x has at least one row and that every row has the length of the first row.
// Returns the number of features per row.
func Rows(x [][]float64) (int, error) {
	if err := NotEmpty(x); err != nil {
		return 0, err
	}
	n := len(x[0])
	for i := 1; i < len(x); i++ {
		if err := EqualLength(x[0], x[i]); err != nil {
			return 0, fmt.Errorf("at row %d, %w", i, err)
		}
	}
	return n, nil
}

// RowsLen checks that x has at least one row and that every row has exactly n features
func RowsLen(x [][]float64, n int) error {
	if err := NotEmpty(x); err != nil {
		return err
	}
	for i, row := range x {
		if len(row) != n {
			return fmt.Errorf("at row %d, got %d features but expected %d, %w", i, len(row), n, ErrDimensionMismatch)
		}
	}
	return nil
}
