// Package preprocessing rescales feature matrices before they are handed to a model
package preprocessing

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-clearml/validate"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrScalerNotFit   = errors.New("scaler has not been fit")
	ErrBoundsMismatch = errors.New("min and max bounds have different lengths")
	ErrInvertedBounds = errors.New("min bound is greater than max bound")
)

// MinMaxScaler scales every feature column into [0, 1] using the column minimum and maximum seen
// during Fit, x_norm = (x - min) / (max - min). Constant columns are mapped to 0.
type MinMaxScaler struct {
	min []float64
	max []float64
}

// NewMinMaxScaler returns an unfit scaler
func NewMinMaxScaler() *MinMaxScaler {
	return &MinMaxScaler{}
}

// NewMinMaxScalerFromBounds returns a scaler with previously computed column bounds
func NewMinMaxScalerFromBounds(minVals, maxVals []float64) (*MinMaxScaler, error) {
	if err := validate.EqualLength(minVals, maxVals); err != nil {
		return nil, fmt.Errorf("%w, %w", ErrBoundsMismatch, err)
	}
	for j := range minVals {
		if minVals[j] > maxVals[j] {
			return nil, fmt.Errorf("at column %d, %w", j, ErrInvertedBounds)
		}
	}

	s := &MinMaxScaler{
		min: make([]float64, len(minVals)),
		max: make([]float64, len(maxVals)),
	}
	copy(s.min, minVals)
	copy(s.max, maxVals)
	return s, nil
}

// Fit records the per column minimum and maximum of x
func (s *MinMaxScaler) Fit(x [][]float64) error {
	n, err := validate.Rows(x)
	if err != nil {
		return err
	}

	minVals := make([]float64, n)
	maxVals := make([]float64, n)
	col := make([]float64, len(x))
	for j := 0; j < n; j++ {
		for i, row := range x {
			col[i] = row[j]
		}
		minVals[j] = floats.Min(col)
		maxVals[j] = floats.Max(col)
	}
	s.min = minVals
	s.max = maxVals
	return nil
}

// Transform returns a scaled copy of x. x must have the same number of features as the fit data.
func (s *MinMaxScaler) Transform(x [][]float64) ([][]float64, error) {
	if s.min == nil {
		return nil, ErrScalerNotFit
	}
	if err := validate.RowsLen(x, len(s.min)); err != nil {
		return nil, err
	}

	res := make([][]float64, len(x))
	for i, row := range x {
		scaled := make([]float64, len(row))
		copy(scaled, row)
		s.scaleRow(scaled)
		res[i] = scaled
	}
	return res, nil
}

// FitTransform fits the scaler to x and returns the scaled copy of x
func (s *MinMaxScaler) FitTransform(x [][]float64) ([][]float64, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}
	return s.Transform(x)
}

func (s *MinMaxScaler) scaleRow(row []float64) {
	for j, val := range row {
		span := s.max[j] - s.min[j]
		if span == 0 {
			row[j] = 0
			continue
		}
		row[j] = (val - s.min[j]) / span
	}
}

// Min returns a copy of the per column minimums
func (s *MinMaxScaler) Min() []float64 {
	if s.min == nil {
		return nil
	}
	res := make([]float64, len(s.min))
	copy(res, s.min)
	return res
}

// Max returns a copy of the per column maximums
func (s *MinMaxScaler) Max() []float64 {
	if s.max == nil {
		return nil
	}
	res := make([]float64, len(s.max))
	copy(res, s.max)
	return res
}

// ScaleMinMax scales every column of x in place to be between 0 and 1
func ScaleMinMax(x [][]float64) error {
	s := NewMinMaxScaler()
	if err := s.Fit(x); err != nil {
		return err
	}
	for _, row := range x {
		s.scaleRow(row)
	}
	return nil
}
