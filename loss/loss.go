// Package loss provides the mean squared error loss, its gradient with respect to the
// predictions and a set of fit scores.
package loss

import (
	"gonum.org/v1/gonum/floats"

	"github.com/aouyang1/go-clearml/validate"
)

func validatePair(predicted, actual []float64) error {
	if err := validate.NotEmpty(predicted); err != nil {
		return err
	}
	if err := validate.NotEmpty(actual); err != nil {
		return err
	}
	return validate.EqualLength(predicted, actual)
}

// MeanSquaredError computes mean((predicted - actual)^2). Both inputs must be non-empty and of
// the same length.
func MeanSquaredError(predicted, actual []float64) (float64, error) {
	if err := validatePair(predicted, actual); err != nil {
		return 0, err
	}
	diff := make([]float64, len(predicted))
	floats.SubTo(diff, predicted, actual)
	return floats.Dot(diff, diff) / float64(len(diff)), nil
}

// GradientMSE computes the gradient of the mean squared error with respect to each prediction,
// 2/n * (predicted_i - actual_i). Both inputs must be non-empty and of the same length.
func GradientMSE(predicted, actual []float64) ([]float64, error) {
	if err := validatePair(predicted, actual); err != nil {
		return nil, err
	}
	return GradientMSETo(nil, predicted, actual), nil
}

// GradientMSETo stores the per prediction gradient of the mean squared error in dst and returns it.
// A nil dst is allocated. Inputs are not validated; like the gonum floats routines it panics if
// the lengths of dst, predicted and actual differ.
func GradientMSETo(dst, predicted, actual []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(predicted))
	}
	floats.SubTo(dst, predicted, actual)
	floats.Scale(2.0/float64(len(dst)), dst)
	return dst
}
