package loss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Scores tracks the fit scores
type Scores struct {
	MSE  float64 `json:"mean_squared_error"`
	MAPE float64 `json:"mean_average_percent_error"`
	R2   float64 `json:"r_squared"`
}

// NewScores calculates the fit scores given the predicted and actual input slice values
func NewScores(predicted, actual []float64) (*Scores, error) {
	mse, err := MeanSquaredError(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}
	rs, err := RSquared(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute r-squared, %w", err)
	}

	return &Scores{
		MSE:  mse,
		MAPE: mape,
		R2:   rs,
	}, nil
}

// Copy returns a copy of the scores, nil if unset
func (s *Scores) Copy() *Scores {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// MAPE calculates the mean average percent error. This is the same as sum(abs((y-yhat)/y)) / n.
// Points with a NaN or a zero actual value are skipped. A score of 0 means a perfect match.
func MAPE(predicted, actual []float64) (float64, error) {
	if err := validatePair(predicted, actual); err != nil {
		return 0, err
	}

	p, a := dropNaN(predicted, actual)
	var sum float64
	for i, val := range a {
		if val != 0 {
			sum += math.Abs((val - p[i]) / val)
		}
	}
	return sum / float64(len(actual)), nil
}

// RSquared computes the r squared value between the predicted and actual where 1.0 means perfect
// fit and 0 represents no relationship. A constant actual series that is matched exactly scores 1.0.
func RSquared(predicted, actual []float64) (float64, error) {
	if err := validatePair(predicted, actual); err != nil {
		return 0, err
	}

	p, a := dropNaN(predicted, actual)
	if r2 := stat.RSquaredFrom(p, a, nil); !math.IsNaN(r2) {
		return r2, nil
	}
	return 1.0, nil
}

// dropNaN returns copies of predicted and actual without the pairs where either value is NaN
func dropNaN(predicted, actual []float64) ([]float64, []float64) {
	p := make([]float64, 0, len(predicted))
	a := make([]float64, 0, len(actual))
	for i, val := range actual {
		if math.IsNaN(val) || math.IsNaN(predicted[i]) {
			continue
		}
		p = append(p, predicted[i])
		a = append(a, val)
	}
	return p, a
}
