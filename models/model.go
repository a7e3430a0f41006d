// Package models is a collection of linear regression fitting implementations operating on row
// oriented feature matrices
package models

// Model is a trainable regression over a feature matrix with one row per observation
type Model interface {
	Fit(x [][]float64, y []float64) error
	Predict(x [][]float64) ([]float64, error)
	Score(x [][]float64, y []float64) (float64, error)
	Intercept() float64
	Coef() []float64
}
