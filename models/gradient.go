package models

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/aouyang1/go-clearml/loss"
	mat_ "github.com/aouyang1/go-clearml/mat"
	"github.com/aouyang1/go-clearml/validate"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FitStats describes how the last fit went
type FitStats struct {
	// Iterations is the number of descent steps evaluated, including the one that converged.
	Iterations int `json:"iterations"`

	// Converged is true if the descent stopped before exhausting the iteration budget.
	Converged bool `json:"converged"`

	// GradNorms is the largest absolute prediction gradient seen on each iteration.
	GradNorms []float64 `json:"grad_norms"`
}

// LinearRegression fits a linear model using batch gradient descent on the mean squared error
type LinearRegression struct {
	opt    *GradientDescentOptions
	params Params
	stats  FitStats
}

// NewLinearRegression initializes a zero model ready for fitting
func NewLinearRegression(opt *GradientDescentOptions) (*LinearRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &LinearRegression{
		opt: opt,
	}, nil
}

// NewLinearRegressionFromParams initializes a model with pre-existing parameters. The model can be used
// for predictions right away or be refit, in which case the intercept is kept unless the options fit it.
func NewLinearRegressionFromParams(p Params, opt *GradientDescentOptions) (*LinearRegression, error) {
	l, err := NewLinearRegression(opt)
	if err != nil {
		return nil, err
	}
	l.params = p.Copy()
	return l, nil
}

// Fit the model according to the given training data. Coefficients are reset to zero and then
// updated in place until the prediction gradients fall under the tolerance or the iteration
// budget is used up.
func (l *LinearRegression) Fit(x [][]float64, y []float64) error {
	if l.opt == nil {
		return ErrNoOptions
	}
	if err := validate.NotEmpty(x); err != nil {
		return fmt.Errorf("training matrix, %w", err)
	}
	if err := validate.NotEmpty(y); err != nil {
		return fmt.Errorf("target, %w", err)
	}
	if err := validate.EqualLength(x, y); err != nil {
		return fmt.Errorf("training matrix and target rows, %w", err)
	}
	xMx, err := mat_.NewMatrixFromRows(x)
	if err != nil {
		return fmt.Errorf("training matrix, %w", err)
	}
	_, n := xMx.Dims()

	params := Params{
		Intercept: l.params.Intercept,
		Coef:      make([]float64, n),
	}
	if l.opt.FitIntercept {
		params.Intercept = 0
	}

	prev := params
	stats := FitStats{
		GradNorms: make([]float64, 0, min(l.opt.Iterations, DefaultIterations)),
	}
	for i := 0; i < l.opt.Iterations; i++ {
		next, gradNorm := Step(params, xMx, y, l.opt)
		stats.Iterations++
		stats.GradNorms = append(stats.GradNorms, gradNorm)

		if gradNorm < l.opt.Tolerance {
			stats.Converged = true
			break
		}
		if math.IsNaN(gradNorm) || math.IsInf(gradNorm, 0) {
			// params produced the non-finite gradient, fall back to the last step with a finite one
			slog.Warn("gradient descent diverged, consider lowering the learning rate",
				"iteration", i, "learning_rate", l.opt.LearningRate)
			params = prev
			break
		}
		prev, params = params, next
	}

	if stats.Converged {
		slog.Debug("gradient descent converged", "iterations", stats.Iterations)
	} else {
		slog.Debug("gradient descent stopped without converging", "iterations", stats.Iterations,
			"tolerance", l.opt.Tolerance)
	}

	l.params = params
	l.stats = stats
	return nil
}

// Step performs a single batch gradient descent update on p and returns the updated parameters along
// with the largest absolute per observation prediction gradient evaluated at p. p is not modified.
// x must have one column per coefficient and one row per target value. With no columns only the
// intercept can move.
func Step(p Params, x mat.Matrix, y []float64, opt *GradientDescentOptions) (Params, float64) {
	if opt == nil {
		opt = NewDefaultGradientDescentOptions()
	}
	m, n := x.Dims()

	predicted := p.predict(x)
	g := loss.GradientMSETo(predicted, predicted, y)
	gradNorm := floats.Norm(g, math.Inf(1))
	if floats.HasNaN(g) {
		gradNorm = math.NaN()
	}

	next := Params{
		Intercept: p.Intercept,
		Coef:      make([]float64, n),
	}
	if n > 0 {
		// project the prediction gradients through the features, 2/n * sum_i (yhat_i - y_i) * x_ij
		grad := mat.NewVecDense(n, nil)
		grad.MulVec(x.T(), mat.NewVecDense(m, g))
		floats.AddScaledTo(next.Coef, p.Coef, -opt.LearningRate, grad.RawVector().Data)
	}
	if opt.FitIntercept {
		next.Intercept -= opt.LearningRate * floats.Sum(g)
	}
	return next, gradNorm
}

// Predict using the linear model. Every row must have as many features as the model has coefficients.
func (l *LinearRegression) Predict(x [][]float64) ([]float64, error) {
	if err := validate.RowsLen(x, len(l.params.Coef)); err != nil {
		return nil, fmt.Errorf("design matrix, %w", err)
	}

	xMx, err := mat_.NewMatrixFromRows(x)
	if err != nil {
		return nil, fmt.Errorf("design matrix, %w", err)
	}
	return l.params.predict(xMx), nil
}

// Score computes the coefficient of determination of the prediction
func (l *LinearRegression) Score(x [][]float64, y []float64) (float64, error) {
	if err := validate.EqualLength(x, y); err != nil {
		return 0.0, fmt.Errorf("design matrix and target rows, %w", err)
	}

	res, err := l.Predict(x)
	if err != nil {
		return 0.0, err
	}
	return loss.RSquared(res, y)
}

// Intercept returns the model intercept. Defaults to 0.0 if not set.
func (l *LinearRegression) Intercept() float64 {
	return l.params.Intercept
}

// Coef returns a copy of the coefficients in the same order of the training feature columns
func (l *LinearRegression) Coef() []float64 {
	c := make([]float64, len(l.params.Coef))
	copy(c, l.params.Coef)
	return c
}

// Params returns a copy of the model parameters
func (l *LinearRegression) Params() Params {
	return l.params.Copy()
}

// FitStats returns the descent statistics of the last fit
func (l *LinearRegression) FitStats() FitStats {
	s := l.stats
	s.GradNorms = make([]float64, len(l.stats.GradNorms))
	copy(s.GradNorms, l.stats.GradNorms)
	return s
}

// Options returns a copy of the effective options of the model
func (l *LinearRegression) Options() *GradientDescentOptions {
	return l.opt.Copy()
}
