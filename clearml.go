// Package clearml fits linear regressions with batch gradient descent. A Regressor optionally scales
// the features, trains a models.LinearRegression and can export the result as a serializable Model.
package clearml

import (
	"errors"
	"fmt"
	"io"

	"github.com/aouyang1/go-clearml/loss"
	"github.com/aouyang1/go-clearml/models"
	"github.com/aouyang1/go-clearml/preprocessing"
	"github.com/aouyang1/go-clearml/validate"
	"github.com/go-echarts/go-echarts/v2/components"
)

var (
	ErrNotFit            = errors.New("regressor has not been fit")
	ErrNoOptionsInModel  = errors.New("no options set in model")
	ErrNoScalerInModel   = errors.New("model enables scaling but has no scaler bounds")
	ErrNoConvergenceData = errors.New("no gradient descent iterations recorded")
)

// Regressor fits a linear model with optional min-max feature scaling
type Regressor struct {
	opt *Options

	scaler *preprocessing.MinMaxScaler
	model  *models.LinearRegression
	scores *loss.Scores
}

// New creates a new Regressor using the provided options. If no options are provided a default
// is used.
func New(opt *Options) (*Regressor, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid regressor options, %w", err)
	}

	model, err := models.NewLinearRegression(opt.GradientDescent)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize linear regression, %w", err)
	}

	r := &Regressor{
		opt:   opt,
		model: model,
	}
	if opt.Scale {
		r.scaler = preprocessing.NewMinMaxScaler()
	}
	return r, nil
}

// NewFromModel creates a new Regressor from a pre-existing model. This should be generated from a
// previous Regressor call to Model().
func NewFromModel(m Model) (*Regressor, error) {
	if m.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	opt, err := m.Options.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid model options, %w", err)
	}

	model, err := models.NewLinearRegressionFromParams(m.Params, opt.GradientDescent)
	if err != nil {
		return nil, fmt.Errorf("unable to load linear regression, %w", err)
	}

	r := &Regressor{
		opt:    opt,
		model:  model,
		scores: m.Scores.Copy(),
	}
	if opt.Scale {
		if m.ScalerMin == nil || m.ScalerMax == nil {
			return nil, ErrNoScalerInModel
		}
		r.scaler, err = preprocessing.NewMinMaxScalerFromBounds(m.ScalerMin, m.ScalerMax)
		if err != nil {
			return nil, fmt.Errorf("unable to load scaler, %w", err)
		}
	}
	return r, nil
}

// Fit scales the training features if enabled and fits the linear model
func (r *Regressor) Fit(x [][]float64, y []float64) error {
	if err := validate.NotEmpty(x); err != nil {
		return fmt.Errorf("training matrix, %w", err)
	}
	if err := validate.NotEmpty(y); err != nil {
		return fmt.Errorf("target, %w", err)
	}
	if err := validate.EqualLength(x, y); err != nil {
		return fmt.Errorf("training matrix and target rows, %w", err)
	}

	// scaler bounds are only replaced once the model fit succeeds
	xFeat := x
	var scaler *preprocessing.MinMaxScaler
	if r.opt.Scale {
		scaler = preprocessing.NewMinMaxScaler()
		var err error
		xFeat, err = scaler.FitTransform(x)
		if err != nil {
			return fmt.Errorf("unable to scale training matrix, %w", err)
		}
	}

	if err := r.model.Fit(xFeat, y); err != nil {
		return fmt.Errorf("unable to fit linear regression, %w", err)
	}
	if scaler != nil {
		r.scaler = scaler
	}

	predicted, err := r.model.Predict(xFeat)
	if err != nil {
		return fmt.Errorf("unable to predict training matrix, %w", err)
	}
	r.scores, err = loss.NewScores(predicted, y)
	if err != nil {
		return fmt.Errorf("unable to score fit, %w", err)
	}
	return nil
}

// Predict returns the model estimate for every row of x
func (r *Regressor) Predict(x [][]float64) ([]float64, error) {
	xFeat := x
	if r.scaler != nil {
		var err error
		xFeat, err = r.scaler.Transform(x)
		if err != nil {
			return nil, fmt.Errorf("unable to scale design matrix, %w", err)
		}
	}
	return r.model.Predict(xFeat)
}

// Score computes the coefficient of determination of the prediction against y
func (r *Regressor) Score(x [][]float64, y []float64) (float64, error) {
	if err := validate.EqualLength(x, y); err != nil {
		return 0.0, fmt.Errorf("design matrix and target rows, %w", err)
	}
	predicted, err := r.Predict(x)
	if err != nil {
		return 0.0, err
	}
	return loss.RSquared(predicted, y)
}

// Intercept returns the model intercept. With scaling enabled this applies to the scaled features.
func (r *Regressor) Intercept() float64 {
	return r.model.Intercept()
}

// Coef returns the model coefficients. With scaling enabled these apply to the scaled features.
func (r *Regressor) Coef() []float64 {
	return r.model.Coef()
}

// Scores returns the fit scores on the training data, nil if the regressor has not been fit
func (r *Regressor) Scores() *loss.Scores {
	return r.scores
}

// FitStats returns the gradient descent statistics of the last fit
func (r *Regressor) FitStats() models.FitStats {
	return r.model.FitStats()
}

// Model generates a serializable snapshot of the options, scaler bounds, parameters and fit
// scores. Changes to the snapshot do not affect the regressor. This can be used to initialize a new Regressor for immediate predictions skipping the
// training step.
func (r *Regressor) Model() (Model, error) {
	m := Model{
		Options: r.opt.Copy(),
		Params:  r.model.Params(),
		Scores:  r.scores.Copy(),
	}
	if r.scaler != nil {
		m.ScalerMin = r.scaler.Min()
		m.ScalerMax = r.scaler.Max()
		if m.ScalerMin == nil {
			return Model{}, ErrNotFit
		}
	}
	return m, nil
}

// PlotConvergence uses the Apache Echarts library to render an html page showing the gradient norm
// of every descent iteration of the last fit against the tolerance
func (r *Regressor) PlotConvergence(w io.Writer) error {
	stats := r.FitStats()
	if stats.Iterations == 0 {
		return ErrNoConvergenceData
	}

	page := components.NewPage()
	page.AddCharts(
		LineConvergence("Gradient Descent Convergence", stats.GradNorms, r.opt.GradientDescent.Tolerance),
	)
	return page.Render(w)
}
