package clearml

import (
	"bytes"
	"testing"

	"github.com/aouyang1/go-clearml/models"
	"github.com/aouyang1/go-clearml/preprocessing"
	"github.com/aouyang1/go-clearml/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInterceptOptions() *Options {
	opt := NewDefaultOptions()
	opt.GradientDescent.FitIntercept = true
	opt.GradientDescent.Iterations = 20000
	return opt
}

func TestOptionsValidate(t *testing.T) {
	opt, err := (*Options)(nil).Validate()
	require.Nil(t, err)
	assert.Equal(t, NewDefaultOptions(), opt)

	opt, err = (&Options{Scale: true}).Validate()
	require.Nil(t, err)
	assert.Equal(t, models.NewDefaultGradientDescentOptions(), opt.GradientDescent)

	_, err = New(&Options{GradientDescent: &models.GradientDescentOptions{Iterations: -1}})
	assert.ErrorIs(t, err, models.ErrNegativeIterations)
}

func TestRegressorFitValidation(t *testing.T) {
	testData := map[string]struct {
		x   [][]float64
		y   []float64
		err error
	}{
		"empty":           {[][]float64{}, []float64{1}, validate.ErrEmptyVector},
		"empty target":    {[][]float64{{1}}, nil, validate.ErrEmptyVector},
		"length mismatch": {[][]float64{{1}, {2}}, []float64{1}, validate.ErrDimensionMismatch},
		"ragged":          {[][]float64{{1}, {2, 3}}, []float64{1, 2}, validate.ErrDimensionMismatch},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			r, err := New(nil)
			require.Nil(t, err)
			assert.ErrorIs(t, r.Fit(td.x, td.y), td.err)
		})
	}
}

func TestRegressorFitScaled(t *testing.T) {
	tol := 1e-4
	r, err := New(newInterceptOptions())
	require.Nil(t, err)

	// y = 1 + 2*x which is y = 3 + 4*x_scaled for x in [1, 3]
	x := [][]float64{{1}, {2}, {3}}
	y := []float64{3, 5, 7}
	require.Nil(t, r.Fit(x, y))

	assert.InDelta(t, 3.0, r.Intercept(), tol, "intercept")
	assert.InDeltaSlice(t, []float64{4.0}, r.Coef(), tol, "coefficients")
	assert.True(t, r.FitStats().Converged)

	res, err := r.Predict([][]float64{{4}, {0}})
	require.Nil(t, err)
	assert.InDeltaSlice(t, []float64{9, 1}, res, tol)

	score, err := r.Score(x, y)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, score, tol)

	scores := r.Scores()
	require.NotNil(t, scores)
	assert.InDelta(t, 0.0, scores.MSE, tol)
	assert.InDelta(t, 1.0, scores.R2, tol)
}

func TestRegressorFitUnscaled(t *testing.T) {
	opt := NewDefaultOptions()
	opt.Scale = false
	r, err := New(opt)
	require.Nil(t, err)

	require.Nil(t, r.Fit([][]float64{{1}, {2}}, []float64{2, 4}))
	assert.Equal(t, 0.0, r.Intercept())
	assert.InDeltaSlice(t, []float64{2.0}, r.Coef(), 1e-6)

	_, err = r.Predict([][]float64{{1, 2}})
	assert.ErrorIs(t, err, validate.ErrDimensionMismatch)
}

func TestRegressorNotFit(t *testing.T) {
	r, err := New(nil)
	require.Nil(t, err)

	_, err = r.Predict([][]float64{{1}})
	assert.ErrorIs(t, err, preprocessing.ErrScalerNotFit)

	_, err = r.Model()
	assert.ErrorIs(t, err, ErrNotFit)

	assert.ErrorIs(t, r.PlotConvergence(&bytes.Buffer{}), ErrNoConvergenceData)
	assert.Nil(t, r.Scores())
}

func TestRegressorModelRoundTrip(t *testing.T) {
	r, err := New(newInterceptOptions())
	require.Nil(t, err)

	x := [][]float64{{1, 10}, {2, 30}, {3, 20}, {4, 40}}
	y := []float64{5, 9, 10, 14}
	require.Nil(t, r.Fit(x, y))

	m, err := r.Model()
	require.Nil(t, err)
	assert.Equal(t, []float64{1, 10}, m.ScalerMin)
	assert.Equal(t, []float64{4, 40}, m.ScalerMax)

	var buf bytes.Buffer
	require.Nil(t, m.Encode(&buf))

	decoded, err := DecodeModel(&buf)
	require.Nil(t, err)
	assert.Equal(t, m, decoded)

	loaded, err := NewFromModel(decoded)
	require.Nil(t, err)

	expected, err := r.Predict(x)
	require.Nil(t, err)
	res, err := loaded.Predict(x)
	require.Nil(t, err)
	assert.InDeltaSlice(t, expected, res, 1e-12)
	assert.Equal(t, r.Scores(), loaded.Scores())
}

func TestNewFromModel(t *testing.T) {
	testData := map[string]struct {
		m   Model
		err error
	}{
		"no options": {
			m:   Model{},
			err: ErrNoOptionsInModel,
		},
		"scaled without bounds": {
			m:   Model{Options: NewDefaultOptions(), Params: models.Params{Coef: []float64{1}}},
			err: ErrNoScalerInModel,
		},
		"inverted bounds": {
			m: Model{
				Options:   NewDefaultOptions(),
				ScalerMin: []float64{2},
				ScalerMax: []float64{1},
				Params:    models.Params{Coef: []float64{1}},
			},
			err: preprocessing.ErrInvertedBounds,
		},
		"unscaled": {
			m: Model{
				Options: &Options{Scale: false},
				Params:  models.Params{Intercept: 1, Coef: []float64{2}},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			r, err := NewFromModel(td.m)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)

			res, err := r.Predict([][]float64{{1}, {2}})
			require.Nil(t, err)
			assert.Equal(t, []float64{3, 5}, res)
		})
	}
}

func TestRegressorPlotConvergence(t *testing.T) {
	opt := NewDefaultOptions()
	opt.Scale = false
	r, err := New(opt)
	require.Nil(t, err)
	require.Nil(t, r.Fit([][]float64{{1}, {2}}, []float64{2, 4}))

	var buf bytes.Buffer
	require.Nil(t, r.PlotConvergence(&buf))
	out := buf.String()
	assert.Contains(t, out, "Gradient Descent Convergence")
	assert.Contains(t, out, "Gradient Norm")
	assert.Contains(t, out, "Tolerance")
}

func TestLineConvergence(t *testing.T) {
	line := LineConvergence("test", []float64{4, 2, 1}, 0.5)
	require.NotNil(t, line)
	require.Len(t, line.MultiSeries, 2)
	assert.Equal(t, "Gradient Norm", line.MultiSeries[0].Name)
	assert.Equal(t, "Tolerance", line.MultiSeries[1].Name)
}

func TestRegressorModelIsSnapshot(t *testing.T) {
	opt := NewDefaultOptions()
	opt.Scale = false
	r, err := New(opt)
	require.Nil(t, err)

	// options handed to New are copied
	opt.GradientDescent.LearningRate = -5
	opt.Scale = true

	x := [][]float64{{1}, {2}}
	y := []float64{2, 4}
	require.Nil(t, r.Fit(x, y))

	m, err := r.Model()
	require.Nil(t, err)
	m.Options.GradientDescent.LearningRate = -5
	m.Options.GradientDescent.Iterations = 0
	m.Scores.MSE = 100

	require.Nil(t, r.Fit(x, y))
	assert.InDeltaSlice(t, []float64{2.0}, r.Coef(), 1e-6)
	assert.True(t, r.FitStats().Converged)
	assert.Less(t, r.Scores().MSE, 1e-9)

	fresh, err := r.Model()
	require.Nil(t, err)
	assert.Equal(t, models.DefaultLearningRate, fresh.Options.GradientDescent.LearningRate)
	assert.Equal(t, models.DefaultIterations, fresh.Options.GradientDescent.Iterations)
	assert.False(t, fresh.Options.Scale)

	// the invalid options are caught once the snapshot is loaded
	_, err = NewFromModel(m)
	assert.ErrorIs(t, err, models.ErrNonPositiveLearningRate)
}
