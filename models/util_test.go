package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Model = (*LinearRegression)(nil)

func testModel(t *testing.T, model Model, x [][]float64, y []float64, intercept float64, coef []float64, tol float64) {
	err := model.Fit(x, y)
	require.Nil(t, err)

	assert.InDelta(t, intercept, model.Intercept(), tol, "intercept")

	c := model.Coef()
	assert.InDeltaSlice(t, coef, c, tol, "coefficients")

	r2, err := model.Score(x, y)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, r2, tol, "score")
}

// generateBenchData builds a well conditioned design matrix with features in [0, 1) and a target
// that is an exact linear combination of them
func generateBenchData(nObs, nFeat int) ([][]float64, []float64) {
	x := make([][]float64, nObs)
	y := make([]float64, nObs)
	for i := 0; i < nObs; i++ {
		x[i] = make([]float64, nFeat)
		for j := 0; j < nFeat; j++ {
			x[i][j] = float64((i*nFeat+j)%97) / 97.0
			y[i] += float64(j+1) * x[i][j]
		}
	}
	return x, y
}
