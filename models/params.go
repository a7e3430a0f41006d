package models

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Params are the weights of a linear model, y ~ intercept + coef[0]*x0 + coef[1]*x1 ...
type Params struct {
	Intercept float64   `json:"intercept"`
	Coef      []float64 `json:"coefficients"`
}

// Copy returns a deep copy of the parameters
func (p Params) Copy() Params {
	c := Params{Intercept: p.Intercept}
	if p.Coef != nil {
		c.Coef = make([]float64, len(p.Coef))
		copy(c.Coef, p.Coef)
	}
	return c
}

// predict assumes x has as many columns as there are coefficients. Without columns every prediction
// is the intercept.
func (p Params) predict(x mat.Matrix) []float64 {
	m, n := x.Dims()
	if n == 0 {
		out := make([]float64, m)
		floats.AddConst(p.Intercept, out)
		return out
	}
	res := mat.NewVecDense(m, nil)
	res.MulVec(x, mat.NewVecDense(n, p.Coef))

	out := res.RawVector().Data
	floats.AddConst(p.Intercept, out)
	return out
}
