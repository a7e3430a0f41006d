package clearml

import "github.com/aouyang1/go-clearml/models"

// Options configures a Regressor
type Options struct {
	// Scale min-max scales every feature into [0, 1] before fitting and predicting. Gradient descent
	// with the default learning rate needs features on a unit scale to converge.
	Scale bool `json:"scale"`

	GradientDescent *models.GradientDescentOptions `json:"gradient_descent"`
}

// NewDefaultOptions returns a default set of Regressor options
func NewDefaultOptions() *Options {
	return &Options{
		Scale:           true,
		GradientDescent: models.NewDefaultGradientDescentOptions(),
	}
}

// Validate fills in defaults and checks the gradient descent options. The returned options are a
// copy, o is left untouched.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}
	gd, err := o.GradientDescent.Validate()
	if err != nil {
		return nil, err
	}
	return &Options{
		Scale:           o.Scale,
		GradientDescent: gd,
	}, nil
}

// Copy returns a deep copy of the options, nil if unset
func (o *Options) Copy() *Options {
	if o == nil {
		return nil
	}
	return &Options{
		Scale:           o.Scale,
		GradientDescent: o.GradientDescent.Copy(),
	}
}
