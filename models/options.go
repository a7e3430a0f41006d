package models

const (
	DefaultIterations   = 1000
	DefaultLearningRate = 0.01
	DefaultTolerance    = 1e-6
)

// GradientDescentOptions represents input options to run the batch gradient descent linear regression
type GradientDescentOptions struct {
	// Iterations is the maximum number of descent steps taken during a fit.
	Iterations int `json:"iterations"`

	// LearningRate scales each parameter gradient before it is subtracted from the parameter.
	LearningRate float64 `json:"learning_rate"`

	// Tolerance stops the descent once every per observation prediction gradient is smaller than
	// this in absolute value.
	Tolerance float64 `json:"tolerance"`

	// FitIntercept learns the intercept alongside the coefficients. When false the intercept is left
	// at whatever value the model was initialized with.
	FitIntercept bool `json:"fit_intercept"`
}

// Validate runs basic validation on the gradient descent options and returns a copy of them
func (g *GradientDescentOptions) Validate() (*GradientDescentOptions, error) {
	if g == nil {
		g = NewDefaultGradientDescentOptions()
	}

	if g.Iterations < 0 {
		return nil, ErrNegativeIterations
	}
	if g.LearningRate <= 0 {
		return nil, ErrNonPositiveLearningRate
	}
	if g.Tolerance < 0 {
		return nil, ErrNegativeTolerance
	}
	return g.Copy(), nil
}

// Copy returns a copy of the options, nil if unset
func (g *GradientDescentOptions) Copy() *GradientDescentOptions {
	if g == nil {
		return nil
	}
	c := *g
	return &c
}

// NewDefaultGradientDescentOptions returns a default set of gradient descent options
func NewDefaultGradientDescentOptions() *GradientDescentOptions {
	return &GradientDescentOptions{
		Iterations:   DefaultIterations,
		LearningRate: DefaultLearningRate,
		Tolerance:    DefaultTolerance,
		FitIntercept: false,
	}
}
