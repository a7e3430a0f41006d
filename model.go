package clearml

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aouyang1/go-clearml/loss"
	"github.com/aouyang1/go-clearml/models"
	"github.com/goccy/go-json"
)

// Model represents a serializable format of a Regressor storing the options, scaler bounds, fit
// scores and parameters
type Model struct {
	Options   *Options      `json:"options"`
	ScalerMin []float64     `json:"scaler_min,omitempty"`
	ScalerMax []float64     `json:"scaler_max,omitempty"`
	Params    models.Params `json:"params"`
	Scores    *loss.Scores  `json:"scores,omitempty"`
}

// Encode writes the model as indented json
func (m Model) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// DecodeModel reads a json encoded model
func DecodeModel(r io.Reader) (Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Model{}, fmt.Errorf("unable to decode model, %w", err)
	}
	return m, nil
}

// ModelEq returns a string representation of the model as y ~ b + m0*x0 + m1*x1 ... skipping
// zero coefficients
func (m Model) ModelEq() string {
	eq := "y ~ "
	eq += fmt.Sprintf("%.2f", m.Params.Intercept)
	for i, c := range m.Params.Coef {
		if c == 0 {
			continue
		}
		eq += fmt.Sprintf("+%.2f*x%d", c, i)
	}
	return eq
}

// TablePrint writes a human readable summary of the model
func (m Model) TablePrint(w io.Writer, prefix, indent string) error {
	if m.Options != nil {
		if _, err := fmt.Fprintf(w, "%sOptions:\n", prefix); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sScale: %t\n", prefix, indent, m.Options.Scale); err != nil {
			return err
		}
		if gd := m.Options.GradientDescent; gd != nil {
			if _, err := fmt.Fprintf(w, "%s%sIterations: %d    Learning Rate: %g    Tolerance: %g    Fit Intercept: %t\n",
				prefix, indent,
				gd.Iterations,
				gd.LearningRate,
				gd.Tolerance,
				gd.FitIntercept,
			); err != nil {
				return err
			}
		}
	}

	if m.Scores != nil {
		if _, err := fmt.Fprintf(w, "%sScores:\n", prefix); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sMAPE: %.3f    MSE: %.3f    R2: %.3f\n",
			prefix, indent,
			m.Scores.MAPE,
			m.Scores.MSE,
			m.Scores.R2,
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%sWeights:\n", prefix); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sFeature\tMin\tMax\tValue\t\n", prefix, indent); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tbl, "%s%sIntercept\t\t\t%.3f\t\n", prefix, indent, m.Params.Intercept); err != nil {
		return err
	}
	scaled := len(m.ScalerMin) == len(m.Params.Coef) && len(m.ScalerMax) == len(m.Params.Coef)
	for i, c := range m.Params.Coef {
		minVal, maxVal := "-", "-"
		if scaled {
			minVal = fmt.Sprintf("%.3f", m.ScalerMin[i])
			maxVal = fmt.Sprintf("%.3f", m.ScalerMax[i])
		}
		if _, err := fmt.Fprintf(tbl, "%s%s%s\t%s\t%s\t%.3f\t\n",
			prefix, indent,
			fmt.Sprintf("x%d", i), minVal, maxVal, c); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
