package clearml

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineConvergence generates an echart line chart of the per iteration gradient norms with the
// tolerance drawn as a flat reference line
func LineConvergence(title string, gradNorms []float64, tolerance float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Name: "Iteration",
			},
		),
	)

	iterations := make([]int, 0, len(gradNorms))
	lineDataNorm := make([]opts.LineData, 0, len(gradNorms))
	lineDataTol := make([]opts.LineData, 0, len(gradNorms))
	for i, norm := range gradNorms {
		iterations = append(iterations, i+1)
		lineDataNorm = append(lineDataNorm, opts.LineData{Value: norm})
		lineDataTol = append(lineDataTol, opts.LineData{Value: tolerance})
	}

	line.SetXAxis(iterations).
		AddSeries("Gradient Norm", lineDataNorm).
		AddSeries("Tolerance", lineDataTol)
	return line
}
