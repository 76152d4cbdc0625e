package forecast

import (
	"fmt"
	"math"

	"github.com/sajari/regression"
)

// TrendModel 주차 인덱스에 대한 최소제곱 추세선
type TrendModel struct{}

// NewTrendModel creates a linear trend model
func NewTrendModel() *TrendModel {
	return &TrendModel{}
}

// Name returns the model name
func (m *TrendModel) Name() string {
	return ModelTrend
}

// Fit regresses values on their index and predicts the next index.
// Sigma is the residual standard error (n-2 degrees of freedom).
func (m *TrendModel) Fit(values []float64) (Fit, error) {
	n := len(values)
	if n < 2 {
		return Fit{}, ErrTooShort
	}

	var r regression.Regression
	r.SetObserved("points")
	r.SetVar(0, "week")
	for i, y := range values {
		r.Train(regression.DataPoint(y, []float64{float64(i)}))
	}

	if err := r.Run(); err != nil {
		return Fit{}, fmt.Errorf("trend regression: %w", err)
	}

	next, err := r.Predict([]float64{float64(n)})
	if err != nil {
		return Fit{}, fmt.Errorf("trend predict: %w", err)
	}

	sigma := 0.0
	if n > 2 {
		sse := 0.0
		for i, y := range values {
			fitted, err := r.Predict([]float64{float64(i)})
			if err != nil {
				return Fit{}, fmt.Errorf("trend predict: %w", err)
			}
			sse += (y - fitted) * (y - fitted)
		}
		sigma = math.Sqrt(sse / float64(n-2))
	}

	return Fit{Next: next, Sigma: sigma}, nil
}
