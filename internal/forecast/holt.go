package forecast

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Holt 기본 평활 계수
const (
	DefaultHoltAlpha = 0.5
	DefaultHoltBeta  = 0.3
)

// HoltModel Holt 선형(가법 추세) 지수평활
type HoltModel struct {
	alpha float64
	beta  float64
}

// NewHoltModel creates a Holt model; coefficients outside (0,1] fall back to defaults
func NewHoltModel(alpha, beta float64) *HoltModel {
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultHoltAlpha
	}
	if beta <= 0 || beta > 1 {
		beta = DefaultHoltBeta
	}
	return &HoltModel{alpha: alpha, beta: beta}
}

// Name returns the model name
func (m *HoltModel) Name() string {
	return ModelHolt
}

// Fit smooths level and trend over values and extrapolates one step.
// Sigma is the RMS of the one-step-ahead in-sample errors.
func (m *HoltModel) Fit(values []float64) (Fit, error) {
	if len(values) < 2 {
		return Fit{}, ErrTooShort
	}

	level := values[0]
	trend := values[1] - values[0]

	// 초기 추세로 t=1은 항상 정확히 맞으므로 t>=2 오차만 사용
	var sqErrs []float64
	for t := 1; t < len(values); t++ {
		pred := level + trend
		if t >= 2 {
			e := values[t] - pred
			sqErrs = append(sqErrs, e*e)
		}

		prevLevel := level
		level = m.alpha*values[t] + (1-m.alpha)*(level+trend)
		trend = m.beta*(level-prevLevel) + (1-m.beta)*trend
	}

	sigma := 0.0
	if len(sqErrs) > 0 {
		sigma = math.Sqrt(stat.Mean(sqErrs, nil))
	}

	return Fit{Next: level + trend, Sigma: sigma}, nil
}
