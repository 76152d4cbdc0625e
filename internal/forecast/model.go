package forecast

import (
	"errors"
	"fmt"
)

// Model names
const (
	ModelHolt  = "holt"
	ModelTrend = "trend"
)

var (
	// ErrUnknownModel is returned by NewModel for an unsupported name
	ErrUnknownModel = errors.New("unknown forecast model")
	// ErrTooShort is returned when a model cannot fit the given series
	ErrTooShort = errors.New("series too short to fit")
)

// Fit 한 단계 앞 예측 결과
// Sigma: 한 단계 앞 예측 오차 표준편차 추정치
type Fit struct {
	Next  float64
	Sigma float64
}

// Model 단변량 시계열 예측 모델
// 구현체는 상태를 갖지 않으며 같은 입력에 같은 결과를 반환
type Model interface {
	Name() string
	Fit(values []float64) (Fit, error)
}

// NewModel returns the model registered under name
func NewModel(name string) (Model, error) {
	switch name {
	case ModelHolt, "":
		return NewHoltModel(DefaultHoltAlpha, DefaultHoltBeta), nil
	case ModelTrend:
		return NewTrendModel(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
}
