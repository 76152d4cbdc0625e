package forecast

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/wonny/gridiron/internal/contracts"
)

// 기본값
const (
	DefaultMinHistory = 3
	DefaultConfidence = 0.80
)

// Forecaster 선수별 다음 주 판타지 포인트 예측기
type Forecaster struct {
	model      Model
	minHistory int
	confidence float64
	z          float64
	log        zerolog.Logger
}

// NewForecaster 새 예측기 생성
// minHistory 미만 시계열은 예측하지 않음 (폴백 조건)
func NewForecaster(model Model, minHistory int, confidence float64, log zerolog.Logger) (*Forecaster, error) {
	if model == nil {
		return nil, fmt.Errorf("forecast model is required")
	}
	if minHistory < 2 {
		return nil, fmt.Errorf("min history must be >= 2, got %d", minHistory)
	}
	if confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("confidence must be in (0,1), got %v", confidence)
	}

	return &Forecaster{
		model:      model,
		minHistory: minHistory,
		confidence: confidence,
		z:          distuv.UnitNormal.Quantile(0.5 + confidence/2),
		log:        log.With().Str("component", "forecast.forecaster").Str("model", model.Name()).Logger(),
	}, nil
}

// MinHistory returns the minimum series length required to forecast
func (f *Forecaster) MinHistory() int {
	return f.minHistory
}

// Confidence returns the two-sided interval level
func (f *Forecaster) Confidence() float64 {
	return f.confidence
}

// Forecast extrapolates one week beyond the series.
// ok=false means no forecast: too little history, gaps in the weeks, or a
// model that cannot fit. The result satisfies Low <= Mean <= High.
func (f *Forecaster) Forecast(series contracts.Series) (contracts.Forecast, bool) {
	if series.Len() < f.minHistory || !series.Contiguous() {
		return contracts.Forecast{}, false
	}

	fit, err := f.model.Fit(series.Values())
	if err != nil {
		f.log.Debug().Err(err).Str("player_id", string(series.PlayerID)).Msg("model fit failed")
		return contracts.Forecast{}, false
	}
	if math.IsNaN(fit.Next) || math.IsInf(fit.Next, 0) {
		return contracts.Forecast{}, false
	}

	sigma := fit.Sigma
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		sigma = 0
	}
	half := f.z * sigma

	fc := contracts.Forecast{
		Mean: contracts.RoundProjection(fit.Next),
		Low:  contracts.RoundProjection(fit.Next - half),
		High: contracts.RoundProjection(fit.Next + half),
	}
	if !fc.Valid() {
		return contracts.Forecast{}, false
	}
	return fc, true
}

// ForecastAll forecasts every series in order and drops players without a forecast
func (f *Forecaster) ForecastAll(ctx context.Context, series []contracts.Series) ([]contracts.ForecastRecord, error) {
	records := make([]contracts.ForecastRecord, 0, len(series))
	skipped := 0

	for _, s := range series {
		select {
		case <-ctx.Done():
			f.log.Warn().Msg("context cancelled during forecast")
			return records, ctx.Err()
		default:
		}

		fc, ok := f.Forecast(s)
		if !ok {
			skipped++
			f.log.Debug().
				Str("player_id", string(s.PlayerID)).
				Int("history", s.Len()).
				Msg("insufficient history, skipped")
			continue
		}
		records = append(records, contracts.NewForecastRecord(s.PlayerID, fc))
	}

	f.log.Info().
		Int("players", len(series)).
		Int("forecasts", len(records)).
		Int("skipped", skipped).
		Msg("forecast completed")

	return records, nil
}
