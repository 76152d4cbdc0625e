package forecast

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/gridiron/internal/contracts"
)

func series(id string, startWeek int, values ...float64) contracts.Series {
	s := contracts.Series{PlayerID: contracts.EntityID(id)}
	for i, v := range values {
		s.Points = append(s.Points, contracts.SeriesPoint{
			PlayerID:      s.PlayerID,
			Week:          startWeek + i,
			FantasyPoints: v,
		})
	}
	return s
}

func newForecaster(t *testing.T, name string) *Forecaster {
	t.Helper()
	model, err := NewModel(name)
	require.NoError(t, err)
	f, err := NewForecaster(model, DefaultMinHistory, DefaultConfidence, zerolog.Nop())
	require.NoError(t, err)
	return f
}

func TestNewModel(t *testing.T) {
	for _, name := range []string{"", ModelHolt, ModelTrend} {
		m, err := NewModel(name)
		require.NoError(t, err)
		assert.NotEmpty(t, m.Name())
	}

	_, err := NewModel("prophet")
	assert.True(t, errors.Is(err, ErrUnknownModel))
}

func TestNewForecaster_Invalid(t *testing.T) {
	model := NewTrendModel()

	_, err := NewForecaster(nil, 3, 0.8, zerolog.Nop())
	assert.Error(t, err)
	_, err = NewForecaster(model, 1, 0.8, zerolog.Nop())
	assert.Error(t, err)
	_, err = NewForecaster(model, 3, 1, zerolog.Nop())
	assert.Error(t, err)
	_, err = NewForecaster(model, 3, 0, zerolog.Nop())
	assert.Error(t, err)
}

func TestForecaster_Forecast(t *testing.T) {
	volatile := series("p2", 1, 12.4, 3.1, 25.0, 18.2, 0, 9.9, 30.5, 14.0, 7.7, 21.3, 16.6, 11.2)

	for _, name := range []string{ModelHolt, ModelTrend} {
		t.Run(name, func(t *testing.T) {
			f := newForecaster(t, name)

			t.Run("insufficient history", func(t *testing.T) {
				_, ok := f.Forecast(series("p1", 1, 10, 12))
				assert.False(t, ok)
			})

			t.Run("gap in weeks", func(t *testing.T) {
				s := series("p1", 1, 10, 12, 14)
				s.Points[2].Week = 5
				_, ok := f.Forecast(s)
				assert.False(t, ok)
			})

			t.Run("linear series", func(t *testing.T) {
				fc, ok := f.Forecast(series("p1", 1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12))
				require.True(t, ok)
				assert.InDelta(t, 13.0, fc.Mean, 1e-9)
				assert.InDelta(t, 13.0, fc.Low, 1e-9)
				assert.InDelta(t, 13.0, fc.High, 1e-9)
			})

			t.Run("flat series", func(t *testing.T) {
				fc, ok := f.Forecast(series("p1", 3, 8, 8, 8))
				require.True(t, ok)
				assert.Equal(t, contracts.Forecast{Mean: 8, Low: 8, High: 8}, fc)
			})

			t.Run("volatile series has a band", func(t *testing.T) {
				fc, ok := f.Forecast(volatile)
				require.True(t, ok)
				assert.True(t, fc.Valid())
				assert.Less(t, fc.Low, fc.Mean)
				assert.Greater(t, fc.High, fc.Mean)
			})

			t.Run("pure function", func(t *testing.T) {
				a, _ := f.Forecast(volatile)
				_, _ = f.Forecast(series("p9", 1, 100, 0, 100, 0))
				b, _ := f.Forecast(volatile)
				assert.Equal(t, a, b)
			})
		})
	}
}

func TestForecaster_ForecastAll(t *testing.T) {
	f := newForecaster(t, ModelHolt)

	in := []contracts.Series{
		series("short", 1, 5, 7),
		series("full", 1, 10, 14, 9, 12, 20, 11, 13, 8, 15, 17, 12, 16),
	}

	records, err := f.ForecastAll(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, contracts.EntityID("full"), r.PlayerID)
	assert.LessOrEqual(t, r.ProjLow, r.ProjMean)
	assert.LessOrEqual(t, r.ProjMean, r.ProjHigh)
}

func TestForecaster_ForecastAllCancelled(t *testing.T) {
	f := newForecaster(t, ModelHolt)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.ForecastAll(ctx, []contracts.Series{series("p1", 1, 1, 2, 3)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHoltModel_Fit(t *testing.T) {
	m := NewHoltModel(0, 2)
	assert.Equal(t, DefaultHoltAlpha, m.alpha)
	assert.Equal(t, DefaultHoltBeta, m.beta)

	_, err := m.Fit([]float64{1})
	assert.ErrorIs(t, err, ErrTooShort)

	fit, err := m.Fit([]float64{2, 4})
	require.NoError(t, err)
	assert.Equal(t, 6.0, fit.Next)
	assert.Zero(t, fit.Sigma)
}

func TestTrendModel_Fit(t *testing.T) {
	m := NewTrendModel()

	_, err := m.Fit([]float64{1})
	assert.ErrorIs(t, err, ErrTooShort)

	fit, err := m.Fit([]float64{1, 3, 2, 4})
	require.NoError(t, err)
	// y = 1.3 + 0.8x → x=4
	assert.InDelta(t, 4.5, fit.Next, 1e-9)
	assert.Greater(t, fit.Sigma, 0.0)
}
