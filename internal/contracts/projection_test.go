package contracts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactKey_Validate(t *testing.T) {
	tests := []struct {
		name    string
		key     ArtifactKey
		wantErr bool
	}{
		{"valid", ArtifactKey{League: "nfl", Season: 2025, Week: 5}, false},
		{"empty league", ArtifactKey{League: " ", Season: 2025, Week: 5}, true},
		{"path league", ArtifactKey{League: "../etc", Season: 2025, Week: 5}, true},
		{"zero season", ArtifactKey{League: "nfl", Season: 0, Week: 5}, true},
		{"negative week", ArtifactKey{League: "nfl", Season: 2025, Week: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestForecast_Valid(t *testing.T) {
	assert.True(t, Forecast{Mean: 10, Low: 8, High: 12}.Valid())
	assert.True(t, Forecast{Mean: 10, Low: 10, High: 10}.Valid())
	assert.False(t, Forecast{Mean: 10, Low: 11, High: 12}.Valid())
}

func TestForecastRecord_JSON(t *testing.T) {
	rec := NewForecastRecord("p1", Forecast{Mean: 12.5, Low: 9.1, High: 15.9})

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"player_id":"p1","proj_mean":12.5,"proj_low":9.1,"proj_high":15.9}`, string(b))
}

func TestSeries(t *testing.T) {
	s := Series{PlayerID: "p1", Points: []SeriesPoint{
		{PlayerID: "p1", Week: 3, FantasyPoints: 10},
		{PlayerID: "p1", Week: 4, FantasyPoints: 0},
		{PlayerID: "p1", Week: 5, FantasyPoints: 7.5},
	}}

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{10, 0, 7.5}, s.Values())
	assert.True(t, s.Contiguous())

	s.Points[2].Week = 7
	assert.False(t, s.Contiguous())
}

func TestRoundProjection(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{15, 15},
		{1.0 / 3.0, 0.333},
		{2.0 / 3.0, 0.667},
		{-1.23456, -1.235},
		{0.0005, 0.001},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundProjection(tt.in))
	}
}
