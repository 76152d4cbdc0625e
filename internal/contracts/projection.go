package contracts

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// BlendMethodAverage 벤더 값 산술평균
const BlendMethodAverage = "avg(vendor_values)"

// BlendedProjection 선수×스탯 블렌딩 결과 (baseline 아티팩트 한 행)
type BlendedProjection struct {
	PlayerID    EntityID `json:"player_id"`
	StatName    string   `json:"stat_name"`
	Projection  float64  `json:"projection"`   // 소수점 3자리 반올림
	Method      string   `json:"method"`       // 리듀스 방식 태그
	SourcesUsed int      `json:"sources_used"` // 반영된 원시 값 개수 (벤더 수 아님)
}

// Forecast 한 주 앞 예측치와 신뢰구간
// 불변식: Low <= Mean <= High
type Forecast struct {
	Mean float64
	Low  float64
	High float64
}

// Valid reports whether the ordering invariant holds
func (f Forecast) Valid() bool {
	return f.Low <= f.Mean && f.Mean <= f.High
}

// ForecastRecord forecast 아티팩트 한 행
type ForecastRecord struct {
	PlayerID EntityID `json:"player_id"`
	ProjMean float64  `json:"proj_mean"`
	ProjLow  float64  `json:"proj_low"`
	ProjHigh float64  `json:"proj_high"`
}

// NewForecastRecord builds an artifact row from a forecast
func NewForecastRecord(id EntityID, f Forecast) ForecastRecord {
	return ForecastRecord{
		PlayerID: id,
		ProjMean: f.Mean,
		ProjLow:  f.Low,
		ProjHigh: f.High,
	}
}

// ArtifactKey 아티팩트 주소 (league, season, week)
type ArtifactKey struct {
	League string
	Season int
	Week   int
}

// Validate checks the key is addressable
func (k ArtifactKey) Validate() error {
	if strings.TrimSpace(k.League) == "" {
		return fmt.Errorf("league is required")
	}
	if strings.ContainsAny(k.League, `/\`) || k.League == "." || k.League == ".." {
		return fmt.Errorf("invalid league: %q", k.League)
	}
	if k.Season <= 0 {
		return fmt.Errorf("season must be positive, got %d", k.Season)
	}
	if k.Week <= 0 {
		return fmt.Errorf("week must be positive, got %d", k.Week)
	}
	return nil
}

func (k ArtifactKey) String() string {
	return fmt.Sprintf("%s/%d/week=%d", k.League, k.Season, k.Week)
}

// ProjectionDecimals 아티팩트 수치 소수점 자릿수
const ProjectionDecimals = 3

// RoundProjection rounds v to ProjectionDecimals places (half away from zero).
// Non-finite input is returned unchanged.
func RoundProjection(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(ProjectionDecimals).InexactFloat64()
}
