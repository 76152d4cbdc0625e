package projection

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wonny/gridiron/internal/artifact"
	"github.com/wonny/gridiron/internal/blend"
	"github.com/wonny/gridiron/internal/contracts"
	"github.com/wonny/gridiron/internal/forecast"
	"github.com/wonny/gridiron/internal/history"
	"github.com/wonny/gridiron/internal/normalize"
	"github.com/wonny/gridiron/internal/scoring"
	"github.com/wonny/gridiron/internal/vendorfile"
)

// Result 파이프라인 한 번의 출력 요약
type Result struct {
	Kind    string `json:"kind"`
	Path    string `json:"path"`
	Records int    `json:"records"`
}

// Deps 어셈블러 의존성
type Deps struct {
	Store        *artifact.Store
	Vendors      []string
	Blender      *blend.Blender
	History      history.Fetcher
	HistoryWeeks int
	Reducer      *scoring.Reducer
	Forecaster   *forecast.Forecaster
}

// Assembler baseline/forecast 두 파이프라인 실행기
// 두 파이프라인은 서로 독립. 한쪽 실패가 다른 쪽을 막지 않음
type Assembler struct {
	deps Deps
	log  zerolog.Logger
}

// NewAssembler 새 어셈블러 생성
func NewAssembler(deps Deps, log zerolog.Logger) *Assembler {
	return &Assembler{
		deps: deps,
		log:  log.With().Str("component", "projection.assembler").Logger(),
	}
}

// BuildBaseline blends every configured vendor file for key and writes the
// baseline artifact. Missing or malformed vendor files are logged and count
// as empty vendors.
func (a *Assembler) BuildBaseline(ctx context.Context, key contracts.ArtifactKey) (*Result, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if a.deps.Store == nil || a.deps.Blender == nil {
		return nil, fmt.Errorf("baseline pipeline not configured")
	}

	groupings := make([]*normalize.Grouping, 0, len(a.deps.Vendors))
	for _, vendor := range a.deps.Vendors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := a.deps.Store.VendorPath(key, vendor)
		records, err := vendorfile.Load(path)
		if err != nil {
			a.log.Warn().
				Err(err).
				Str("vendor", vendor).
				Str("path", path).
				Bool("missing", errors.Is(err, vendorfile.ErrMissing)).
				Msg("vendor input unavailable, treated as empty")
			groupings = append(groupings, normalize.NewGrouping())
			continue
		}

		g := normalize.Normalize(records)
		a.log.Debug().
			Str("vendor", vendor).
			Int("records", len(records)).
			Int("values", g.ValueCount()).
			Msg("vendor normalized")
		groupings = append(groupings, g)
	}

	rows := a.deps.Blender.Blend(groupings...)

	path := a.deps.Store.BaselinePath(key)
	if err := a.deps.Store.WriteJSON(path, rows); err != nil {
		return nil, fmt.Errorf("write baseline: %w", err)
	}

	a.log.Info().
		Str("key", key.String()).
		Int("vendors", len(a.deps.Vendors)).
		Int("records", len(rows)).
		Str("path", path).
		Msg("baseline written")

	return &Result{Kind: artifact.KindBaseline, Path: path, Records: len(rows)}, nil
}

// BuildForecast scores the trailing history window for key, forecasts every
// player with enough history and writes the forecast artifact
func (a *Assembler) BuildForecast(ctx context.Context, key contracts.ArtifactKey) (*Result, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if a.deps.Store == nil || a.deps.History == nil || a.deps.Reducer == nil || a.deps.Forecaster == nil {
		return nil, fmt.Errorf("forecast pipeline not configured")
	}

	weeks := history.Window(key.Week, a.deps.HistoryWeeks)
	rows, err := a.deps.History.FetchWeekly(ctx, key.League, key.Season, weeks)
	if err != nil {
		return nil, fmt.Errorf("fetch weekly history: %w", err)
	}

	// 시계열은 목표 주 직전 주까지 이어짐 (뒤쪽 결측 주차는 0)
	series := a.deps.Reducer.ReduceThrough(rows, key.Week-1)
	records, err := a.deps.Forecaster.ForecastAll(ctx, series)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	path := a.deps.Store.ForecastPath(key)
	if err := a.deps.Store.WriteJSON(path, records); err != nil {
		return nil, fmt.Errorf("write forecast: %w", err)
	}

	a.log.Info().
		Str("key", key.String()).
		Ints("weeks", weeks).
		Int("players", len(series)).
		Int("records", len(records)).
		Str("path", path).
		Msg("forecast written")

	return &Result{Kind: artifact.KindForecast, Path: path, Records: len(records)}, nil
}

// Run executes both pipelines. Each runs regardless of the other's outcome;
// the returned error joins every pipeline failure.
func (a *Assembler) Run(ctx context.Context, key contracts.ArtifactKey) ([]Result, error) {
	var (
		results []Result
		errs    []error
	)

	if res, err := a.BuildBaseline(ctx, key); err != nil {
		a.log.Error().Err(err).Str("key", key.String()).Msg("baseline pipeline failed")
		errs = append(errs, fmt.Errorf("baseline: %w", err))
	} else {
		results = append(results, *res)
	}

	if res, err := a.BuildForecast(ctx, key); err != nil {
		a.log.Error().Err(err).Str("key", key.String()).Msg("forecast pipeline failed")
		errs = append(errs, fmt.Errorf("forecast: %w", err))
	} else {
		results = append(results, *res)
	}

	return results, errors.Join(errs...)
}
