package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wonny/gridiron/internal/artifact"
	"github.com/wonny/gridiron/internal/blend"
	"github.com/wonny/gridiron/internal/contracts"
	"github.com/wonny/gridiron/internal/forecast"
	"github.com/wonny/gridiron/internal/history"
	"github.com/wonny/gridiron/internal/projection"
	"github.com/wonny/gridiron/internal/scoring"
	"github.com/wonny/gridiron/pkg/config"
	"github.com/wonny/gridiron/pkg/database"
	"github.com/wonny/gridiron/pkg/logger"
)

// runtime 커맨드 실행 단위 의존성
type runtime struct {
	cfg     *config.Config
	log     *logger.Logger
	store   *artifact.Store
	runID   string
	closers []func()
}

func newRuntime(opts *globalOptions) (*runtime, error) {
	cfg, err := config.LoadFrom(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}

	runID := uuid.NewString()
	log := logger.New(cfg).WithField("run_id", runID)

	return &runtime{
		cfg:   cfg,
		log:   log,
		store: artifact.NewStore(cfg.DataDir),
		runID: runID,
	}, nil
}

// Close releases resources opened by the runtime
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
}

// historyFetcher builds the configured weekly history source
func (rt *runtime) historyFetcher(ctx context.Context) (history.Fetcher, error) {
	zlog := rt.log.Zerolog()

	switch rt.cfg.History.Source {
	case config.HistorySourcePostgres:
		db, err := database.New(ctx, rt.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect history database: %w", err)
		}
		rt.closers = append(rt.closers, db.Close)
		return history.NewPostgresFetcher(db.Pool, zlog), nil
	default:
		return history.NewFileFetcher(rt.store, zlog), nil
	}
}

// assembler wires both pipelines
func (rt *runtime) assembler(ctx context.Context, withForecast bool) (*projection.Assembler, error) {
	zlog := rt.log.Zerolog()

	deps := projection.Deps{
		Store:        rt.store,
		Vendors:      rt.cfg.Vendors,
		Blender:      blend.NewBlender(zlog),
		HistoryWeeks: rt.cfg.History.Weeks,
	}

	if withForecast {
		table, err := scoring.LoadOrDefault(rt.cfg.ScoringConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load scoring table: %w", err)
		}
		hash, err := scoring.Hash(table)
		if err != nil {
			return nil, fmt.Errorf("hash scoring table: %w", err)
		}
		rt.log.WithFields(map[string]interface{}{
			"table":      table.Version,
			"table_hash": hash,
		}).Debug("Scoring table loaded")

		model, err := forecast.NewModel(rt.cfg.Forecast.Model)
		if err != nil {
			return nil, err
		}
		fc, err := forecast.NewForecaster(model, rt.cfg.Forecast.MinHistory, rt.cfg.Forecast.Confidence, zlog)
		if err != nil {
			return nil, err
		}
		fetcher, err := rt.historyFetcher(ctx)
		if err != nil {
			return nil, err
		}

		deps.Reducer = scoring.NewReducer(table, zlog)
		deps.Forecaster = fc
		deps.History = fetcher
	}

	return projection.NewAssembler(deps, zlog), nil
}

// artifactKey validates command-line key flags
func artifactKey(league string, season, week int) (contracts.ArtifactKey, error) {
	if season <= 0 {
		return contracts.ArtifactKey{}, fmt.Errorf("year/season must be a positive integer, got %d", season)
	}
	if week <= 0 {
		return contracts.ArtifactKey{}, fmt.Errorf("week must be a positive integer, got %d", week)
	}
	key := contracts.ArtifactKey{League: league, Season: season, Week: week}
	if err := key.Validate(); err != nil {
		return contracts.ArtifactKey{}, err
	}
	return key, nil
}
