package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/wonny/gridiron/internal/contracts"
)

// PostgresFetcher stats.weekly_player_stats 테이블에서 히스토리 로드
// ⭐ SSOT: 주간 스탯 조회 쿼리는 여기서만
type PostgresFetcher struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewPostgresFetcher creates a postgres-backed history fetcher
func NewPostgresFetcher(pool *pgxpool.Pool, log zerolog.Logger) *PostgresFetcher {
	return &PostgresFetcher{
		pool: pool,
		log:  log.With().Str("component", "history.postgres").Logger(),
	}
}

// Schema DDL for the weekly stats table
const Schema = `
	CREATE SCHEMA IF NOT EXISTS stats;
	CREATE TABLE IF NOT EXISTS stats.weekly_player_stats (
		league     TEXT             NOT NULL,
		season     INTEGER          NOT NULL,
		week       INTEGER          NOT NULL,
		player_id  TEXT             NOT NULL,
		stat_name  TEXT             NOT NULL,
		value      DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (league, season, week, player_id, stat_name)
	);
`

// EnsureSchema creates the weekly stats table when absent
func (f *PostgresFetcher) EnsureSchema(ctx context.Context) error {
	if _, err := f.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure weekly stats schema: %w", err)
	}
	return nil
}

// FetchWeekly loads every stat for the given weeks and folds them into one
// row per (player, week)
func (f *PostgresFetcher) FetchWeekly(ctx context.Context, league string, season int, weeks []int) ([]contracts.WeeklyStatRow, error) {
	if len(weeks) == 0 {
		return []contracts.WeeklyStatRow{}, nil
	}

	query := `
		SELECT player_id, week, stat_name, value
		FROM stats.weekly_player_stats
		WHERE league = $1 AND season = $2 AND week = ANY($3)
		ORDER BY week ASC, player_id ASC, stat_name ASC
	`

	rows, err := f.pool.Query(ctx, query, league, season, weeks)
	if err != nil {
		return nil, fmt.Errorf("query weekly stats: %w", err)
	}
	defer rows.Close()

	type rowKey struct {
		player string
		week   int
	}
	index := make(map[rowKey]int)
	var out []contracts.WeeklyStatRow

	for rows.Next() {
		var (
			playerID string
			week     int
			statName string
			value    float64
		)
		if err := rows.Scan(&playerID, &week, &statName, &value); err != nil {
			return nil, fmt.Errorf("scan weekly stats: %w", err)
		}

		k := rowKey{player: playerID, week: week}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, contracts.WeeklyStatRow{
				PlayerID: contracts.EntityID(playerID),
				Week:     week,
				Stats:    make(map[string]float64),
			})
		}
		out[i].Stats[statName] += value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weekly stats: %w", err)
	}

	f.log.Debug().
		Str("league", league).
		Int("season", season).
		Int("weeks", len(weeks)).
		Int("rows", len(out)).
		Msg("weekly history loaded")

	return out, nil
}

// Upsert stores one weekly row; used by seeding and tests
func (f *PostgresFetcher) Upsert(ctx context.Context, league string, season int, row contracts.WeeklyStatRow) error {
	query := `
		INSERT INTO stats.weekly_player_stats (league, season, week, player_id, stat_name, value)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (league, season, week, player_id, stat_name)
		DO UPDATE SET value = EXCLUDED.value
	`
	for name, value := range row.Stats {
		if _, err := f.pool.Exec(ctx, query, league, season, row.Week, string(row.PlayerID), name, value); err != nil {
			return fmt.Errorf("upsert weekly stat %s/%s: %w", row.PlayerID, name, err)
		}
	}
	return nil
}
