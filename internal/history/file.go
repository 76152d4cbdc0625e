package history

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/wonny/gridiron/internal/artifact"
	"github.com/wonny/gridiron/internal/contracts"
)

// FileFetcher DATA_DIR/weekly 아래 JSON 파일에서 히스토리 로드
type FileFetcher struct {
	store *artifact.Store
	log   zerolog.Logger
}

// NewFileFetcher creates a file-backed history fetcher
func NewFileFetcher(store *artifact.Store, log zerolog.Logger) *FileFetcher {
	return &FileFetcher{
		store: store,
		log:   log.With().Str("component", "history.file").Logger(),
	}
}

// FetchWeekly reads one file per week. A missing or malformed week file is
// logged and contributes no rows. Rows are stamped with the file's week
// when they carry none; rows for weeks outside weeks are dropped.
func (f *FileFetcher) FetchWeekly(ctx context.Context, league string, season int, weeks []int) ([]contracts.WeeklyStatRow, error) {
	var rows []contracts.WeeklyStatRow

	wanted := make(map[int]bool, len(weeks))
	for _, week := range weeks {
		wanted[week] = true
	}

	dropped := 0
	for _, week := range weeks {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		path := f.store.WeeklyPath(league, season, week)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				f.log.Warn().Str("path", path).Int("week", week).Msg("weekly file missing")
			} else {
				f.log.Warn().Err(err).Str("path", path).Int("week", week).Msg("weekly file unreadable")
			}
			continue
		}

		var weekRows []contracts.WeeklyStatRow
		if err := json.Unmarshal(data, &weekRows); err != nil {
			f.log.Warn().Err(err).Str("path", path).Int("week", week).Msg("weekly file malformed")
			continue
		}

		for _, r := range weekRows {
			if r.Week == 0 {
				r.Week = week
			}
			// 요청 구간 밖의 주차는 제외
			if !wanted[r.Week] {
				dropped++
				continue
			}
			rows = append(rows, r)
		}
	}

	f.log.Debug().
		Str("league", league).
		Int("season", season).
		Int("weeks", len(weeks)).
		Int("rows", len(rows)).
		Int("dropped", dropped).
		Msg("weekly history loaded")

	return rows, nil
}
