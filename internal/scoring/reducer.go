package scoring

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/wonny/gridiron/internal/contracts"
)

// Reducer 주간 원시 스탯 → 선수별 판타지 포인트 시계열
type Reducer struct {
	table *Table
	log   zerolog.Logger
}

// NewReducer 새 리듀서 생성
func NewReducer(table *Table, log zerolog.Logger) *Reducer {
	if table == nil {
		table = DefaultTable()
	}
	return &Reducer{
		table: table,
		log:   log.With().Str("component", "scoring.reducer").Str("table", table.Version).Logger(),
	}
}

// Table returns the scoring table in use
func (r *Reducer) Table() *Table {
	return r.table
}

// Points scores a single row of stats
func (r *Reducer) Points(stats map[string]float64) float64 {
	return r.table.Points(stats)
}

// Reduce scores weekly rows into one series per player, sorted by player id.
// Rows for the same (player, week) are summed. Each series runs from the
// player's first to last observed week with missing weeks in between scored
// as zero. Players with no rows do not appear. Rows with an empty player id
// or a non-positive week are ignored.
func (r *Reducer) Reduce(rows []contracts.WeeklyStatRow) []contracts.Series {
	return r.ReduceThrough(rows, 0)
}

// ReduceThrough is Reduce with every series extended through week through:
// trailing weeks after a player's last row score zero, the same as interior
// gaps, so the last point is always the week right before the forecast
// target. Rows after through are ignored. through <= 0 means no bound.
func (r *Reducer) ReduceThrough(rows []contracts.WeeklyStatRow, through int) []contracts.Series {
	byPlayer := make(map[contracts.EntityID]map[int]float64)
	for _, row := range rows {
		if row.PlayerID == "" || row.Week <= 0 {
			continue
		}
		if through > 0 && row.Week > through {
			continue
		}
		weeks, ok := byPlayer[row.PlayerID]
		if !ok {
			weeks = make(map[int]float64)
			byPlayer[row.PlayerID] = weeks
		}
		weeks[row.Week] += r.table.Points(row.Stats)
	}

	ids := make([]contracts.EntityID, 0, len(byPlayer))
	for id := range byPlayer {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return contracts.CompareEntityIDs(ids[i], ids[j]) < 0 })

	out := make([]contracts.Series, 0, len(ids))
	for _, id := range ids {
		out = append(out, buildSeries(id, byPlayer[id], through))
	}

	r.log.Debug().
		Int("rows", len(rows)).
		Int("players", len(out)).
		Msg("weekly points reduced")

	return out
}

func buildSeries(id contracts.EntityID, weeks map[int]float64, through int) contracts.Series {
	first, last := 0, 0
	for w := range weeks {
		if first == 0 || w < first {
			first = w
		}
		if w > last {
			last = w
		}
	}
	if through > last {
		last = through
	}

	points := make([]contracts.SeriesPoint, 0, last-first+1)
	for w := first; w <= last; w++ {
		points = append(points, contracts.SeriesPoint{
			PlayerID:      id,
			Week:          w,
			FantasyPoints: weeks[w], // 누락 주차는 0
		})
	}
	return contracts.Series{PlayerID: id, Points: points}
}
