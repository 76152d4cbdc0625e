package blend

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/wonny/gridiron/internal/contracts"
	"github.com/wonny/gridiron/internal/normalize"
)

// SimpleBlend 산술평균. 값이 없으면 ok=false (결과 없음)
func SimpleBlend(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return stat.Mean(values, nil), true
}

// Blender 벤더별 그룹핑을 (선수, 스탯) 단위로 병합
type Blender struct {
	log zerolog.Logger
}

// NewBlender 새 블렌더 생성
func NewBlender(log zerolog.Logger) *Blender {
	return &Blender{
		log: log.With().Str("component", "blend.blender").Logger(),
	}
}

// Blend merges every vendor grouping into one projection per (player, stat).
// Values are concatenated in vendor order and averaged; sources_used counts
// raw values. Output is sorted by player id, then stat name, and is never nil.
func (b *Blender) Blend(groupings ...*normalize.Grouping) []contracts.BlendedProjection {
	merged := normalize.NewGrouping()
	for _, g := range groupings {
		for _, key := range g.Keys() {
			for _, v := range g.Values(key) {
				merged.Add(key.PlayerID, key.StatName, v)
			}
		}
	}

	keys := merged.Keys()
	out := make([]contracts.BlendedProjection, 0, len(keys))
	for _, key := range keys {
		values := merged.Values(key)
		mean, ok := SimpleBlend(values)
		if !ok {
			continue
		}
		out = append(out, contracts.BlendedProjection{
			PlayerID:    key.PlayerID,
			StatName:    key.StatName,
			Projection:  contracts.RoundProjection(mean),
			Method:      contracts.BlendMethodAverage,
			SourcesUsed: len(values),
		})
	}

	b.log.Debug().
		Int("vendors", len(groupings)).
		Int("players", len(merged.Entities())).
		Int("records", len(out)).
		Msg("blend completed")

	return out
}
