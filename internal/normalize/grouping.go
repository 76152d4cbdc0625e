package normalize

import (
	"sort"
	"strings"

	"github.com/wonny/gridiron/internal/contracts"
)

// StatKey 그룹핑 복합 키 (선수, 스탯)
type StatKey struct {
	PlayerID contracts.EntityID
	StatName string
}

// Compare orders keys by player id, then stat name
func (k StatKey) Compare(other StatKey) int {
	if c := contracts.CompareEntityIDs(k.PlayerID, other.PlayerID); c != 0 {
		return c
	}
	return strings.Compare(k.StatName, other.StatName)
}

// Grouping 벤더 하나의 (선수, 스탯) → 값 목록 테이블
// 키별 도착 순서를 보존. 실행마다 새로 생성
type Grouping struct {
	values map[StatKey][]float64
}

// NewGrouping creates an empty grouping
func NewGrouping() *Grouping {
	return &Grouping{values: make(map[StatKey][]float64)}
}

// Add appends a value under (player, stat)
func (g *Grouping) Add(id contracts.EntityID, stat string, value float64) {
	key := StatKey{PlayerID: id, StatName: stat}
	g.values[key] = append(g.values[key], value)
}

// Values returns a copy of the values recorded for key
func (g *Grouping) Values(key StatKey) []float64 {
	if g == nil {
		return nil
	}
	vals := g.values[key]
	if len(vals) == 0 {
		return nil
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	return out
}

// Keys returns every key sorted by (player, stat)
func (g *Grouping) Keys() []StatKey {
	if g == nil {
		return nil
	}
	keys := make([]StatKey, 0, len(g.values))
	for k := range g.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })
	return keys
}

// Entities returns the distinct player ids, sorted
func (g *Grouping) Entities() []contracts.EntityID {
	if g == nil {
		return nil
	}
	seen := make(map[contracts.EntityID]struct{})
	var ids []contracts.EntityID
	for k := range g.values {
		if _, ok := seen[k.PlayerID]; ok {
			continue
		}
		seen[k.PlayerID] = struct{}{}
		ids = append(ids, k.PlayerID)
	}
	sort.Slice(ids, func(i, j int) bool { return contracts.CompareEntityIDs(ids[i], ids[j]) < 0 })
	return ids
}

// Len returns the number of (player, stat) keys
func (g *Grouping) Len() int {
	if g == nil {
		return 0
	}
	return len(g.values)
}

// ValueCount returns the number of values across all keys
func (g *Grouping) ValueCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, v := range g.values {
		n += len(v)
	}
	return n
}
