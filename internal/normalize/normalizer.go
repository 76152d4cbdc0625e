package normalize

import (
	"github.com/wonny/gridiron/internal/contracts"
)

// Normalize groups raw vendor rows by (player, stat).
// Rows without a player id, a stat name or a numeric value are dropped
// without error; surviving values keep their arrival order.
func Normalize(records []contracts.RawObservation) *Grouping {
	g := NewGrouping()
	for _, r := range records {
		id, stat, value, ok := r.Numeric()
		if !ok {
			continue
		}
		g.Add(id, stat, value)
	}
	return g
}

// NormalizeObservations groups already-typed observations
func NormalizeObservations(obs []contracts.Observation) *Grouping {
	records := make([]contracts.RawObservation, len(obs))
	for i, o := range obs {
		records[i] = o.Raw()
	}
	return Normalize(records)
}
