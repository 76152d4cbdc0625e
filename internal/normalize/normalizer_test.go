package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/gridiron/internal/contracts"
)

func decodeRows(t *testing.T, input string) []contracts.RawObservation {
	t.Helper()
	var rows []contracts.RawObservation
	require.NoError(t, json.Unmarshal([]byte(input), &rows))
	return rows
}

func TestNormalize(t *testing.T) {
	rows := decodeRows(t, `[
		{"player_id":"p1","stat_name":"yards","value":10},
		{"player_id":"p1","stat_name":"yards","value":"20"},
		{"player_id":"p1","stat_name":"td","value":1},
		{"player_id":"p2","stat_name":"yards","value":5},
		{"player_id":"p2","stat_name":"yards","value":"n/a"},
		{"stat_name":"yards","value":99},
		{"player_id":"p3","value":99},
		{"player_id":"p3","stat_name":"yards"},
		{"player_id":"p3","stat_name":"yards","value":null}
	]`)

	g := Normalize(rows)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 4, g.ValueCount())
	assert.Equal(t, []float64{10, 20}, g.Values(StatKey{PlayerID: "p1", StatName: "yards"}), "arrival order is kept")
	assert.Equal(t, []float64{1}, g.Values(StatKey{PlayerID: "p1", StatName: "td"}))
	assert.Equal(t, []float64{5}, g.Values(StatKey{PlayerID: "p2", StatName: "yards"}))
	assert.Nil(t, g.Values(StatKey{PlayerID: "p3", StatName: "yards"}), "malformed rows never reach the grouping")
	assert.Equal(t, []contracts.EntityID{"p1", "p2"}, g.Entities())
}

func TestNormalize_Empty(t *testing.T) {
	g := Normalize(nil)

	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Keys())
	assert.Empty(t, g.Entities())
}

func TestGrouping_ValuesIsACopy(t *testing.T) {
	g := NewGrouping()
	g.Add("p1", "yards", 10)

	vals := g.Values(StatKey{PlayerID: "p1", StatName: "yards"})
	vals[0] = 999

	assert.Equal(t, []float64{10}, g.Values(StatKey{PlayerID: "p1", StatName: "yards"}))
}

func TestGrouping_KeysNoAliasingAcrossEntities(t *testing.T) {
	g := NewGrouping()
	g.Add("p1", "yards", 1)
	g.Add("p2", "yards", 2)
	g.Add("p1", "yards", 3)

	assert.Equal(t, []float64{1, 3}, g.Values(StatKey{PlayerID: "p1", StatName: "yards"}))
	assert.Equal(t, []float64{2}, g.Values(StatKey{PlayerID: "p2", StatName: "yards"}))
}

func TestGrouping_KeysSorted(t *testing.T) {
	g := NewGrouping()
	g.Add("10", "yards", 1)
	g.Add("9", "td", 1)
	g.Add("9", "rec", 1)

	assert.Equal(t, []StatKey{
		{PlayerID: "9", StatName: "rec"},
		{PlayerID: "9", StatName: "td"},
		{PlayerID: "10", StatName: "yards"},
	}, g.Keys())
}

func TestNormalizeObservations(t *testing.T) {
	g := NormalizeObservations([]contracts.Observation{
		{PlayerID: "espn:1", StatName: "yards", Value: 320},
		{PlayerID: "espn:1", StatName: "touchdowns", Value: 3},
		{PlayerID: "", StatName: "yards", Value: 1},
	})

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []float64{320}, g.Values(StatKey{PlayerID: "espn:1", StatName: "yards"}))
}
