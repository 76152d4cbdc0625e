package contracts

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNullRecord = errors.New("observation: null record")

// EntityID 선수 식별자 (불투명 값, JSON 문자열/숫자 모두 허용)
type EntityID string

// UnmarshalJSON accepts a JSON string or number. Anything else is an error.
func (id *EntityID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = EntityID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = EntityID(n.String())
	return nil
}

// CompareEntityIDs orders ids ascending. It is a total order:
// all-digit ids come first in numeric order, then every other id in
// lexicographic order. Equal numbers ("007", "7") tie-break textually.
func CompareEntityIDs(a, b EntityID) int {
	an, bn := numericID(a), numericID(b)
	switch {
	case an && !bn:
		return -1
	case !an && bn:
		return 1
	case an && bn:
		if c := compareDigits(string(a), string(b)); c != 0 {
			return c
		}
	}
	return strings.Compare(string(a), string(b))
}

// numericID reports whether id is a non-empty run of ASCII digits
func numericID(id EntityID) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// compareDigits compares two digit strings by value without overflow
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// Observation 정규화된 벤더 관측치 (평탄 레코드)
// ⭐ SSOT: 벤더 파일 한 행의 스키마
type Observation struct {
	PlayerID   EntityID `json:"player_id"`
	TeamID     string   `json:"team_id"`
	GameID     string   `json:"game_id"`
	Week       int      `json:"week"`
	Opponent   string   `json:"opponent"`
	StatName   string   `json:"stat_name"`
	Value      float64  `json:"value"`
	Unit       string   `json:"unit"`
	Source     string   `json:"source"`
	IngestedAt string   `json:"ingested_at"`
}

// RawObservation 느슨한 타입의 벤더 행
// 필드는 없거나 타입이 틀릴 수 있음. 숫자 변환은 CoerceValue로만 수행
type RawObservation struct {
	PlayerID *EntityID
	StatName *string
	Value    any

	// 컨텍스트 필드 (리듀스에 사용하지 않음)
	TeamID     string
	GameID     string
	Week       string
	Opponent   string
	Unit       string
	Source     string
	IngestedAt string
}

// UnmarshalJSON decodes a single vendor row tolerantly.
// Only a non-object value is an error; wrongly typed fields become absent.
func (r *RawObservation) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errNullRecord
	}

	*r = RawObservation{}

	if raw, ok := fields["player_id"]; ok {
		var id EntityID
		if err := json.Unmarshal(raw, &id); err == nil && id != "" {
			r.PlayerID = &id
		}
	}

	if raw, ok := fields["stat_name"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			r.StatName = &s
		}
	}

	if raw, ok := fields["value"]; ok {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err == nil {
			r.Value = v
		}
	}

	r.TeamID = textField(fields, "team_id")
	r.GameID = textField(fields, "game_id")
	r.Week = textField(fields, "week")
	r.Opponent = textField(fields, "opponent")
	r.Unit = textField(fields, "unit")
	r.Source = textField(fields, "source")
	r.IngestedAt = textField(fields, "ingested_at")

	return nil
}

// textField renders a string or number field as text, anything else as ""
func textField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// CoerceValue converts a loosely typed value to a finite float64.
// JSON numbers and numeric strings are accepted; null, bools, containers,
// blank or non-numeric strings, NaN and Inf are rejected.
func CoerceValue(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Numeric reports the record's entity, metric and coerced value.
// ok is false when any of the three is missing or unusable.
func (r RawObservation) Numeric() (id EntityID, stat string, value float64, ok bool) {
	if r.PlayerID == nil || r.StatName == nil {
		return "", "", 0, false
	}
	value, ok = CoerceValue(r.Value)
	if !ok {
		return "", "", 0, false
	}
	return *r.PlayerID, *r.StatName, value, true
}

// Raw converts a typed observation back to its loose form
func (o Observation) Raw() RawObservation {
	id := o.PlayerID
	stat := o.StatName
	raw := RawObservation{
		Value:      o.Value,
		TeamID:     o.TeamID,
		GameID:     o.GameID,
		Week:       strconv.Itoa(o.Week),
		Opponent:   o.Opponent,
		Unit:       o.Unit,
		Source:     o.Source,
		IngestedAt: o.IngestedAt,
	}
	if id != "" {
		raw.PlayerID = &id
	}
	if stat != "" {
		raw.StatName = &stat
	}
	return raw
}
