package vendorfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// strictRow 벤더 파일 스키마 검증용 행
// 키 존재 여부만 확인 (null 값도 존재로 간주), value는 JSON 숫자여야 함
type strictRow struct {
	PlayerID   json.RawMessage `json:"player_id" validate:"required"`
	TeamID     json.RawMessage `json:"team_id" validate:"required"`
	GameID     json.RawMessage `json:"game_id" validate:"required"`
	Week       json.RawMessage `json:"week" validate:"required"`
	Opponent   json.RawMessage `json:"opponent" validate:"required"`
	StatName   json.RawMessage `json:"stat_name" validate:"required"`
	Value      json.RawMessage `json:"value" validate:"required,jsonnumber"`
	Source     json.RawMessage `json:"source" validate:"required"`
	IngestedAt json.RawMessage `json:"ingested_at" validate:"required"`
}

// RowError 검증 실패 행
type RowError struct {
	Index   int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Index, e.Message)
}

// Validator checks vendor files against the flat observation schema
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a schema validator
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("jsonnumber", isJSONNumber)
	return &Validator{validate: v}
}

// ValidateFile reads path and validates every row.
// The returned error is non-nil only when the file itself is unusable.
func (v *Validator) ValidateFile(path string) ([]RowError, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	return v.Validate(data)
}

// Validate checks content and returns the failing rows and the row count
func (v *Validator) Validate(data []byte) ([]RowError, int, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var failures []RowError
	for i, elem := range elems {
		if msg := v.validateRow(elem); msg != "" {
			failures = append(failures, RowError{Index: i, Message: msg})
		}
	}
	return failures, len(elems), nil
}

func (v *Validator) validateRow(elem json.RawMessage) string {
	trimmed := bytes.TrimSpace(elem)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "row must be an object"
	}

	var row strictRow
	if err := json.Unmarshal(trimmed, &row); err != nil {
		return err.Error()
	}

	err := v.validate.Struct(row)
	if err == nil {
		return ""
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}

	// 누락 필드를 타입 오류보다 먼저 보고
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return fmt.Sprintf("Missing %s", fe.Field())
		}
	}
	return fmt.Sprintf("%s must be number", verrs[0].Field())
}

// isJSONNumber accepts a raw JSON number literal
func isJSONNumber(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(json.RawMessage)
	if !ok {
		return false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return false
	}
	var f float64
	return json.Unmarshal(raw, &f) == nil
}
