package scoring

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError 검증 실패 (실행 중단)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required constraints
func Validate(t *Table) error {
	if strings.TrimSpace(t.Version) == "" {
		return ValidationError{"version", "required"}
	}
	if len(t.Weights) == 0 {
		return ValidationError{"weights", "at least one stat weight required"}
	}

	for name, w := range t.Weights {
		if strings.TrimSpace(name) == "" {
			return ValidationError{"weights", "stat name must not be empty"}
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return ValidationError{"weights." + name, "must be finite"}
		}
	}

	return nil
}
