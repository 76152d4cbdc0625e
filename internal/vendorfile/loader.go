package vendorfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/wonny/gridiron/internal/contracts"
)

// Sentinel errors for degraded vendor inputs.
// 호출자는 경고 로그 후 해당 벤더를 빈 입력으로 취급
var (
	ErrMissing   = errors.New("vendor file missing")
	ErrMalformed = errors.New("vendor file malformed")
)

// Load reads a vendor file as a list of loosely typed rows.
// An absent file wraps ErrMissing; unparseable content or a non-array
// top level wraps ErrMalformed. Array elements that are not objects are
// dropped silently.
func Load(path string) ([]contracts.RawObservation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	return Parse(data, path)
}

// Parse decodes vendor file content; name is used in error messages only
func Parse(data []byte, name string) ([]contracts.RawObservation, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: %s: empty content", ErrMalformed, name)
	}
	if trimmed[0] != '[' {
		if !json.Valid(trimmed) {
			return nil, fmt.Errorf("%w: %s: invalid JSON", ErrMalformed, name)
		}
		return nil, fmt.Errorf("%w: %s: not an array", ErrMalformed, name)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}

	rows := make([]contracts.RawObservation, 0, len(elems))
	for _, elem := range elems {
		var r contracts.RawObservation
		if err := json.Unmarshal(elem, &r); err != nil {
			continue
		}
		rows = append(rows, r)
	}
	return rows, nil
}
