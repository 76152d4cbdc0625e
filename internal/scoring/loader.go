package scoring

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a scoring table from a YAML file.
// KnownFields(true): 오타/미사용 필드 즉시 실패
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring table: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML content
func Parse(data []byte) (*Table, error) {
	var t Table
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode scoring table: %w", err)
	}

	if err := Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadOrDefault loads path, or returns the built-in table when path is empty
func LoadOrDefault(path string) (*Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	return Load(path)
}

// Hash generates SHA256 hash of the table (canonical JSON)
// encoding/json은 map 키를 정렬하므로 결정적
func Hash(t *Table) (string, error) {
	jsonBytes, err := json.Marshal(t)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}
