package artifact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wonny/gridiron/internal/contracts"
)

// Artifact kinds
const (
	KindBaseline = "baseline"
	KindForecast = "forecast"
)

// ErrNotFound is returned by Read when the artifact has not been written
var ErrNotFound = errors.New("artifact not found")

// Store DATA_DIR 아래 파일 레이아웃
// ⭐ SSOT: 입력/출력 경로는 여기서만 조립
//
//	stats/<league>/<year>/week=<w>/<vendor>.json
//	projections/<league>/<year>/week=<w>/{baseline,forecast}.json
//	weekly/<league>/<season>/week=<w>.json
type Store struct {
	root string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the data directory
func (s *Store) Root() string {
	return s.root
}

func weekDir(week int) string {
	return "week=" + strconv.Itoa(week)
}

// VendorPath returns the raw vendor file for key
func (s *Store) VendorPath(key contracts.ArtifactKey, vendor string) string {
	return filepath.Join(s.root, "stats", key.League, strconv.Itoa(key.Season), weekDir(key.Week), vendor+".json")
}

// ProjectionPath returns the output path for an artifact kind
func (s *Store) ProjectionPath(key contracts.ArtifactKey, kind string) string {
	return filepath.Join(s.root, "projections", key.League, strconv.Itoa(key.Season), weekDir(key.Week), kind+".json")
}

// BaselinePath returns the blended baseline artifact path
func (s *Store) BaselinePath(key contracts.ArtifactKey) string {
	return s.ProjectionPath(key, KindBaseline)
}

// ForecastPath returns the forecast artifact path
func (s *Store) ForecastPath(key contracts.ArtifactKey) string {
	return s.ProjectionPath(key, KindForecast)
}

// WeeklyPath returns the weekly history rows for one week
func (s *Store) WeeklyPath(league string, season, week int) string {
	return filepath.Join(s.root, "weekly", league, strconv.Itoa(season), weekDir(week)+".json")
}

// WriteJSON writes v pretty-printed (2-space indent, trailing newline),
// creating parent directories and replacing any previous file.
func (s *Store) WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Read returns the raw bytes of a written artifact
func (s *Store) Read(key contracts.ArtifactKey, kind string) ([]byte, error) {
	if kind != KindBaseline && kind != KindForecast {
		return nil, fmt.Errorf("unknown artifact kind: %q", kind)
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}

	path := s.ProjectionPath(key, kind)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
