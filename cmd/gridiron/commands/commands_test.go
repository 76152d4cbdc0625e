package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/gridiron/internal/contracts"
)

// setupEnv points every command at a temp data dir with file-backed history
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	t.Setenv("ENV", "development")
	t.Setenv("HISTORY_SOURCE", "file")
	t.Setenv("HISTORY_WEEKS", "12")
	t.Setenv("VENDORS", "espn,freeapi1")
	t.Setenv("DEFAULT_LEAGUE", "nfl")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SCORING_CONFIG", "")
	t.Setenv("FORECAST_MODEL", "holt")
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeJSON(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBaselineCommand(t *testing.T) {
	dir := setupEnv(t)
	weekDir := filepath.Join(dir, "stats", "nfl", "2025", "week=5")
	writeJSON(t, filepath.Join(weekDir, "espn.json"), `[{"player_id":"p1","stat_name":"yards","value":10}]`)
	writeJSON(t, filepath.Join(weekDir, "freeapi1.json"), `[{"player_id":"p1","stat_name":"yards","value":20}]`)

	out, err := execute(t, "baseline", "--year", "2025", "--week", "5")
	require.NoError(t, err)

	path := filepath.Join(dir, "projections", "nfl", "2025", "week=5", "baseline.json")
	assert.Contains(t, out, "Wrote 1 records to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rows []contracts.BlendedProjection
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 15.0, rows[0].Projection)
	assert.Equal(t, 2, rows[0].SourcesUsed)
}

func TestBaselineCommand_NoVendorFiles(t *testing.T) {
	dir := setupEnv(t)

	out, err := execute(t, "baseline", "--year", "2025", "--week", "5", "--league", "nfl")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 0 records to ")

	data, err := os.ReadFile(filepath.Join(dir, "projections", "nfl", "2025", "week=5", "baseline.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestKeyFlagValidation(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing week", []string{"baseline", "--year", "2025"}},
		{"zero week", []string{"baseline", "--year", "2025", "--week", "0"}},
		{"negative year", []string{"baseline", "--year", "-1", "--week", "5"}},
		{"non-numeric week", []string{"baseline", "--year", "2025", "--week", "five"}},
		{"missing season", []string{"forecast", "--week", "5"}},
		{"unexpected arg", []string{"run", "--year", "2025", "--week", "5", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestForecastCommand(t *testing.T) {
	dir := setupEnv(t)
	for w, yds := range map[int]int{1: 100, 2: 110, 3: 120, 4: 130} {
		writeJSON(t, filepath.Join(dir, "weekly", "nfl", "2025", fmt.Sprintf("week=%d.json", w)),
			fmt.Sprintf(`[{"player_id":"p1","week":%d,"stats":{"rush_yds":%d}},{"player_id":"p2","week":%d,"stats":{"rec":1}}]`, w, yds, w))
	}

	out, err := execute(t, "forecast", "--season", "2025", "--week", "5")
	require.NoError(t, err)

	path := filepath.Join(dir, "projections", "nfl", "2025", "week=5", "forecast.json")
	assert.Contains(t, out, "Wrote 2 records to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rows []contracts.ForecastRecord
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.LessOrEqual(t, r.ProjLow, r.ProjMean)
		assert.LessOrEqual(t, r.ProjMean, r.ProjHigh)
	}
}

func TestRunCommand(t *testing.T) {
	dir := setupEnv(t)

	out, err := execute(t, "run", "--year", "2025", "--week", "1")
	require.NoError(t, err)

	weekDir := filepath.Join(dir, "projections", "nfl", "2025", "week=1")
	assert.Contains(t, out, "Wrote 0 records to "+filepath.Join(weekDir, "baseline.json"))
	assert.Contains(t, out, "Wrote 0 records to "+filepath.Join(weekDir, "forecast.json"))
}

func TestRunCommand_InvalidScoringConfig(t *testing.T) {
	dir := setupEnv(t)
	t.Setenv("SCORING_CONFIG", filepath.Join(dir, "missing.yaml"))

	_, err := execute(t, "run", "--year", "2025", "--week", "1")
	assert.Error(t, err)
}

func TestFetchCommand(t *testing.T) {
	dir := setupEnv(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/nfl/2025/weeks/5/player-stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"players":[{"id":998,"name":"Travis Kelce","team":"KC","opponent":"LV","stats":{"rec":7,"rec_yds":81}}]}`))
	}))
	defer srv.Close()
	t.Setenv("VENDOR_FREEAPI1_URL", srv.URL)

	out, err := execute(t, "fetch", "--year", "2025", "--week", "5", "--vendor", "freeapi1")
	require.NoError(t, err)

	path := filepath.Join(dir, "stats", "nfl", "2025", "week=5", "freeapi1.json")
	assert.Contains(t, out, "Wrote 2 records to "+path)

	// 수집 결과는 baseline 입력으로 그대로 사용됨
	out, err = execute(t, "baseline", "--year", "2025", "--week", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 records to ")
}

func TestFetchCommand_UnknownVendor(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "fetch", "--year", "2025", "--week", "5", "--vendor", "yahoo")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		writeJSON(t, path, `[{"player_id":"p","team_id":"t","game_id":"g","week":5,"opponent":"LV",
			"stat_name":"yards","value":1,"unit":"yards","source":"espn","ingested_at":"2025-10-05T00:00:00Z"}]`)

		out, err := execute(t, "validate", path)
		require.NoError(t, err)
		assert.Equal(t, "OK\n", out[len(out)-3:])
	})

	t.Run("row failures", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		writeJSON(t, path, `[{"team_id":"t","game_id":"g","week":5,"opponent":"LV","stat_name":"yards","value":1,"source":"espn","ingested_at":"t"}]`)

		out, err := execute(t, "validate", path)
		assert.Error(t, err)
		assert.Contains(t, out, "Row 0: Missing player_id")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "validate", filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("no argument", func(t *testing.T) {
		_, err := execute(t, "validate")
		assert.Error(t, err)
	})
}
