package handlers

import (
	"net/http"
	"os"

	"github.com/wonny/gridiron/internal/artifact"
)

// HealthResponse /health 응답
type HealthResponse struct {
	Status    string   `json:"status"`
	Service   string   `json:"service"`
	DataDir   string   `json:"data_dir"`
	Artifacts []string `json:"artifacts"`
	Error     string   `json:"error,omitempty"`
}

// Health reports whether the artifact root is readable
// GET /health
func (h *ProjectionHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Service:   "gridiron-api",
		DataDir:   h.store.Root(),
		Artifacts: []string{artifact.KindBaseline, artifact.KindForecast},
	}

	// 데이터 루트가 없어도 서버는 뜨지만 degraded 로 보고
	info, err := os.Stat(h.store.Root())
	switch {
	case err != nil:
		resp.Status = "degraded"
		resp.Error = err.Error()
	case !info.IsDir():
		resp.Status = "degraded"
		resp.Error = "data dir is not a directory"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, resp)
}
