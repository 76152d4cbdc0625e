package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wonny/gridiron/internal/artifact"
	"github.com/wonny/gridiron/internal/contracts"
	"github.com/wonny/gridiron/pkg/logger"
)

// ProjectionHandler serves written artifacts read-only
// ⭐ SSOT: 프로젝션 API 핸들러는 이 구조체에서만
type ProjectionHandler struct {
	store  *artifact.Store
	logger *logger.Logger
}

// NewProjectionHandler creates a new projection handler
func NewProjectionHandler(store *artifact.Store, log *logger.Logger) *ProjectionHandler {
	return &ProjectionHandler{
		store:  store,
		logger: log,
	}
}

// GetBaseline returns the baseline artifact
// GET /api/projections/{league}/{year}/{week}/baseline
func (h *ProjectionHandler) GetBaseline(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, artifact.KindBaseline)
}

// GetForecast returns the forecast artifact
// GET /api/projections/{league}/{year}/{week}/forecast
func (h *ProjectionHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, artifact.KindForecast)
}

func (h *ProjectionHandler) serve(w http.ResponseWriter, r *http.Request, kind string) {
	key, err := keyFromVars(mux.Vars(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.store.Read(key, kind)
	if errors.Is(err, artifact.ErrNotFound) {
		respondError(w, http.StatusNotFound, kind+" artifact not found for "+key.String())
		return
	}
	if err != nil {
		h.logger.WithFields(map[string]interface{}{
			"key":   key.String(),
			"kind":  kind,
			"error": err.Error(),
		}).Error("Failed to read artifact")
		respondError(w, http.StatusInternalServerError, "failed to read artifact")
		return
	}

	respondRaw(w, http.StatusOK, data)
}

func keyFromVars(vars map[string]string) (contracts.ArtifactKey, error) {
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		return contracts.ArtifactKey{}, errors.New("year must be a number")
	}
	week, err := strconv.Atoi(vars["week"])
	if err != nil {
		return contracts.ArtifactKey{}, errors.New("week must be a number")
	}

	key := contracts.ArtifactKey{League: vars["league"], Season: year, Week: week}
	if err := key.Validate(); err != nil {
		return contracts.ArtifactKey{}, err
	}
	return key, nil
}
