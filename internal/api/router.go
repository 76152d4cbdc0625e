package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wonny/gridiron/internal/api/handlers"
	"github.com/wonny/gridiron/pkg/logger"
)

// NewRouter creates and configures the HTTP router
// ⭐ SSOT: 라우팅 설정은 이 함수에서만
func NewRouter(projectionHandler *handlers.ProjectionHandler, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", projectionHandler.Health).Methods(http.MethodGet)

	// Projection artifacts (read-only)
	p := r.PathPrefix("/api/projections/{league}/{year}/{week}").Subrouter()
	p.HandleFunc("/baseline", projectionHandler.GetBaseline).Methods(http.MethodGet)
	p.HandleFunc("/forecast", projectionHandler.GetForecast).Methods(http.MethodGet)

	r.NotFoundHandler = jsonError(http.StatusNotFound, "route not found")
	r.MethodNotAllowedHandler = jsonError(http.StatusMethodNotAllowed, "method not allowed")

	r.Use(recoveryMiddleware(log))
	r.Use(artifactHeaders)
	r.Use(loggingMiddleware(log))

	return r
}

func jsonError(status int, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": message})
	})
}

// artifactHeaders 아티팩트는 매 실행마다 덮어쓰므로 캐시 금지
func artifactHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logs
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// loggingMiddleware logs each request with its artifact key and status.
// 5xx 는 Error, 4xx 는 Warn, 나머지는 Debug
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			fields := map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"bytes":    rec.bytes,
				"duration": time.Since(start),
			}
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					fields["route"] = tmpl
				}
			}
			for _, k := range []string{"league", "year", "week"} {
				if v, ok := mux.Vars(r)[k]; ok {
					fields[k] = v
				}
			}

			entry := log.WithFields(fields)
			switch {
			case rec.status >= http.StatusInternalServerError:
				entry.Error("HTTP request failed")
			case rec.status >= http.StatusBadRequest:
				entry.Warn("HTTP request rejected")
			default:
				entry.Debug("HTTP request")
			}
		})
	}
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					jsonError(http.StatusInternalServerError, "internal server error").ServeHTTP(w, r)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
