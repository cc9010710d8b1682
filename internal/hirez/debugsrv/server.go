// Package debugsrv exposes pool occupancy and driver latency as a small
// read-only HTTP surface, grounded on the teacher's chi router (see
// internal/httpapi/router.go): middleware stack, JSON writer, status
// endpoints. There is no authentication here — this is a local
// diagnostics surface, not a tenant-facing API.
package debugsrv

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/elsa-voss/hirezclient/internal/hirez/driver"
	"github.com/elsa-voss/hirezclient/internal/hirez/session"
)

// PoolStatsProvider is the subset of session.Pool the server needs.
type PoolStatsProvider interface {
	Stats() session.Stats
}

// MetricsProvider is the subset of driver.Metrics the server needs.
type MetricsProvider interface {
	Snapshot() driver.LatencySnapshot
	Completed() int64
}

// Server serves /healthz, /pool, and /metrics for off-line diagnosis of a
// running client.
type Server struct {
	Pool    PoolStatsProvider
	Metrics MetricsProvider
}

// writeJSON mirrors the teacher's httpapi.writeJSON helper.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode debugsrv json response")
	}
}

// Routes builds the chi router for the debug surface.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/pool", func(w http.ResponseWriter, r *http.Request) {
		if s.Pool == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no pool attached"})
			return
		}
		writeJSON(w, http.StatusOK, s.Pool.Stats())
	})

	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		if s.Metrics == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no metrics attached"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"completed": s.Metrics.Completed(),
			"latency":   s.Metrics.Snapshot(),
		})
	})

	return r
}
