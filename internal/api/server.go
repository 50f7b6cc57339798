package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vaheed/infra-ccu-info/internal/config"
	"github.com/vaheed/infra-ccu-info/internal/metrics"
)

// Server holds the state shared by every handler. Nothing in it is
// modified after New returns; the gauge synchronizes its own value.
type Server struct {
	log      *slog.Logger
	cfg      *config.Config
	ccu      *metrics.CCU
	gatherer prometheus.Gatherer
}

func New(l *slog.Logger, cfg *config.Config, ccu *metrics.CCU, g prometheus.Gatherer) *Server {
	return &Server{log: l, cfg: cfg, ccu: ccu, gatherer: g}
}

// Router serves GET /healthchecker and GET /metrics. Unknown paths get 404
// and other methods on those paths get 405 from chi.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.withAccessLog, s.recoverer)
	r.Get("/healthchecker", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "success", Message: s.cfg.Env})
}
