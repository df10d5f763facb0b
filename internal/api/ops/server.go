package opsapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	appOps "github.com/codevote/codevote/internal/application/ops"
)

// Server exposes operational state over HTTP, for probes and debugging.
type Server struct {
	opsSvc *appOps.Service
}

func NewServer(opsSvc *appOps.Service) *Server {
	return &Server{opsSvc: opsSvc}
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/health/{chatId}", s.health)
		r.Get("/logs", s.logs)
	})

	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	chatID, err := strconv.ParseInt(chi.URLParam(r, "chatId"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "chatId must be an integer")
		return
	}
	report, err := s.opsSvc.Health(r.Context(), chatID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) logs(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "INVALID_PARAM", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	var entries any
	var err error
	if limit == 0 {
		entries, err = s.opsSvc.AllLogs(r.Context(), 0)
	} else {
		entries, err = s.opsSvc.RecentLogs(r.Context(), limit)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"logs": entries})
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}
