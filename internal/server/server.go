// Package server exposes the synthesis pipeline over HTTP: tones are
// generated per request and optionally persisted for later replay.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/easydtmf/easydtmf/internal/config"
	"github.com/easydtmf/easydtmf/internal/dtmf"
	"github.com/easydtmf/easydtmf/internal/history"
	"github.com/easydtmf/easydtmf/internal/metrics"
)

type createToneRequest struct {
	Digits      string  `json:"digits"`
	DurationSec float64 `json:"durationSec"`
}

type storedToneResponse struct {
	ID       string `json:"id"`
	ByteSize int    `json:"byteSize"`
}

type toneSummary struct {
	ID          string    `json:"id"`
	Digits      string    `json:"digits"`
	DurationSec float64   `json:"durationSec"`
	ByteSize    int64     `json:"byteSize"`
	CreatedAt   time.Time `json:"createdAt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server handles tone synthesis requests.
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	history *history.Store
}

// New creates a Server. history may be nil, in which case store=1
// requests are rejected.
func New(cfg *config.Config, logger *zap.Logger, hist *history.Store) *Server {
	return &Server{cfg: cfg, logger: logger, history: hist}
}

// Handler returns the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1/tones", func(r chi.Router) {
		r.Post("/", s.handleCreateTone)
		r.Get("/", s.handleListTones)
		r.Get("/{toneId}", s.handleGetTone)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleCreateTone(w http.ResponseWriter, r *http.Request) {
	var req createToneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Digits) > s.cfg.MaxRequestDigits {
		metrics.InvalidInputTotal.WithLabelValues("too_long").Inc()
		writeError(w, http.StatusBadRequest, "digit string exceeds request cap")
		return
	}

	start := time.Now()
	data, err := dtmf.Encode(req.Digits, req.DurationSec)
	if err != nil {
		switch {
		case errors.Is(err, dtmf.ErrInvalidDigits):
			metrics.InvalidInputTotal.WithLabelValues("digits").Inc()
		case errors.Is(err, dtmf.ErrInvalidDuration):
			metrics.InvalidInputTotal.WithLabelValues("duration").Inc()
		}
		metrics.RequestsTotal.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	metrics.SynthesisDuration.Observe(float64(time.Since(start).Milliseconds()))
	metrics.TonesGeneratedTotal.Add(float64(len(req.Digits)))

	if r.URL.Query().Get("store") == "1" {
		s.storeTone(w, req, data)
		return
	}

	metrics.RequestsTotal.WithLabelValues("ok").Inc()
	w.Header().Set("Content-Type", "audio/wav")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) storeTone(w http.ResponseWriter, req createToneRequest, data []byte) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, "tone storage disabled")
		return
	}

	id := uuid.New().String()
	path := filepath.Join(s.cfg.OutputDir, id+".wav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("store tone file failed", zap.String("path", path), zap.Error(err))
		metrics.RequestsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "store tone failed")
		return
	}

	rec := history.Record{
		ID:          id,
		Digits:      req.Digits,
		DurationSec: req.DurationSec,
		ByteSize:    int64(len(data)),
	}
	if err := s.history.Insert(rec); err != nil {
		s.logger.Error("record tone failed", zap.String("id", id), zap.Error(err))
		metrics.RequestsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "record tone failed")
		return
	}

	metrics.RequestsTotal.WithLabelValues("ok").Inc()
	metrics.FilesStoredTotal.Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(storedToneResponse{ID: id, ByteSize: len(data)})
}

func (s *Server) handleListTones(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, "tone storage disabled")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	recs, err := s.history.List(limit)
	if err != nil {
		s.logger.Error("list tones failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list tones failed")
		return
	}

	out := make([]toneSummary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toneSummary{
			ID:          rec.ID,
			Digits:      rec.Digits,
			DurationSec: rec.DurationSec,
			ByteSize:    rec.ByteSize,
			CreatedAt:   rec.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(out)
}

func (s *Server) handleGetTone(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, "tone storage disabled")
		return
	}

	id := chi.URLParam(r, "toneId")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid tone id")
		return
	}

	if _, err := s.history.Get(id); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tone not found")
			return
		}
		s.logger.Error("lookup tone failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "lookup tone failed")
		return
	}

	data, err := os.ReadFile(filepath.Join(s.cfg.OutputDir, id+".wav"))
	if err != nil {
		s.logger.Error("read tone file failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "read tone failed")
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
