package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/aretw0/turing/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxBatchSize bounds the number of words accepted by POST /evaluate.
const MaxBatchSize = 1000

// EvaluateRequest is the body of POST /evaluate.
type EvaluateRequest struct {
	Words []string `json:"words"`
}

// WordResult is one decided word.
type WordResult struct {
	Word    string         `json:"word"`
	Verdict domain.Verdict `json:"verdict"`
}

// EvaluateResponse is the body returned by POST /evaluate.
type EvaluateResponse struct {
	Results []WordResult `json:"results"`
}

// MachineResponse is the body returned by GET /machine.
type MachineResponse struct {
	Fingerprint string             `json:"fingerprint"`
	States      []domain.State     `json:"states"`
	Description schema.Description `json:"description"`
}

// Server exposes an Evaluator over HTTP.
type Server struct {
	Evaluator ports.Evaluator
	Gatherer  prometheus.Gatherer
	Logger    *slog.Logger
	Version   string
}

// NewHandler creates the HTTP handler for the evaluator.
// A nil gatherer disables /metrics.
func NewHandler(eval ports.Evaluator, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{Evaluator: eval, Gatherer: gatherer, Logger: logger}
	return s.Routes()
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/machine", s.GetMachine)
	r.Get("/graph", s.GetGraph)
	r.Post("/evaluate", s.PostEvaluate)
	r.Get("/evaluate/{word}", s.GetEvaluate)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	if s.Version != "" {
		resp["version"] = strings.TrimSpace(s.Version)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// GetMachine handles GET /machine.
func (s *Server) GetMachine(w http.ResponseWriter, r *http.Request) {
	table := s.Evaluator.Table()
	s.writeJSON(w, http.StatusOK, MachineResponse{
		Fingerprint: schema.Fingerprint(table),
		States:      table.States(),
		Description: schema.FromTable(table),
	})
}

// GetGraph handles GET /graph, returning a Mermaid diagram.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(s.Evaluator.Table(), nil))
}

// PostEvaluate handles POST /evaluate.
func (s *Server) PostEvaluate(w http.ResponseWriter, r *http.Request) {
	var body EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.Logger.Warn("evaluate: invalid request body", "err", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(body.Words) > MaxBatchSize {
		http.Error(w, fmt.Sprintf("Too many words: %d (limit %d)", len(body.Words), MaxBatchSize), http.StatusRequestEntityTooLarge)
		return
	}

	resp := EvaluateResponse{Results: make([]WordResult, 0, len(body.Words))}
	for _, raw := range body.Words {
		word, err := runner.SanitizeWord(raw)
		if err != nil {
			s.Logger.Warn("evaluate: word rejected", "err", err, "size", len(raw))
			http.Error(w, fmt.Sprintf("Invalid word: %v", err), http.StatusBadRequest)
			return
		}
		if word == "" {
			continue
		}

		verdict, err := s.Evaluator.Evaluate(r.Context(), word)
		if err != nil {
			s.evaluateFailed(w, err)
			return
		}
		resp.Results = append(resp.Results, WordResult{Word: word, Verdict: verdict})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// GetEvaluate handles GET /evaluate/{word}.
func (s *Server) GetEvaluate(w http.ResponseWriter, r *http.Request) {
	word, err := runner.SanitizeWord(chi.URLParam(r, "word"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid word: %v", err), http.StatusBadRequest)
		return
	}

	verdict, err := s.Evaluator.Evaluate(r.Context(), word)
	if err != nil {
		s.evaluateFailed(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, WordResult{Word: word, Verdict: verdict})
}

func (s *Server) evaluateFailed(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusServiceUnavailable
	}
	s.Logger.Error("evaluate failed", "err", err)
	http.Error(w, fmt.Sprintf("Evaluate error: %v", err), status)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}
