// Package api exposes the resolution engine over HTTP. Each request is an
// independent batch with its own variable environment, so concurrent
// requests never share state.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/numo-sh/numo/internal/engine"
)

// Server serves the calculate API.
type Server struct {
	engine *engine.Engine
	port   int
	logger *slog.Logger
}

// Config holds configuration for the API server.
type Config struct {
	Engine *engine.Engine
	Port   int
	Logger *slog.Logger
}

// NewServer creates an API server.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		engine: cfg.Engine,
		port:   cfg.Port,
		logger: cfg.Logger,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
	)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/v1/calculate", s.handleCalculate)

	return r
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting API server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// calculateRequest is the POST /api/v1/calculate body.
type calculateRequest struct {
	Expressions []string `json:"expressions"`
}

// calculateResult is one expression's outcome in the response.
type calculateResult struct {
	Input    string `json:"input"`
	OK       bool   `json:"ok"`
	Resolver string `json:"resolver,omitempty"`
	Output   string `json:"output,omitempty"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

type calculateResponse struct {
	Results []calculateResult `json:"results"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Expressions) == 0 {
		http.Error(w, "expressions must not be empty", http.StatusBadRequest)
		return
	}

	results := s.engine.Calculate(r.Context(), req.Expressions)

	resp := calculateResponse{Results: make([]calculateResult, len(results))}
	for i, res := range results {
		out := calculateResult{
			Input:    res.Input,
			OK:       res.OK(),
			Resolver: res.Resolver,
			Output:   res.Output,
		}
		if res.Err != nil {
			out.Error = res.Err.Error()
			out.Kind = engine.FailureKind(res.Err)
		}
		resp.Results[i] = out
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
