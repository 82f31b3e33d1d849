// Package http exposes the feasibility engine as a stateless JSON API.
// Requests are validated at runtime against the embedded OpenAPI document,
// so handler code only sees well-formed payloads.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/telluric-labs/matfeas/pkg/domain"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Engine is the surface this adapter needs from the feasibility core.
type Engine interface {
	Evaluate(ctx context.Context, formula string) (*domain.FeasibilityResult, error)
	KnownSystems() []string
}

// Server wires the engine into HTTP handlers.
type Server struct {
	engine Engine
	logger *slog.Logger
}

// Option configures the handler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) { c.logger = logger }
}

// WithMetrics mounts /metrics for the given gatherer.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(c *handlerConfig) { c.gatherer = g }
}

// NewHandler builds the router: POST /evaluate, GET /systems, GET /healthz,
// GET /openapi.yaml and optionally GET /metrics. It returns an error if the
// embedded OpenAPI document fails to load or validate.
func NewHandler(engine Engine, opts ...Option) (http.Handler, error) {
	cfg := &handlerConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}
	server := &Server{engine: engine, logger: cfg.logger}

	validate, err := validationMiddleware()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(validate)

	r.Post("/evaluate", server.Evaluate)
	r.Get("/systems", server.ListSystems)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(openapiSpec)
	})
	if cfg.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}))
	}

	return r, nil
}

// validationMiddleware validates any request whose path appears in the
// embedded OpenAPI document; paths outside the document pass through.
func validationMiddleware() (func(http.Handler) http.Handler, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, params, err := router.FindRoute(r)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: params,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}

type evaluateRequest struct {
	Formula string `json:"formula"`
}

// Evaluate handles POST /evaluate.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	var body evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.engine.Evaluate(r.Context(), body.Formula)
	if err != nil {
		if errors.Is(err, domain.ErrParse) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("evaluation failed", "formula", body.Formula, "err", err)
		writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}

	s.logger.Info("evaluated", "formula", body.Formula, "verdict", string(result.Verdict))
	writeJSON(w, http.StatusOK, result)
}

// ListSystems handles GET /systems.
func (s *Server) ListSystems(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.KnownSystems())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
