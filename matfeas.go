package matfeas

import (
	"context"
	"log/slog"

	"github.com/telluric-labs/matfeas/internal/catalog"
	"github.com/telluric-labs/matfeas/internal/engine"
	"github.com/telluric-labs/matfeas/internal/prototype"
	"github.com/telluric-labs/matfeas/pkg/domain"
	"github.com/telluric-labs/matfeas/pkg/ports"
)

// Version of the module, reported by the CLI and the MCP server.
var Version = "0.3.0"

// Thresholds re-exports the engine's tunable cutoffs for consumers that
// only import the root package.
type Thresholds = engine.Thresholds

// DefaultThresholds returns the standard decision-table cutoffs.
func DefaultThresholds() Thresholds { return engine.DefaultThresholds() }

// Engine is the high-level entry point: a stateless evaluator that grades
// the synthesizability of hypothetical compounds from their formulas. An
// Engine is safe for concurrent use; every evaluation is an independent,
// synchronous computation over shared read-only reference data.
type Engine struct {
	pipeline *engine.Pipeline
	catalog  *catalog.Library
}

type config struct {
	logger      *slog.Logger
	catalogPath string
	subs        ports.SubstitutionModel
	oracle      ports.EnergyPredictor
	hull        ports.HullCalculator
	thresholds  Thresholds
	hooks       domain.Hooks
	floor       float64
}

// Option configures an Engine.
type Option func(*config)

// WithLogger sets a structured logger. Default is a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithEnergyPredictor injects the ML structure-energy collaborator.
// Without one, the formation-energy stage degrades to a failed decision
// and evaluation still completes.
func WithEnergyPredictor(o ports.EnergyPredictor) Option {
	return func(c *config) { c.oracle = o }
}

// WithHullCalculator injects the phase-diagram collaborator.
func WithHullCalculator(h ports.HullCalculator) Option {
	return func(c *config) { c.hull = h }
}

// WithSubstitutionModel injects the elemental substitution likelihood
// collaborator used to refine prototype representatives.
func WithSubstitutionModel(m ports.SubstitutionModel) Option {
	return func(c *config) { c.subs = m }
}

// WithSubstitutionFloor overrides the probability threshold for accepting
// a substitute element (default 0.2).
func WithSubstitutionFloor(p float64) Option {
	return func(c *config) { c.floor = p }
}

// WithCatalogOverlay merges a YAML competing-phase overlay file into the
// builtin library at construction time.
func WithCatalogOverlay(path string) Option {
	return func(c *config) { c.catalogPath = path }
}

// WithThresholds overrides the decision-table cutoffs.
func WithThresholds(t Thresholds) Option {
	return func(c *config) { c.thresholds = t }
}

// WithHooks registers observability hooks fired per decision and verdict.
func WithHooks(h domain.Hooks) Option {
	return func(c *config) { c.hooks = h }
}

// New initializes an Engine. The competing-phase library and reference
// tables are built once here and never mutated afterwards.
func New(opts ...Option) (*Engine, error) {
	cfg := &config{
		logger:     slog.New(slog.DiscardHandler),
		thresholds: engine.DefaultThresholds(),
		floor:      prototype.DefaultSubstitutionFloor,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	lib := catalog.Builtin()
	if cfg.catalogPath != "" {
		if err := lib.Load(cfg.catalogPath); err != nil {
			return nil, err
		}
	}

	builderOpts := []prototype.Option{
		prototype.WithSubstitutionFloor(cfg.floor),
		prototype.WithLogger(cfg.logger),
	}
	if cfg.subs != nil {
		builderOpts = append(builderOpts, prototype.WithSubstitutionModel(cfg.subs))
	}

	pipelineOpts := []engine.Option{
		engine.WithCatalog(lib),
		engine.WithBuilder(prototype.New(builderOpts...)),
		engine.WithThresholds(cfg.thresholds),
		engine.WithHooks(cfg.hooks),
		engine.WithLogger(cfg.logger),
	}
	if cfg.oracle != nil {
		pipelineOpts = append(pipelineOpts, engine.WithEnergyPredictor(cfg.oracle))
	}
	if cfg.hull != nil {
		pipelineOpts = append(pipelineOpts, engine.WithHullCalculator(cfg.hull))
	}

	return &Engine{
		pipeline: engine.New(pipelineOpts...),
		catalog:  lib,
	}, nil
}

// Evaluate grades one formula. The result is owned by the caller. The only
// error is domain.ErrParse for input with no recognizable element tokens;
// every other failure is absorbed into the decision trail.
func (e *Engine) Evaluate(ctx context.Context, formula string) (*domain.FeasibilityResult, error) {
	return e.pipeline.Evaluate(ctx, formula)
}

// KnownSystems lists the chemical systems the competing-phase library
// covers, for introspection surfaces.
func (e *Engine) KnownSystems() []string {
	return e.catalog.Systems()
}
