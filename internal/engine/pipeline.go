// Package engine runs the cascading feasibility pipeline: parse, veto,
// soft filters, prototype synthesis, energy estimate, hull placement,
// verdict. Stages terminate the cascade early on a hard veto or when too
// many soft filters disagree; every later-stage failure is absorbed into a
// decision so the pipeline always reaches a terminal verdict. The only
// error a caller ever sees is a malformed formula.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/telluric-labs/matfeas/internal/catalog"
	"github.com/telluric-labs/matfeas/internal/prototype"
	"github.com/telluric-labs/matfeas/internal/screen"
	"github.com/telluric-labs/matfeas/pkg/chem"
	"github.com/telluric-labs/matfeas/pkg/domain"
	"github.com/telluric-labs/matfeas/pkg/ports"
)

// Stage names for the two numeric decisions.
const (
	NameFormationEnergy = "Formation Energy"
	NameHullStability   = "Convex Hull Stability"
)

// Thresholds collects the tunable cutoffs of the decision tables. The
// defaults reproduce the standard triage behavior; they are configuration,
// not constants, because the Metastable fallback boundary in particular is
// a modeling choice rather than settled chemistry.
type Thresholds struct {
	// HullFeasibleMax: ehull at or below this is Feasible.
	HullFeasibleMax float64
	// HullMetastableMax: ehull at or below this (but above HullFeasibleMax)
	// is Metastable; above it, Not feasible.
	HullMetastableMax float64
	// SoftFilterFailLimit: this many soft-filter failures terminates the
	// cascade with Not feasible.
	SoftFilterFailLimit int
	// MinFilterPassesForMetastable: soft-filter passes required for the
	// Metastable fallback when no numeric evidence is available.
	MinFilterPassesForMetastable int
}

// DefaultThresholds returns the standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HullFeasibleMax:              0.1,
		HullMetastableMax:            0.2,
		SoftFilterFailLimit:          2,
		MinFilterPassesForMetastable: 2,
	}
}

// Pipeline evaluates formulas. It holds no state across calls: the
// catalog and reference tables it reads are initialized once and shared
// read-only, so independent evaluations may run concurrently.
type Pipeline struct {
	catalog    *catalog.Library
	builder    *prototype.Builder
	oracle     ports.EnergyPredictor
	hull       ports.HullCalculator
	thresholds Thresholds
	hooks      domain.Hooks
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCatalog sets the competing-phase library.
func WithCatalog(lib *catalog.Library) Option {
	return func(p *Pipeline) { p.catalog = lib }
}

// WithBuilder sets the prototype structure builder.
func WithBuilder(b *prototype.Builder) Option {
	return func(p *Pipeline) { p.builder = b }
}

// WithEnergyPredictor injects the ML energy collaborator. Without one the
// formation-energy stage degrades to a failed decision.
func WithEnergyPredictor(o ports.EnergyPredictor) Option {
	return func(p *Pipeline) { p.oracle = o }
}

// WithHullCalculator injects the phase-diagram collaborator.
func WithHullCalculator(h ports.HullCalculator) Option {
	return func(p *Pipeline) { p.hull = h }
}

// WithThresholds overrides the decision-table cutoffs.
func WithThresholds(t Thresholds) Option {
	return func(p *Pipeline) { p.thresholds = t }
}

// WithHooks registers observability hooks.
func WithHooks(h domain.Hooks) Option {
	return func(p *Pipeline) { p.hooks = h }
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New creates a Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		catalog:    catalog.Builtin(),
		builder:    prototype.New(),
		thresholds: DefaultThresholds(),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Evaluate runs the full cascade for one formula. The returned result is
// owned by the caller; the pipeline keeps no reference to it. The only
// error is domain.ErrParse for a malformed formula.
func (p *Pipeline) Evaluate(ctx context.Context, formula string) (*domain.FeasibilityResult, error) {
	comp, err := chem.ParseFormula(formula)
	if err != nil {
		return nil, err
	}

	result := &domain.FeasibilityResult{Formula: formula}
	record := func(d domain.Decision) {
		result.Decisions = append(result.Decisions, d)
		if p.hooks.OnDecision != nil {
			p.hooks.OnDecision(ctx, formula, d)
		}
		if !d.Passed {
			p.logger.Debug("stage failed", "formula", formula, "stage", d.Name, "why", d.Justification)
		}
	}
	finish := func(v domain.Verdict) (*domain.FeasibilityResult, error) {
		result.Verdict = v
		if p.hooks.OnVerdict != nil {
			p.hooks.OnVerdict(ctx, formula, v)
		}
		p.logger.Info("evaluation complete", "formula", formula, "verdict", string(v))
		return result, nil
	}

	// Stage 1: hard veto. Gross charge imbalance under the most favorable
	// assignment rules out synthesis outright.
	veto := screen.StoichiometryVeto(comp)
	record(veto)
	if !veto.Passed {
		return finish(domain.VerdictNotFeasible)
	}

	// Stage 2: soft filters, majority rule. A single disagreement is
	// tolerated as heuristic noise.
	filters := []domain.Decision{
		screen.ElectronegativityTrend(comp),
		screen.AnalogueFamilyHint(formula),
		screen.RadiusRatio(comp),
	}
	passes := 0
	for _, d := range filters {
		record(d)
		if d.Passed {
			passes++
		}
	}
	if len(filters)-passes >= p.thresholds.SoftFilterFailLimit {
		return finish(domain.VerdictNotFeasible)
	}

	// Stage 3: prototype structure and formation-energy estimate.
	energy, feDecision := p.estimateFormationEnergy(ctx, comp)
	record(feDecision)
	result.Details.FormationEnergyPerAtom = energy

	// Stage 4: convex-hull placement against the competing-phase library.
	ehull, hullDecision := p.placeOnHull(ctx, formula, comp, energy)
	record(hullDecision)
	result.Details.EnergyAboveHull = ehull

	// Verdict table.
	switch {
	case ehull != nil && *ehull <= p.thresholds.HullFeasibleMax:
		return finish(domain.VerdictFeasible)
	case ehull != nil && *ehull <= p.thresholds.HullMetastableMax:
		return finish(domain.VerdictMetastable)
	case ehull != nil:
		return finish(domain.VerdictNotFeasible)
	case energy != nil && *energy < 0:
		return finish(domain.VerdictFeasible)
	case passes >= p.thresholds.MinFilterPassesForMetastable:
		return finish(domain.VerdictMetastable)
	default:
		return finish(domain.VerdictUncertain)
	}
}

// estimateFormationEnergy builds a prototype and consults the energy
// oracle. Every failure mode (no structure, no oracle, oracle error)
// collapses to (nil, failed decision); the decision passes only for a
// negative estimate.
func (p *Pipeline) estimateFormationEnergy(ctx context.Context, comp chem.Composition) (*float64, domain.Decision) {
	structure, err := p.builder.Build(ctx, comp)
	if err != nil || structure == nil {
		return nil, domain.Decision{
			Name:          NameFormationEnergy,
			Passed:        false,
			Justification: "No structure available; cannot run energy prediction.",
		}
	}
	if p.oracle == nil {
		return nil, domain.Decision{
			Name:          NameFormationEnergy,
			Passed:        false,
			Justification: "Energy predictor not configured.",
		}
	}

	energy, err := p.oracle.PredictEnergyPerAtom(ctx, *structure)
	if err != nil {
		return nil, domain.Decision{
			Name:          NameFormationEnergy,
			Passed:        false,
			Justification: fmt.Sprintf("Energy prediction failed: %v.", err),
		}
	}
	return domain.Float64(energy), domain.Decision{
		Name:          NameFormationEnergy,
		Passed:        energy < 0,
		Justification: fmt.Sprintf("Predicted formation energy ≈ %.3f eV/atom (%s prototype).", energy, structure.Template),
	}
}

// placeOnHull looks up the competing phases for the chemical system and
// asks the hull collaborator for the candidate's energy above hull. The
// decision passes only when a value was obtained and sits at or below the
// metastable cutoff.
func (p *Pipeline) placeOnHull(ctx context.Context, formula string, comp chem.Composition, energy *float64) (*float64, domain.Decision) {
	if energy == nil {
		return nil, domain.Decision{
			Name:          NameHullStability,
			Passed:        false,
			Justification: "No formation energy estimate; convex hull not evaluated.",
		}
	}

	competing := p.catalog.Competing(comp.System())
	if len(competing) == 0 {
		return nil, domain.Decision{
			Name:          NameHullStability,
			Passed:        false,
			Justification: "No competing phases available for this system.",
		}
	}
	if p.hull == nil {
		return nil, domain.Decision{
			Name:          NameHullStability,
			Passed:        false,
			Justification: "Hull calculator not configured.",
		}
	}

	candidate := ports.PhaseEntry{
		Formula:       formula,
		Composition:   comp,
		EnergyPerAtom: *energy,
	}
	ehull, err := p.hull.EnergyAboveHull(ctx, candidate, competing)
	if err != nil {
		return nil, domain.Decision{
			Name:          NameHullStability,
			Passed:        false,
			Justification: fmt.Sprintf("Ehull computation failed: %v.", err),
		}
	}
	return domain.Float64(ehull), domain.Decision{
		Name:          NameHullStability,
		Passed:        ehull <= p.thresholds.HullMetastableMax,
		Justification: fmt.Sprintf("Ehull ≈ %.3f eV/atom.", ehull),
	}
}
