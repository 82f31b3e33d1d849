// Package prototype manufactures schematic candidate structures for
// formulas with no known arrangement, so the energy predictor has
// something to evaluate. Templates are minimal placeholder geometries
// selected by the cheapest distinguishing signals (oxygen presence,
// element count), tried in priority order with independent fallthrough:
// perovskite, then spinel, then the universal rock-salt fallback.
package prototype

import (
	"context"
	"log/slog"
	"sort"

	"github.com/telluric-labs/matfeas/pkg/chem"
	"github.com/telluric-labs/matfeas/pkg/domain"
	"github.com/telluric-labs/matfeas/pkg/ports"
)

// DefaultSubstitutionFloor is the probability below which substitution
// candidates are ignored when refining a representative element.
const DefaultSubstitutionFloor = 0.2

// minLatticeA keeps the crude radius-sum lattice estimate physical.
const minLatticeA = 4.5

// Builder assembles candidate structures. The zero value is not usable;
// construct with New.
type Builder struct {
	subs   ports.SubstitutionModel
	floor  float64
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithSubstitutionModel injects the elemental substitution likelihood
// collaborator. Without one, representatives are kept as selected.
func WithSubstitutionModel(m ports.SubstitutionModel) Option {
	return func(b *Builder) { b.subs = m }
}

// WithSubstitutionFloor overrides the probability threshold for accepting
// a substitute.
func WithSubstitutionFloor(p float64) Option {
	return func(b *Builder) { b.floor = p }
}

// WithLogger sets a structured logger for refinement diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{floor: DefaultSubstitutionFloor, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns a candidate structure for the composition, or
// domain.ErrNoStructure when no template can be assembled. It never
// panics and never returns any other error: downstream treats a missing
// structure as an explicit stage failure, not a crash.
func (b *Builder) Build(ctx context.Context, comp chem.Composition) (*domain.CandidateStructure, error) {
	cationPool, anionPool := comp.SplitByElectronegativity()

	cationBase, okC := dominant(comp, cationPool)
	anionBase, okA := dominant(comp, anionPool)
	if !okC || !okA {
		return nil, domain.ErrNoStructure
	}

	a := b.refine(ctx, cationBase)
	x := b.refine(ctx, anionBase)

	hasOxygen := comp["O"] > 0
	if hasOxygen && len(comp) >= 3 {
		bSite := b.refine(ctx, secondCation(cationPool, a))
		if s, ok := buildPerovskite(a, bSite); ok {
			return s, nil
		}
		if s, ok := buildSpinel(a, bSite); ok {
			return s, nil
		}
	}

	if s, ok := buildRockSalt(a, x); ok {
		return s, nil
	}
	return nil, domain.ErrNoStructure
}

// dominant picks the pool element with the highest atom count,
// tie-breaking on symbol so evaluations stay deterministic.
func dominant(comp chem.Composition, pool []string) (string, bool) {
	if len(pool) == 0 {
		return "", false
	}
	sorted := append([]string(nil), pool...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if comp[sorted[i]] == comp[sorted[j]] {
			return sorted[i] < sorted[j]
		}
		return comp[sorted[i]] > comp[sorted[j]]
	})
	return sorted[0], true
}

// secondCation picks a B-site candidate distinct from the A-site element,
// falling back to A itself when the pool has no alternative.
func secondCation(pool []string, a string) string {
	for _, symbol := range pool {
		if symbol != a {
			return symbol
		}
	}
	return a
}

// refine consults the substitution model and replaces the element with its
// highest-probability substitute at or above the floor, if any qualifies.
// Model failures keep the original element.
func (b *Builder) refine(ctx context.Context, element string) string {
	if b.subs == nil {
		return element
	}
	candidates, err := b.subs.Substitutions(ctx, element)
	if err != nil {
		b.logger.Debug("substitution lookup failed", "element", element, "err", err)
		return element
	}

	best, bestP := element, b.floor
	// Deterministic iteration: probability first, then symbol.
	symbols := make([]string, 0, len(candidates))
	for symbol := range candidates {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	found := false
	for _, symbol := range symbols {
		p := candidates[symbol]
		if p >= b.floor && (!found || p > bestP) {
			best, bestP, found = symbol, p, true
		}
	}
	return best
}

// pmToAngstrom converts a radius sum in picometers to a cubic lattice
// parameter estimate, clamped to a sensible lower bound.
func pmToAngstrom(pm float64) float64 {
	a := pm * 0.01
	if a < minLatticeA {
		return minLatticeA
	}
	return a
}

// buildPerovskite assembles the five-site cubic ABO3 motif: A at the
// origin, B at the body center, O at the three face centers.
func buildPerovskite(aSite, bSite string) (*domain.CandidateStructure, bool) {
	lattice := pmToAngstrom(chem.IonicRadiusPMOrDefault(bSite) + chem.IonicRadiusPMOrDefault("O"))
	return &domain.CandidateStructure{
		Template: domain.TemplatePerovskite,
		LatticeA: lattice,
		Sites: []domain.Site{
			{Species: aSite, Coords: [3]float64{0, 0, 0}},
			{Species: bSite, Coords: [3]float64{0.5, 0.5, 0.5}},
			{Species: "O", Coords: [3]float64{0.5, 0.5, 0.0}},
			{Species: "O", Coords: [3]float64{0.5, 0.0, 0.5}},
			{Species: "O", Coords: [3]float64{0.0, 0.5, 0.5}},
		},
	}, true
}

// buildSpinel assembles a seven-site schematic AB2O4 motif: one
// tetrahedral-like A site, two octahedral-like B sites and four O sites.
// Not the full Fd-3m multiplicities; kept small for quick surrogate
// predictions.
func buildSpinel(aSite, bSite string) (*domain.CandidateStructure, bool) {
	lattice := pmToAngstrom(chem.IonicRadiusPMOrDefault(bSite) + chem.IonicRadiusPMOrDefault("O"))
	return &domain.CandidateStructure{
		Template: domain.TemplateSpinel,
		LatticeA: lattice,
		Sites: []domain.Site{
			{Species: aSite, Coords: [3]float64{0.125, 0.125, 0.125}},
			{Species: bSite, Coords: [3]float64{0.5, 0.5, 0.5}},
			{Species: bSite, Coords: [3]float64{0.0, 0.5, 0.5}},
			{Species: "O", Coords: [3]float64{0.25, 0.25, 0.25}},
			{Species: "O", Coords: [3]float64{0.75, 0.75, 0.25}},
			{Species: "O", Coords: [3]float64{0.75, 0.25, 0.75}},
			{Species: "O", Coords: [3]float64{0.25, 0.75, 0.75}},
		},
	}, true
}

// buildRockSalt assembles the two-site cubic NaCl-type motif: cation at
// the origin, anion at the body-diagonal midpoint.
func buildRockSalt(cation, anion string) (*domain.CandidateStructure, bool) {
	lattice := pmToAngstrom(chem.IonicRadiusPMOrDefault(cation) + chem.IonicRadiusPMOrDefault(anion))
	return &domain.CandidateStructure{
		Template: domain.TemplateRockSalt,
		LatticeA: lattice,
		Sites: []domain.Site{
			{Species: cation, Coords: [3]float64{0, 0, 0}},
			{Species: anion, Coords: [3]float64{0.5, 0.5, 0.5}},
		},
	}, true
}
