package ports

import (
	"context"

	"github.com/telluric-labs/matfeas/pkg/chem"
	"github.com/telluric-labs/matfeas/pkg/domain"
)

// PhaseEntry pairs a composition with a known (or predicted) energy per
// atom in eV. Pure elements at 0 eV/atom serve as reference states.
type PhaseEntry struct {
	Formula       string           `json:"formula" yaml:"formula" mapstructure:"formula"`
	Composition   chem.Composition `json:"composition" yaml:"-" mapstructure:"-"`
	EnergyPerAtom float64          `json:"energy_per_atom" yaml:"energy_per_atom" mapstructure:"energy_per_atom"`
}

// EnergyPredictor is the ML structure-energy collaborator. One call, one
// scalar estimate in eV/atom; implementations may be remote and slow, so
// callers imposing deadlines should do it through ctx.
type EnergyPredictor interface {
	PredictEnergyPerAtom(ctx context.Context, s domain.CandidateStructure) (float64, error)
}

// HullCalculator is the phase-diagram collaborator. Given the candidate
// entry and its competing phases it returns the candidate's energy above
// the convex hull in eV/atom.
type HullCalculator interface {
	EnergyAboveHull(ctx context.Context, candidate PhaseEntry, competing []PhaseEntry) (float64, error)
}

// SubstitutionModel is the elemental substitution likelihood collaborator:
// for an element symbol it returns candidate substitutes mapped to
// probabilities in [0, 1].
type SubstitutionModel interface {
	Substitutions(ctx context.Context, element string) (map[string]float64, error)
}
