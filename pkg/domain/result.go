package domain

// Verdict is the graded outcome of a feasibility evaluation.
type Verdict string

const (
	VerdictFeasible    Verdict = "Feasible"
	VerdictMetastable  Verdict = "Metastable"
	VerdictNotFeasible Verdict = "Not feasible"
	VerdictUncertain   Verdict = "Uncertain"
)

// Decision records the outcome of a single pipeline stage.
// Decisions are immutable once created; the slice order in a
// FeasibilityResult is the order the stages actually ran.
type Decision struct {
	Name          string `json:"name" yaml:"name" mapstructure:"name"`
	Passed        bool   `json:"passed" yaml:"passed" mapstructure:"passed"`
	Justification string `json:"justification" yaml:"justification" mapstructure:"justification"`
}

// StabilityDetails carries the numeric outputs of the energy stages.
// A nil field means the corresponding computation was skipped or failed,
// which is not the same thing as a value of zero.
type StabilityDetails struct {
	FormationEnergyPerAtom *float64 `json:"formation_energy_ev_per_atom,omitempty" yaml:"formation_energy_ev_per_atom,omitempty" mapstructure:"formation_energy_ev_per_atom"`
	EnergyAboveHull        *float64 `json:"ehull_ev_per_atom,omitempty" yaml:"ehull_ev_per_atom,omitempty" mapstructure:"ehull_ev_per_atom"`
}

// FeasibilityResult is the terminal artifact of one formula evaluation.
// The engine holds no reference to it after returning.
type FeasibilityResult struct {
	Formula   string           `json:"formula" yaml:"formula" mapstructure:"formula"`
	Verdict   Verdict          `json:"verdict" yaml:"verdict" mapstructure:"verdict"`
	Decisions []Decision       `json:"decisions" yaml:"decisions" mapstructure:"decisions"`
	Details   StabilityDetails `json:"details" yaml:"details" mapstructure:"details"`
}

// Float64 returns a pointer to v. Convenience for populating StabilityDetails.
func Float64(v float64) *float64 { return &v }
