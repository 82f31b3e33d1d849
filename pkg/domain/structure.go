package domain

// Template identifies the schematic prototype a candidate structure was built from.
type Template string

const (
	TemplatePerovskite Template = "perovskite"
	TemplateSpinel     Template = "spinel"
	TemplateRockSalt   Template = "rocksalt"
)

// Site is a single atom placed at fractional coordinates inside the cell.
type Site struct {
	Species string     `json:"species"`
	Coords  [3]float64 `json:"coords"`
}

// CandidateStructure is a schematic crystal arrangement built only to feed
// the energy predictor. It is an ephemeral value: it has no identity beyond
// the evaluation that created it and is never an assertion about the true
// structure of the compound.
type CandidateStructure struct {
	Template Template `json:"template"`
	// LatticeA is the cubic lattice parameter in angstroms.
	LatticeA float64 `json:"lattice_a"`
	Sites    []Site  `json:"sites"`
}
