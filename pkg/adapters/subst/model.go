// Package subst provides a static elemental substitution likelihood model:
// a curated table mapping elements to plausible substitutes with
// probabilities. It stands in for a learned substitution model behind the
// same ports.SubstitutionModel interface and can be overridden from YAML.
package subst

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/telluric-labs/matfeas/pkg/ports"
)

// Model is a read-only probability table. Construct with Builtin or
// FromFile; do not mutate after evaluations begin.
type Model struct {
	table map[string]map[string]float64
}

var _ ports.SubstitutionModel = (*Model)(nil)

// Builtin returns the seed table. Probabilities are deliberately
// conservative: common chemical analogies sit just under the standard
// acceptance floor so that, without an overlay, representatives are kept
// as selected.
func Builtin() *Model {
	return &Model{table: map[string]map[string]float64{
		"Li": {"Na": 0.19, "Mg": 0.08},
		"Na": {"K": 0.19, "Li": 0.16},
		"K":  {"Na": 0.18, "Rb": 0.12},
		"Mg": {"Ca": 0.17, "Zn": 0.15},
		"Ca": {"Sr": 0.19, "Mg": 0.14},
		"Sr": {"Ba": 0.19, "Ca": 0.17},
		"Fe": {"Cu": 0.10, "Zn": 0.09},
		"Cu": {"Zn": 0.12, "Fe": 0.08},
		"Zn": {"Mg": 0.14, "Cu": 0.11},
		"Al": {"Fe": 0.12, "B": 0.07},
		"Si": {"Al": 0.10},
		"Cl": {"Br": 0.18, "F": 0.10},
		"Br": {"Cl": 0.18, "I": 0.15},
		"I":  {"Br": 0.16},
		"O":  {"S": 0.09},
		"S":  {"O": 0.09},
	}}
}

// FromFile loads a table from YAML, shaped as:
//
//	substitutions:
//	  Cu:
//	    Ag: 0.35
//	    Ni: 0.22
//
// Entries replace the builtin table per element.
func FromFile(path string) (*Model, error) {
	base := Builtin()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read substitution table: %w", err)
	}
	var file struct {
		Substitutions map[string]map[string]float64 `yaml:"substitutions"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse substitution table: %w", err)
	}
	for element, subs := range file.Substitutions {
		for candidate, p := range subs {
			if p < 0 || p > 1 {
				return nil, fmt.Errorf("substitution table: %s -> %s: probability %v out of [0,1]", element, candidate, p)
			}
		}
		base.table[element] = subs
	}
	return base, nil
}

// Substitutions returns candidate substitutes with probabilities for the
// element. Unknown elements yield an empty map, never an error.
func (m *Model) Substitutions(_ context.Context, element string) (map[string]float64, error) {
	subs := m.table[element]
	out := make(map[string]float64, len(subs))
	for candidate, p := range subs {
		out[candidate] = p
	}
	return out, nil
}
