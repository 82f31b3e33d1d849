// Package catalog holds the competing-phase library: for each chemical
// system (the sorted set of element symbols) a list of well-established
// phases with known energies per atom, including the pure elements at
// 0 eV/atom as reference states. The library is built once at startup and
// read-only afterwards; lookups are exact-match on the system key, and an
// unseen system yields an empty list, which callers treat as insufficient
// data rather than an error.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/telluric-labs/matfeas/pkg/chem"
	"github.com/telluric-labs/matfeas/pkg/ports"
)

// Library maps chemical-system keys to competing-phase entries.
type Library struct {
	entries map[string][]ports.PhaseEntry
}

// systemKey canonicalizes a sorted element set into a lookup key.
func systemKey(system []string) string {
	return strings.Join(system, "-")
}

// Empty returns a library with no entries.
func Empty() *Library {
	return &Library{entries: map[string][]ports.PhaseEntry{}}
}

// Builtin returns the seed library. Energies are curated placeholders for
// common systems, adequate for hull triage but not authoritative.
func Builtin() *Library {
	lib := Empty()
	seed := map[string][]struct {
		formula string
		energy  float64
	}{
		"Cl-Cu": {
			{"Cu", 0.0},
			{"Cl2", 0.0},
			{"CuCl", -0.8},
			{"CuCl2", -0.6},
		},
		"Al-Na-O-Si": {
			{"Na", 0.0},
			{"Al", 0.0},
			{"Si", 0.0},
			{"O2", 0.0},
			{"Na2O", -1.2},
			{"Al2O3", -1.5},
			{"SiO2", -1.6},
		},
		"Fe-O": {
			{"Fe", 0.0},
			{"O2", 0.0},
			{"FeO", -1.0},
			{"Fe2O3", -1.2},
		},
		"Mg-O": {
			{"Mg", 0.0},
			{"O2", 0.0},
			{"MgO", -1.1},
		},
		"O-Si": {
			{"Si", 0.0},
			{"O2", 0.0},
			{"SiO2", -1.6},
		},
		"Cl-Na": {
			{"Na", 0.0},
			{"Cl2", 0.0},
			{"NaCl", -0.9},
		},
	}
	for key, phases := range seed {
		for _, p := range phases {
			lib.entries[key] = append(lib.entries[key], ports.PhaseEntry{
				Formula:       p.formula,
				Composition:   chem.MustParse(p.formula),
				EnergyPerAtom: p.energy,
			})
		}
	}
	return lib
}

// overlayFile is the YAML shape accepted by Load.
type overlayFile struct {
	Systems []struct {
		Elements []string `yaml:"elements"`
		Phases   []struct {
			Formula       string  `yaml:"formula"`
			EnergyPerAtom float64 `yaml:"energy_per_atom"`
		} `yaml:"phases"`
	} `yaml:"systems"`
}

// Load merges a YAML overlay file into the library. A system listed in the
// overlay replaces the builtin entries for that system entirely. Load is
// meant for startup configuration only; the library must not be mutated
// once evaluations begin.
func (l *Library) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog overlay: %w", err)
	}
	var overlay overlayFile
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return fmt.Errorf("parse catalog overlay: %w", err)
	}

	for _, system := range overlay.Systems {
		elements := append([]string(nil), system.Elements...)
		comp := chem.Composition{}
		for _, e := range elements {
			comp[e] = 1
		}
		key := systemKey(comp.System())

		var entries []ports.PhaseEntry
		for _, p := range system.Phases {
			pc, err := chem.ParseFormula(p.Formula)
			if err != nil {
				return fmt.Errorf("catalog overlay: system %s: %q: %w", key, p.Formula, err)
			}
			entries = append(entries, ports.PhaseEntry{
				Formula:       p.Formula,
				Composition:   pc,
				EnergyPerAtom: p.EnergyPerAtom,
			})
		}
		l.entries[key] = entries
	}
	return nil
}

// Competing returns the competing phases for a chemical system, or an
// empty slice when the system is unknown. The key match is exact: no
// partial or superset matching.
func (l *Library) Competing(system []string) []ports.PhaseEntry {
	return l.entries[systemKey(system)]
}

// Systems returns the known chemical-system keys, for introspection.
func (l *Library) Systems() []string {
	keys := make([]string, 0, len(l.entries))
	for key := range l.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
