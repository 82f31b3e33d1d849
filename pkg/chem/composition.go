package chem

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/telluric-labs/matfeas/pkg/domain"
)

// Composition maps element symbols to positive integer atom counts.
type Composition map[string]int

// formulaToken matches one element symbol (capital letter, optional single
// lowercase letter) followed by an optional multiplicity.
var formulaToken = regexp.MustCompile(`([A-Z][a-z]?)(\d*)`)

// ParseFormula tokenizes a formula string such as "Fe2O3" into a Composition.
// An absent count means multiplicity 1 and repeated symbols accumulate, so
// "FeOFe" parses to {Fe: 2, O: 1}. Returns domain.ErrParse when the string
// contains no recognizable element tokens; token shape is all that is
// checked here, unknown symbols are a matter for the reference tables.
func ParseFormula(formula string) (Composition, error) {
	comp := Composition{}
	for _, m := range formulaToken.FindAllStringSubmatch(formula, -1) {
		symbol := m[1]
		if symbol == "" {
			continue
		}
		n := 1
		if m[2] != "" {
			parsed, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("%w: bad count for %s", domain.ErrParse, symbol)
			}
			n = parsed
		}
		comp[symbol] += n
	}
	if len(comp) == 0 {
		return nil, domain.ErrParse
	}
	return comp, nil
}

// MustParse is ParseFormula for known-good literals (seed catalogues, tests).
func MustParse(formula string) Composition {
	comp, err := ParseFormula(formula)
	if err != nil {
		panic(err)
	}
	return comp
}

// Elements returns the distinct symbols in deterministic (sorted) order.
func (c Composition) Elements() []string {
	elements := make([]string, 0, len(c))
	for symbol := range c {
		elements = append(elements, symbol)
	}
	sort.Strings(elements)
	return elements
}

// TotalAtoms is the sum of all atom counts.
func (c Composition) TotalAtoms() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// System returns the chemical system key: the sorted distinct element
// symbols. Two formulas with the same element set share a system regardless
// of stoichiometry.
func (c Composition) System() []string {
	return c.Elements()
}

// SplitByElectronegativity sorts the distinct elements by Pauling
// electronegativity (table default for unknown symbols) and splits the
// sorted list at its midpoint: the lower half are cation candidates, the
// upper half anion candidates. The veto stage, the radius-ratio filter and
// the prototype builder all share this single split so they can never
// disagree about which half an element landed in.
func (c Composition) SplitByElectronegativity() (cations, anions []string) {
	elements := c.Elements()
	sort.SliceStable(elements, func(i, j int) bool {
		ei := ElectronegativityOrDefault(elements[i])
		ej := ElectronegativityOrDefault(elements[j])
		if ei == ej {
			return elements[i] < elements[j]
		}
		return ei < ej
	})
	mid := len(elements) / 2
	if mid < 1 {
		mid = 1
	}
	return elements[:mid], elements[mid:]
}
