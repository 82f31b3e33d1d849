package chem

// Reference data for the screening heuristics. These tables are coarse by
// design: a curated subset of elements with a single representative value
// each, enough for triage but never ground truth. They are initialized once
// and never written, so unsynchronized concurrent reads are safe.

// Defaults applied by consumers when a lookup misses.
const (
	// DefaultElectronegativity approximates an elemental / non-polar species.
	DefaultElectronegativity = 2.0
	// DefaultIonicRadiusPM is the fallback representative ionic radius.
	DefaultIonicRadiusPM = 100.0
)

// electronegativity holds Pauling-scale values.
var electronegativity = map[string]float64{
	"H": 2.20, "Li": 0.98, "Be": 1.57, "B": 2.04, "C": 2.55, "N": 3.04,
	"O": 3.44, "F": 3.98, "Na": 0.93, "Mg": 1.31, "Al": 1.61, "Si": 1.90,
	"P": 2.19, "S": 2.58, "Cl": 3.16, "K": 0.82, "Ca": 1.00, "Ti": 1.54,
	"Fe": 1.83, "Cu": 1.90, "Zn": 1.65, "Br": 2.96, "Sr": 0.95, "I": 2.66,
	"Ba": 0.89,
}

// oxidationStates lists common signed oxidation states per element, ordered
// from the most characteristic down. Not exhaustive.
var oxidationStates = map[string][]int{
	"H": {+1, -1}, "O": {-2}, "F": {-1},
	"Cl": {-1, +1, +3, +5, +7},
	"Br": {-1, +1, +3, +5},
	"I":  {-1, +1, +5, +7},
	"N":  {-3, +3, +5}, "C": {-4, +2, +4},
	"Na": {+1}, "K": {+1}, "Li": {+1},
	"Mg": {+2}, "Ca": {+2}, "Sr": {+2}, "Ba": {+2}, "Be": {+2},
	"Fe": {+2, +3}, "Cu": {+1, +2}, "Zn": {+2}, "Ti": {+4, +3, +2},
	"Al": {+3}, "B": {+3}, "Si": {+4}, "P": {+5, -3}, "S": {-2, +4, +6},
}

// ionicRadiiPM holds one representative ionic radius per element in
// picometers, ignoring coordination and oxidation state.
var ionicRadiiPM = map[string]float64{
	"Li": 76, "Na": 102, "K": 138, "Ca": 100, "Sr": 118, "Ba": 135,
	"Mg": 72, "Al": 53, "Si": 40, "Ti": 61, "Fe": 78, "Cu": 73, "Zn": 74,
	"F": 133, "Cl": 181, "Br": 196, "I": 220, "O": 140, "S": 184,
}

// Electronegativity returns the Pauling electronegativity for a symbol and
// whether the table knows it.
func Electronegativity(symbol string) (float64, bool) {
	v, ok := electronegativity[symbol]
	return v, ok
}

// ElectronegativityOrDefault returns the table value, or
// DefaultElectronegativity when the symbol is unknown.
func ElectronegativityOrDefault(symbol string) float64 {
	if v, ok := electronegativity[symbol]; ok {
		return v
	}
	return DefaultElectronegativity
}

// OxidationStates returns the curated oxidation states for a symbol.
// Unknown symbols yield an empty list, never an error.
func OxidationStates(symbol string) []int {
	return oxidationStates[symbol]
}

// LowestPositiveOxidationState returns the smallest positive state known
// for the symbol, or false when the table lists none.
func LowestPositiveOxidationState(symbol string) (int, bool) {
	best, found := 0, false
	for _, s := range oxidationStates[symbol] {
		if s > 0 && (!found || s < best) {
			best, found = s, true
		}
	}
	return best, found
}

// LowestNegativeOxidationState returns the most negative state known for
// the symbol, or false when the table lists none.
func LowestNegativeOxidationState(symbol string) (int, bool) {
	best, found := 0, false
	for _, s := range oxidationStates[symbol] {
		if s < 0 && (!found || s < best) {
			best, found = s, true
		}
	}
	return best, found
}

// IonicRadiusPM returns the representative ionic radius in picometers and
// whether the table knows the symbol.
func IonicRadiusPM(symbol string) (float64, bool) {
	v, ok := ionicRadiiPM[symbol]
	return v, ok
}

// IonicRadiusPMOrDefault returns the table value, or DefaultIonicRadiusPM
// when the symbol is unknown.
func IonicRadiusPMOrDefault(symbol string) float64 {
	if v, ok := ionicRadiiPM[symbol]; ok {
		return v
	}
	return DefaultIonicRadiusPM
}
