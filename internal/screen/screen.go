// Package screen implements the cheap symbolic-chemistry gates that run
// before any structure is built: one hard stoichiometry veto and three
// soft filters. Each gate returns a domain.Decision so its justification
// stays independently inspectable in the trail; none of them ever fail
// with an error, since missing reference data degrades to a failed decision.
package screen

import (
	"fmt"
	"strings"

	"github.com/telluric-labs/matfeas/pkg/chem"
	"github.com/telluric-labs/matfeas/pkg/domain"
)

// Stage names as they appear in decision trails.
const (
	NameStoichiometryVeto = "Stoichiometry Veto"
	NameElectronegativity = "Electronegativity"
	NameAnalogues         = "Analogues"
	NameCrystalRules      = "Crystal Chemistry Rules"
)

// Electronegativity-delta thresholds for the trend filter.
const (
	plausibleBondingDelta = 1.0
	moderatePolarityDelta = 0.5
)

// Empirical rock-salt coordination window for the radius-ratio filter.
const (
	radiusRatioMin = 0.3
	radiusRatioMax = 0.7
)

// StoichiometryVeto checks whether charge neutrality is achievable under
// the most favorable single oxidation-state assignment: lowest positive
// state for every cation-half element, lowest negative for every
// anion-half element, weighted by atom counts. Compositions with fewer
// than two distinct elements fail outright.
func StoichiometryVeto(comp chem.Composition) domain.Decision {
	if len(comp) < 2 {
		return domain.Decision{
			Name:          NameStoichiometryVeto,
			Passed:        false,
			Justification: "Invalid or unary composition.",
		}
	}

	cations, anions := comp.SplitByElectronegativity()

	total := 0
	var assignments []string
	for _, symbol := range cations {
		if ox, ok := chem.LowestPositiveOxidationState(symbol); ok {
			total += ox * comp[symbol]
			assignments = append(assignments, fmt.Sprintf("%s(%+d)×%d", symbol, ox, comp[symbol]))
		}
	}
	for _, symbol := range anions {
		if ox, ok := chem.LowestNegativeOxidationState(symbol); ok {
			total += ox * comp[symbol]
			assignments = append(assignments, fmt.Sprintf("%s(%+d)×%d", symbol, ox, comp[symbol]))
		}
	}

	steps := "no assignments"
	if len(assignments) > 0 {
		steps = strings.Join(assignments, ", ")
	}

	if total == 0 {
		return domain.Decision{
			Name:          NameStoichiometryVeto,
			Passed:        true,
			Justification: fmt.Sprintf("Charge neutrality achievable via assignments: %s.", steps),
		}
	}
	return domain.Decision{
		Name:          NameStoichiometryVeto,
		Passed:        false,
		Justification: fmt.Sprintf("Net charge %+d with common oxidation states (%s); unlikely.", total, steps),
	}
}

// ElectronegativityTrend passes when the electronegativity spread across
// the composition suggests polar bonding. A table miss for any element is
// a filter failure, not an error.
func ElectronegativityTrend(comp chem.Composition) domain.Decision {
	var values []float64
	for _, symbol := range comp.Elements() {
		v, ok := chem.Electronegativity(symbol)
		if !ok {
			return domain.Decision{
				Name:          NameElectronegativity,
				Passed:        false,
				Justification: fmt.Sprintf("Missing electronegativity data for %s.", symbol),
			}
		}
		values = append(values, v)
	}

	minEN, maxEN := values[0], values[0]
	for _, v := range values[1:] {
		if v < minEN {
			minEN = v
		}
		if v > maxEN {
			maxEN = v
		}
	}
	return classifyDelta(maxEN - minEN)
}

func classifyDelta(delta float64) domain.Decision {
	switch {
	case delta >= plausibleBondingDelta:
		return domain.Decision{
			Name:          NameElectronegativity,
			Passed:        true,
			Justification: fmt.Sprintf("ΔEN ≈ %.2f suggests plausible bonding.", delta),
		}
	case delta >= moderatePolarityDelta:
		return domain.Decision{
			Name:          NameElectronegativity,
			Passed:        true,
			Justification: fmt.Sprintf("ΔEN ≈ %.2f indicates moderate polarity.", delta),
		}
	default:
		return domain.Decision{
			Name:          NameElectronegativity,
			Passed:        false,
			Justification: fmt.Sprintf("ΔEN ≈ %.2f is low; metallic clustering likely.", delta),
		}
	}
}

// AnalogueFamilyHint pattern-matches the raw formula text for a halogen or
// oxygen, the two families with the richest known-compound analogues.
func AnalogueFamilyHint(formula string) domain.Decision {
	if strings.Contains(formula, "Cl") || strings.Contains(formula, "Br") || strings.Contains(formula, "I") {
		return domain.Decision{
			Name:          NameAnalogues,
			Passed:        true,
			Justification: "Halide family detected; analogues exist.",
		}
	}
	if strings.Contains(formula, "O") {
		return domain.Decision{
			Name:          NameAnalogues,
			Passed:        true,
			Justification: "Oxide family detected; analogues exist.",
		}
	}
	return domain.Decision{
		Name:          NameAnalogues,
		Passed:        false,
		Justification: "No clear analogue family detected.",
	}
}

// RadiusRatio takes the first cation-half and first anion-half elements
// with known radii and checks their ratio against the empirical stable
// coordination window. The split is the same one the veto uses, but the
// representative pair may differ from the veto's assignments when radius
// data is missing for some elements.
func RadiusRatio(comp chem.Composition) domain.Decision {
	cations, anions := comp.SplitByElectronegativity()

	rc, okC := firstKnownRadius(cations)
	ra, okA := firstKnownRadius(anions)
	if !okC || !okA {
		return domain.Decision{
			Name:          NameCrystalRules,
			Passed:        false,
			Justification: "Insufficient radii data.",
		}
	}
	return classifyRatio(rc / ra)
}

func classifyRatio(ratio float64) domain.Decision {
	if ratio >= radiusRatioMin && ratio <= radiusRatioMax {
		return domain.Decision{
			Name:          NameCrystalRules,
			Passed:        true,
			Justification: fmt.Sprintf("Radius ratio ≈ %.2f within stable window.", ratio),
		}
	}
	return domain.Decision{
		Name:          NameCrystalRules,
		Passed:        false,
		Justification: fmt.Sprintf("Radius ratio ≈ %.2f outside stable window.", ratio),
	}
}

func firstKnownRadius(symbols []string) (float64, bool) {
	for _, symbol := range symbols {
		if r, ok := chem.IonicRadiusPM(symbol); ok {
			return r, true
		}
	}
	return 0, false
}
