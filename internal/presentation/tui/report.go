// Package tui builds and renders human-readable feasibility reports.
package tui

import (
	"fmt"
	"strings"

	"github.com/telluric-labs/matfeas/pkg/domain"
)

// BuildReport renders a FeasibilityResult as markdown: verdict, stability
// numbers when available, and the full decision trail in evaluation order.
func BuildReport(result *domain.FeasibilityResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", result.Formula)
	fmt.Fprintf(&b, "**Verdict: %s**\n\n", result.Verdict)

	if result.Details.FormationEnergyPerAtom != nil || result.Details.EnergyAboveHull != nil {
		b.WriteString("| Quantity | Value |\n|---|---|\n")
		if fe := result.Details.FormationEnergyPerAtom; fe != nil {
			fmt.Fprintf(&b, "| Formation energy | %.3f eV/atom |\n", *fe)
		}
		if eh := result.Details.EnergyAboveHull; eh != nil {
			fmt.Fprintf(&b, "| Energy above hull | %.3f eV/atom |\n", *eh)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Decision trail\n\n")
	for _, d := range result.Decisions {
		verdict := "No"
		if d.Passed {
			verdict = "Yes"
		}
		fmt.Fprintf(&b, "- %s: %s — %s\n", d.Name, verdict, d.Justification)
	}

	return b.String()
}
