/*
Package matfeas grades whether a hypothetical inorganic compound, given only
its chemical formula, is chemically plausible and thermodynamically likely
to be synthesizable. It is the fallback reasoning path for formulas with no
authoritative database record.

The engine is a cascading filter-and-score pipeline: cheap symbolic
chemistry gates run first (a hard stoichiometry veto, then three soft
filters under a majority rule), a schematic prototype structure is
synthesized for whatever survives, an external ML predictor estimates its
formation energy, and a convex-hull placement against a competing-phase
library positions it thermodynamically. The output is a graded verdict
(Feasible, Metastable, Not feasible, Uncertain) with an auditable decision
trail recording why each stage passed or failed.

# Architecture

The core pipeline is pure and synchronous; external collaborators (the
energy predictor, the hull calculator and the substitution likelihood
model) live behind narrow interfaces in pkg/ports and every failure they
raise is absorbed into the trail rather than propagated. Reference tables
are coarse, read-only lookup data initialized once at startup, so a single
Engine serves concurrent evaluations without locking.

# Usage

	eng, err := matfeas.New(
		matfeas.WithEnergyPredictor(oracle),
		matfeas.WithHullCalculator(hull),
	)
	if err != nil {
		log.Fatal(err)
	}

	result, err := eng.Evaluate(ctx, "CuCl")
	if err != nil {
		log.Fatal(err) // malformed formula
	}

	fmt.Println(result.Verdict)
	for _, d := range result.Decisions {
		fmt.Printf("%s: %v — %s\n", d.Name, d.Passed, d.Justification)
	}

Collaborators are optional: without them the numeric stages degrade to
failed decisions and the verdict falls back to the soft-filter tally.
*/
package matfeas
