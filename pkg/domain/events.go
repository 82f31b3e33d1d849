package domain

import "context"

// Hooks defines callbacks for pipeline observability.
// All callbacks are optional and must be safe for concurrent use, since
// independent evaluations may run in parallel.
type Hooks struct {
	// OnDecision fires after each pipeline stage appends its decision.
	OnDecision func(ctx context.Context, formula string, d Decision)
	// OnVerdict fires once per evaluation with the terminal verdict.
	OnVerdict func(ctx context.Context, formula string, v Verdict)
}
