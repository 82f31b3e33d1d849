// Package ports declares the narrow interfaces behind which the engine's
// external collaborators live: the ML structure-energy predictor, the
// phase-diagram (convex hull) calculator and the elemental substitution
// likelihood model. The engine never sees their internals; any failure they
// raise is absorbed into a decision, never propagated.
package ports
