// Package domain holds the value types exchanged between the feasibility
// pipeline and its adapters: verdicts, per-stage decisions, stability
// details and candidate structures. Everything here is plain data; the
// behavior lives in the engine and its collaborators.
package domain
