package domain

import "errors"

// ErrParse is returned when a formula string contains no recognizable
// element tokens. It is an input-validation failure, not a chemistry
// judgment: callers should surface it as a rejected evaluation rather
// than a verdict.
var ErrParse = errors.New("formula contains no recognizable element tokens")

// ErrNoStructure is returned by the prototype builder when no template
// could be assembled. The pipeline absorbs it into a failed decision.
var ErrNoStructure = errors.New("no prototype structure could be built")
