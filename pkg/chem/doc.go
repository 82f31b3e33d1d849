// Package chem provides formula parsing and the static element reference
// tables (electronegativity, oxidation states, ionic radii) that the
// screening heuristics consume. Lookup misses are expected and handled by
// documented defaults rather than errors.
package chem
