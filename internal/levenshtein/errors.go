package levenshtein

import "errors"

// Sentinel errors for the three documented failure kinds.
var (
	// ErrInvalidParameter is returned by BuildDFA when d < 0.
	ErrInvalidParameter = errors.New("levenshtein: invalid parameter")

	// ErrMismatch is returned by NewAutomaton when it is given a DFA that
	// cannot back a query automaton (nil, or not built by BuildDFA). The
	// automaton takes its d from the DFA, so no separate d is compared.
	ErrMismatch = errors.New("levenshtein: dfa/automaton mismatch")

	// ErrInternalInvariant is returned when a transition lookup misses a
	// state that a correctly-constructed DFA must always have. This
	// indicates a corrupted DFA; it must never occur in practice.
	ErrInternalInvariant = errors.New("levenshtein: internal invariant violated")
)
