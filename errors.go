package fuzzytrie

import (
	"errors"

	"github.com/gofuzzmatch/fuzzytrie/internal/levenshtein"
)

// Sentinel errors, re-exported from the internal levenshtein package so
// callers never need to import it directly.
var (
	// ErrInvalidParameter is returned by BuildDFA when d < 0.
	ErrInvalidParameter = levenshtein.ErrInvalidParameter

	// ErrMismatch is returned by NewAutomaton when the DFA it is given
	// cannot back a query automaton.
	ErrMismatch = levenshtein.ErrMismatch

	// ErrInternalInvariant marks a corrupted DFA: a transition lookup that
	// found no entry. A correctly constructed DFA never triggers this.
	ErrInternalInvariant = levenshtein.ErrInternalInvariant

	// ErrEmptyWord is returned by Trie.Add for the empty string: it is not
	// an insertable dictionary word.
	ErrEmptyWord = errors.New("fuzzytrie: empty word")
)
