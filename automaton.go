package fuzzytrie

import "github.com/gofuzzmatch/fuzzytrie/internal/levenshtein"

// Automaton binds a query string to a shared DFA. Step, IsMatch, and
// CanMatch implement the query automaton's contract: advance one
// character at a time, report whether the query has been matched so far,
// and report whether any extension could still match. An Automaton owns
// a characteristic-vector cache that mutates on Step, so a single
// instance must be used by only one search at a time; building a fresh
// Automaton per query is cheap. The query and candidate characters are
// compared as runes (Unicode code points).
type Automaton struct {
	inner *levenshtein.Automaton
}

// AutomatonState is the runtime state of an Automaton, returned by
// Initial and Step. It is never mutated in place.
type AutomatonState = levenshtein.State

// NewAutomaton binds query to dfa. It fails with ErrMismatch if dfa was
// not produced by BuildDFA.
func NewAutomaton(dfa *DFA, query string) (*Automaton, error) {
	if dfa == nil {
		return nil, ErrMismatch
	}
	inner, err := levenshtein.NewAutomaton(dfa.inner, []rune(query))
	if err != nil {
		return nil, err
	}
	return &Automaton{inner: inner}, nil
}

// Initial returns the automaton's start state.
func (a *Automaton) Initial() AutomatonState {
	return a.inner.Initial()
}

// Step advances the automaton by one candidate character.
func (a *Automaton) Step(state AutomatonState, char rune) AutomatonState {
	return a.inner.Step(state, char)
}

// IsMatch reports whether state is accepting: the part of the query not
// yet aligned with the candidate is short enough to be covered by the
// remaining edit budget, so the candidate consumed so far is within the
// bound of the query.
func (a *Automaton) IsMatch(state AutomatonState) bool {
	return a.inner.IsMatch(state)
}

// CanMatch reports whether any extension of the candidate consumed so far
// could still reach a match. A false return certifies that no descendant
// of the current Trie node can match, licensing Search to prune it.
func (a *Automaton) CanMatch(state AutomatonState) bool {
	return a.inner.CanMatch(state)
}
