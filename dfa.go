package fuzzytrie

import (
	"log/slog"

	"github.com/gofuzzmatch/fuzzytrie/internal/levenshtein"
)

// DFA is the universal parametric Levenshtein automaton for a fixed edit
// distance bound. It is built once per d and is immutable afterward: any
// number of Automaton values, across any number of goroutines, may share
// one DFA without synchronization.
type DFA struct {
	inner *levenshtein.DFA
}

// D returns the edit-distance bound this DFA was built for.
func (d *DFA) D() int { return d.inner.D() }

// NumStates returns the number of normalized NFA states the DFA discovered
// during construction, including the dead state.
func (d *DFA) NumStates() int { return d.inner.NumStates() }

// Option configures BuildDFA.
type Option = levenshtein.Option

// WithLogger attaches a logger that receives one Info line when DFA
// construction finishes. A nil logger (the default) keeps construction
// silent; construction is otherwise pure and emits no other diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return levenshtein.WithLogger(logger)
}

// BuildDFA constructs the universal Levenshtein DFA for bound d. It fails
// with ErrInvalidParameter only if d is negative; there is no upper cap,
// though the practical range documented by this package is 0 <= d <= 3 —
// beyond that the state count and the 2^(2d+1)-wide vector space make
// memory grow quickly.
func BuildDFA(d int, opts ...Option) (*DFA, error) {
	inner, err := levenshtein.BuildDFA(d, opts...)
	if err != nil {
		return nil, err
	}
	return &DFA{inner: inner}, nil
}
