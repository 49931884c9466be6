package levenshtein

import "fmt"

// stateIdx is the dense index assigned to a normalized state during
// construction. stateIdx(0) is always the dead state: the empty position
// set, with a self-loop on every vector. Representing it as a distinguished
// index lets Automaton.CanMatch and Automaton.Step avoid a branch per step.
type stateIdx uint32

const deadState stateIdx = 0

// transition is the tabulated effect of one (state, characteristic vector)
// pair: the base-offset delta to apply and the successor state.
type transition struct {
	shift int8
	next  stateIdx
}

// DFA is the universal parametric Levenshtein automaton for a fixed edit
// distance d. It is built once by BuildDFA and is immutable afterward:
// many query Automaton values may share one *DFA concurrently without
// synchronization.
type DFA struct {
	d       int
	width   int // 2d + 1
	numVecs int // 1 << width
	table   [][]transition
	states  []normState // states[i] is the position set stateIdx(i) represents
	start   stateIdx
}

// D returns the edit-distance bound this DFA was built for.
func (d *DFA) D() int { return d.d }

// NumStates returns the number of normalized states discovered during
// construction, including the dead state. Exposed for snapshot testing.
func (d *DFA) NumStates() int { return len(d.table) }

// BuildDFA constructs the universal Levenshtein DFA for bound d. It fails
// only if d is negative. Construction is pure, total, and one-shot; the
// returned *DFA is safe to share across goroutines and across any number
// of queries.
func BuildDFA(d int, opts ...Option) (*DFA, error) {
	if d < 0 {
		return nil, fmt.Errorf("BuildDFA(%d): %w", d, ErrInvalidParameter)
	}
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	width := 2*d + 1
	numVecs := 1 << width

	_, startState := normalize([]position{{offset: 0, edits: d}})

	type discovered struct {
		idx   stateIdx
		state normState
	}

	// index maps a normalized state's key to its dense index. Index 0 is
	// reserved for the dead state (the empty position set) so it never
	// needs to be "discovered" mid-walk.
	index := map[string]stateIdx{
		normState(nil).key(): deadState,
		startState.key():     deadState + 1,
	}
	worklist := []discovered{{idx: deadState + 1, state: startState}}

	table := make([][]transition, 2)
	table[deadState] = deadRow(numVecs)
	states := make([]normState, 2)
	states[deadState] = nil
	states[deadState+1] = startState

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		row := make([]transition, numVecs)
		for vec := 0; vec < numVecs; vec++ {
			shift, next := step(cur.state, uint32(vec), width)
			key := next.key()
			nidx, ok := index[key]
			if !ok {
				nidx = stateIdx(len(table))
				index[key] = nidx
				table = append(table, nil)
				states = append(states, next)
				worklist = append(worklist, discovered{idx: nidx, state: next})
			}
			row[vec] = transition{shift: int8(shift), next: nidx}
		}
		table[cur.idx] = row
	}

	dfa := &DFA{d: d, width: width, numVecs: numVecs, table: table, states: states, start: deadState + 1}

	if cfg.logger != nil {
		cfg.logger.Info("built levenshtein dfa",
			"d", d,
			"states", len(table),
			"vectors_per_state", numVecs,
		)
	}

	return dfa, nil
}

// lookup returns the tabulated transition for state s under characteristic
// vector vec. A correctly constructed DFA has a full-width row for every
// state it enumerates, so the two error cases below are unreachable for
// any *DFA returned by BuildDFA; they exist for a *DFA that has been
// corrupted or hand-assembled with a state or a row missing entries,
// which is exactly what ErrInternalInvariant documents.
func (d *DFA) lookup(s stateIdx, vec uint32) (transition, error) {
	if int(s) >= len(d.table) {
		return transition{}, fmt.Errorf("state %d: %w (table has %d states)", s, ErrInternalInvariant, len(d.table))
	}
	row := d.table[s]
	if int(vec) >= len(row) {
		return transition{}, fmt.Errorf("state %d vector %d: %w (row has %d entries)", s, vec, ErrInternalInvariant, len(row))
	}
	return row[vec], nil
}

// deadRow returns a row of self-loops used for the dead state: every
// vector transitions back to the dead state with shift 0.
func deadRow(numVecs int) []transition {
	row := make([]transition, numVecs)
	for i := range row {
		row[i] = transition{shift: 0, next: deadState}
	}
	return row
}
