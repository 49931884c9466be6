package levenshtein

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDFA_NegativeD(t *testing.T) {
	_, err := BuildDFA(-1)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestBuildDFA_ZeroD(t *testing.T) {
	dfa, err := BuildDFA(0)
	require.NoError(t, err)
	// d=0 means no edits at all: the only live state is {(0,0)}, plus the
	// dead state.
	assert.Equal(t, 2, dfa.NumStates())
}

// TestBuildDFA_Deterministic checks Testable Property 4: for a fixed d,
// the discovered state count and table shape are a pure function of d.
func TestBuildDFA_Deterministic(t *testing.T) {
	for _, d := range []int{0, 1, 2} {
		a, err := BuildDFA(d)
		require.NoError(t, err)
		b, err := BuildDFA(d)
		require.NoError(t, err)
		assert.Equal(t, a.NumStates(), b.NumStates(), "d=%d", d)
		require.Equal(t, len(a.table), len(b.table))
		for i := range a.table {
			assert.Equal(t, a.table[i], b.table[i], "d=%d state=%d", d, i)
		}
	}
}

// TestBuildDFA_Closure checks Testable Property 5: every transition's
// target state index is one of the enumerated states.
func TestBuildDFA_Closure(t *testing.T) {
	for _, d := range []int{0, 1, 2, 3} {
		dfa, err := BuildDFA(d)
		require.NoError(t, err)
		for s, row := range dfa.table {
			for v, tr := range row {
				if int(tr.next) >= len(dfa.table) {
					t.Fatalf("d=%d state=%d vec=%d: transition escapes table (next=%d, len=%d)",
						d, s, v, tr.next, len(dfa.table))
				}
			}
		}
	}
}

// TestBuildDFA_DeadStateSelfLoops checks that the dead state never
// escapes itself, for any characteristic vector.
func TestBuildDFA_DeadStateSelfLoops(t *testing.T) {
	dfa, err := BuildDFA(2)
	require.NoError(t, err)
	for v, tr := range dfa.table[deadState] {
		assert.Equal(t, deadState, tr.next, "vector %d", v)
		assert.Equal(t, int8(0), tr.shift, "vector %d", v)
	}
}

// TestBuildDFA_D1StateCount snapshot-tests the exact set of normalized
// states for d=1 against states hand-derived by tracing position.transitions,
// pruneSubsumed, and normalize for width=3 (2*1+1): starting from S0={(0,1)},
// the closure reaches four further live states before settling:
//
//	S0 = {(0,1)}             the start state
//	SA = {(0,0),(1,0)}       reached after one mismatch with budget spent
//	SB = {(0,0),(1,0),(2,0)} reached after a mismatch with a matched run ahead
//	SC = {(0,0)}             a single exhausted position, reached from SA/SB
//	SD = {(0,0),(2,0)}       reached from SB on a vector with gapped matches
//
// plus the dead state, for 6 states total.
func TestBuildDFA_D1StateCount(t *testing.T) {
	dfa, err := BuildDFA(1)
	require.NoError(t, err)

	want := []normState{
		{{offset: 0, edits: 1}},
		{{offset: 0, edits: 0}, {offset: 1, edits: 0}},
		{{offset: 0, edits: 0}, {offset: 1, edits: 0}, {offset: 2, edits: 0}},
		{{offset: 0, edits: 0}},
		{{offset: 0, edits: 0}, {offset: 2, edits: 0}},
	}
	require.Equal(t, 1+len(want), dfa.NumStates(), "dead state plus the hand-derived live states")

	got := make(map[string]bool, len(dfa.states))
	for i, s := range dfa.states {
		if stateIdx(i) == deadState {
			continue
		}
		got[s.key()] = true
	}
	require.Len(t, got, len(want), "no duplicate or extra live states")
	for _, s := range want {
		assert.True(t, got[normState(s).key()], "expected discovered state %v", s)
	}

	// Rebuilding must reproduce the exact same states (determinism, again,
	// pinned independently of TestBuildDFA_Deterministic).
	dfa2, err := BuildDFA(1)
	require.NoError(t, err)
	assert.Equal(t, dfa.NumStates(), dfa2.NumStates())
	for i, s := range dfa2.states {
		if stateIdx(i) == deadState {
			continue
		}
		assert.True(t, got[s.key()], "rebuild produced a state not in the first build: %v", s)
	}
}

// TestBuildDFA_D1StartTransitions spot-checks two concrete transitions out
// of the d=1 start state, hand-traced the same way: a characteristic
// vector with no bit set forces every position in S0 to spend its one
// edit on a deletion+insertion pair, landing on SA at shift 0; a vector
// with the low bit set (a match at the current offset) simply advances
// through S0 unchanged, at shift 1.
func TestBuildDFA_D1StartTransitions(t *testing.T) {
	dfa, err := BuildDFA(1)
	require.NoError(t, err)

	row := dfa.table[dfa.start]

	toSA := row[0b000]
	assert.Equal(t, int8(0), toSA.shift)
	assert.Equal(t,
		normState{{offset: 0, edits: 0}, {offset: 1, edits: 0}}.key(),
		dfa.states[toSA.next].key())

	staysS0 := row[0b001]
	assert.Equal(t, int8(1), staysS0.shift)
	assert.Equal(t,
		normState{{offset: 0, edits: 1}}.key(),
		dfa.states[staysS0.next].key())
}

// TestDFA_LookupReportsInternalInvariant checks that dfa.lookup — the
// helper Automaton.Step calls on every transition — actually returns
// ErrInternalInvariant, with the offending state and vector in the
// message, when handed a DFA whose table is missing entries. This can
// never happen for a *DFA returned by BuildDFA (TestBuildDFA_Closure
// checks every table is fully populated and closed), so the corruption
// is constructed by hand here.
func TestDFA_LookupReportsInternalInvariant(t *testing.T) {
	dfa, err := BuildDFA(1)
	require.NoError(t, err)

	// Truncate one row so a live vector index falls out of range.
	short := append([]transition(nil), dfa.table[dfa.start][:1]...)
	corrupted := &DFA{
		d: dfa.d, width: dfa.width, numVecs: dfa.numVecs,
		table: append([][]transition(nil), dfa.table...),
		states: dfa.states, start: dfa.start,
	}
	corrupted.table[dfa.start] = short

	_, err = corrupted.lookup(dfa.start, 0b010)
	require.ErrorIs(t, err, ErrInternalInvariant)
	assert.Contains(t, err.Error(), "vector")

	_, err = corrupted.lookup(stateIdx(len(corrupted.table)+5), 0)
	require.ErrorIs(t, err, ErrInternalInvariant)
	assert.Contains(t, err.Error(), "state")
}

func TestBuildDFA_WidthAndVectorCount(t *testing.T) {
	for d := 0; d <= 3; d++ {
		dfa, err := BuildDFA(d)
		require.NoError(t, err)
		assert.Equal(t, 2*d+1, dfa.width)
		assert.Equal(t, 1<<(2*d+1), dfa.numVecs)
		for _, row := range dfa.table {
			assert.Len(t, row, dfa.numVecs)
		}
	}
}
