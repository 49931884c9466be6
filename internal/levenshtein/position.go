// Package levenshtein builds and evaluates the parametric Levenshtein DFA
// described in the module's DESIGN.md ledger: a one-time, d-only
// precomputation that enumerates every reachable normalized NFA state set
// and tabulates transitions keyed by characteristic vectors of width 2d+1.
// The resulting *DFA is immutable and can be shared by any number of query
// Automaton values built from it.
package levenshtein

import "sort"

// position is a single NFA position (o, e): after consuming some candidate
// prefix, the simulation is aligned at query offset o with e edits still
// available.
type position struct {
	offset int
	edits  int
}

// vecBit reports whether the vector has a true entry at idx, treating any
// index outside [0, width) as false.
func vecBit(vec uint32, idx, width int) bool {
	if idx < 0 || idx >= width {
		return false
	}
	return vec&(1<<uint(idx)) != 0
}

// transitions computes the NFA successors of a single position under
// characteristic vector vec of the given width, per the position-transition
// rules: a matched consume, or (with budget remaining) deletion,
// substitution, insertion, and jump-ahead-to-nearest-match.
func (p position) transitions(vec uint32, width int) []position {
	if vecBit(vec, p.offset, width) {
		return []position{{p.offset + 1, p.edits}}
	}
	if p.edits == 0 {
		return nil
	}
	next := []position{
		{p.offset + 1, p.edits - 1}, // deletion of the query character
		{p.offset, p.edits - 1},     // insertion into the candidate
	}
	for k := 1; p.offset+k < width; k++ {
		if vecBit(vec, p.offset+k, width) {
			if p.edits-k >= 0 {
				next = append(next, position{p.offset + k + 1, p.edits - k})
			}
			break
		}
	}
	return next
}

// subsumes reports whether p subsumes q: every string reachable from q is
// reachable from p using no more edits, making q redundant in the same
// state set.
func (p position) subsumes(q position) bool {
	if p == q {
		return false
	}
	diff := p.offset - q.offset
	if diff < 0 {
		diff = -diff
	}
	return p.edits-q.edits >= diff
}

// normState is the canonical representative of an NFA state set: the
// positions, rebased so the minimum offset is zero, sorted by (offset,
// edits). Two raw state sets that differ only by a common offset
// translation normalize to the same normState, which is what keeps the
// DFA finite.
type normState []position

func (s normState) Len() int      { return len(s) }
func (s normState) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s normState) Less(i, j int) bool {
	if s[i].offset != s[j].offset {
		return s[i].offset < s[j].offset
	}
	return s[i].edits < s[j].edits
}

// key returns a comparable string suitable for use as a map key during
// construction. It is never used on the per-query hot path: once
// construction finishes, states are referred to only by dense index.
func (s normState) key() string {
	buf := make([]byte, 0, len(s)*4)
	for _, p := range s {
		buf = append(buf, byte(p.offset), byte('|'), byte(p.edits), byte(';'))
	}
	return string(buf)
}

// pruneSubsumed removes every position subsumed by another position in the
// same set, and drops any position whose edit budget has gone negative.
func pruneSubsumed(raw []position) []position {
	live := make([]position, 0, len(raw))
	for _, p := range raw {
		if p.edits < 0 {
			continue
		}
		redundant := false
		for _, q := range raw {
			if q.edits >= 0 && q.subsumes(p) {
				redundant = true
				break
			}
		}
		if !redundant {
			live = append(live, p)
		}
	}
	return dedup(live)
}

// dedup removes exact duplicate positions (different positions of one
// state can produce the same successor, so the raw union often contains
// the same position twice, and subsumes never removes an exact copy).
func dedup(ps []position) []position {
	seen := make(map[position]struct{}, len(ps))
	out := ps[:0:0]
	for _, p := range ps {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// normalize rebases a pruned position set so its minimum offset is zero and
// returns that minimum offset (the "shift") alongside the canonical,
// sorted normState. An empty set normalizes to (0, nil): the dead state.
func normalize(ps []position) (shift int, s normState) {
	if len(ps) == 0 {
		return 0, nil
	}
	min := ps[0].offset
	for _, p := range ps[1:] {
		if p.offset < min {
			min = p.offset
		}
	}
	s = make(normState, len(ps))
	for i, p := range ps {
		s[i] = position{offset: p.offset - min, edits: p.edits}
	}
	sort.Sort(s)
	return min, s
}

// step unions the transitions of every position in s under vec, prunes by
// subsumption, and normalizes the result into a canonical rebased form.
func step(s normState, vec uint32, width int) (shift int, next normState) {
	var raw []position
	for _, p := range s {
		raw = append(raw, p.transitions(vec, width)...)
	}
	pruned := pruneSubsumed(raw)
	return normalize(pruned)
}
