package fuzzytrie

import (
	"iter"
	"sort"
)

// searchEdge is one outgoing edge of a trie node, paired with its target.
type searchEdge struct {
	r rune
	n *trieNode
}

// sortedEdges returns n's outgoing edges in a deterministic order (sorted
// by rune), so two runs of Search over the same trie and automaton
// always emit matches in the same order, without requiring Trie itself
// to maintain ordered storage.
func sortedEdges(n *trieNode) []searchEdge {
	edges := make([]searchEdge, 0, len(n.children))
	for r, c := range n.children {
		edges = append(edges, searchEdge{r, c})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].r < edges[j].r })
	return edges
}

// searchFrame is one level of the explicit traversal stack: the edges
// still to be explored at this trie node, the automaton state reached on
// arrival, and (for every frame but the root) the character that was
// consumed to get here, so popping the frame can unwind the path buffer
// without recursion, keeping stack depth bounded by available memory
// rather than by the Go call stack.
type searchFrame struct {
	edges     []searchEdge
	idx       int
	state     AutomatonState
	edgeIn    rune
	hasEdgeIn bool
}

// Search depth-first walks t, advancing a along each edge, and yields
// every word stored in t whose edit distance from a's query is within a's
// bound. Matches are produced in the deterministic traversal order of
// sortedEdges; a consumer may stop early by returning false from its
// range-over-func loop (via break), which is the only cancellation this
// package needs — each step of the walk is synchronous and CPU-bound, so
// there is nothing to cancel asynchronously.
//
// A subtree is pruned — never visited — the moment a.CanMatch reports
// false for the state reached on its entry edge.
func Search(t *Trie, a *Automaton) iter.Seq[string] {
	return func(yield func(string) bool) {
		if t == nil || a == nil {
			return
		}

		path := make([]rune, 0, 16)
		stack := []searchFrame{{edges: sortedEdges(t.root), state: a.Initial()}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			if top.idx >= len(top.edges) {
				stack = stack[:len(stack)-1]
				if top.hasEdgeIn {
					path = path[:len(path)-1]
				}
				continue
			}

			edge := top.edges[top.idx]
			top.idx++

			next := a.Step(top.state, edge.r)
			if !a.CanMatch(next) {
				continue
			}

			path = append(path, edge.r)
			if edge.n.end && a.IsMatch(next) {
				if !yield(string(path)) {
					return
				}
			}

			stack = append(stack, searchFrame{
				edges:     sortedEdges(edge.n),
				state:     next,
				edgeIn:    edge.r,
				hasEdgeIn: true,
			})
		}
	}
}
