// Package fuzzytrie provides approximate string matching over a dictionary
// of words: given a query and a nonnegative edit-distance bound d, Search
// returns every word stored in a Trie whose Levenshtein distance to the
// query is at most d.
//
// The matching is driven by a parametric Levenshtein DFA (DFA, built once
// per bound via BuildDFA and reusable across any number of queries) rather
// than by computing edit distance against every dictionary word: Search
// walks the Trie depth-first, advancing a query-specific Automaton along
// each edge, and prunes whole subtrees the moment the automaton reports
// that no further extension can match.
//
// Basic usage:
//
//	dfa, err := fuzzytrie.BuildDFA(2)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	t := fuzzytrie.NewTrie()
//	t.Add("kitten")
//	t.Add("sitting")
//
//	auto, err := fuzzytrie.NewAutomaton(dfa, "kitten")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for word := range fuzzytrie.Search(t, auto) {
//		fmt.Println(word)
//	}
//
// A *DFA is immutable once built and safe to share across goroutines. A
// *Trie allows any number of concurrent readers as long as no writer (Add
// or Delete) is active concurrently; the package leaves synchronization
// to the caller rather than adding its own locking. A *Automaton owns a
// small vector cache and therefore belongs to one search at a time;
// building a fresh Automaton per query is cheap.
//
// Characters are compared as Unicode code points (runes), not bytes or
// grapheme clusters; no case folding, normalization, or locale-aware
// comparison is performed. Only unit-cost insertion, deletion, and
// substitution are modeled — transpositions (Damerau–Levenshtein) and
// weighted edits are out of scope. Dictionary ingestion, persistence of
// tries or DFAs, and a CLI are all out of scope: this package is an
// in-process API with no I/O.
package fuzzytrie
