package resolver

import (
	"sort"

	ahocorasick "github.com/BobuSumisu/aho-corasick"
)

// facetIndex is the multi-pattern prefilter for one facet's rule list
// (§4.5): a single pass over the input string reports every rule that could
// possibly match, without running any of the individual rule regexes.
//
// Rules whose pattern yields a required literal (see requiredLiteral) are
// indexed by that literal in an Aho-Corasick automaton, so one scan of the
// input finds every rule whose literal is present. Rules with no
// extractable literal are kept in an "unconditional" list and always
// reported as candidates — the index has no opinion on them either way, so
// it must never rule them out.
type facetIndex struct {
	trie          *ahocorasick.Trie
	byLiteral     map[string][]int
	unconditional []int
}

// buildFacetIndex builds a prefilter index over sources, the ordered list of
// a facet's compiled pattern texts (one per matcher, in rule order).
func buildFacetIndex(sources []string) *facetIndex {
	idx := &facetIndex{byLiteral: make(map[string][]int)}

	var literals []string
	seen := make(map[string]bool)
	for i, src := range sources {
		lit, ok := requiredLiteral(src)
		if !ok {
			idx.unconditional = append(idx.unconditional, i)
			continue
		}
		idx.byLiteral[lit] = append(idx.byLiteral[lit], i)
		if !seen[lit] {
			seen[lit] = true
			literals = append(literals, lit)
		}
	}

	if len(literals) > 0 {
		idx.trie = ahocorasick.NewTrieBuilder().AddStrings(literals).Build()
	}
	return idx
}

// candidates returns, in ascending rule-index order and with no duplicates,
// every rule index that might match ua.
func (idx *facetIndex) candidates(ua string) []int {
	set := make(map[int]struct{}, len(idx.unconditional))
	for _, i := range idx.unconditional {
		set[i] = struct{}{}
	}
	if idx.trie != nil {
		for _, m := range idx.trie.MatchString(ua) {
			for _, i := range idx.byLiteral[m.Pattern()] {
				set[i] = struct{}{}
			}
		}
	}

	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
