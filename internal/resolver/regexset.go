package resolver

import "github.com/edgecomet/uaparser/internal/ruleset"

// RegexSetResolver is the prefiltered resolver (§4.5): it owns the same
// rule lists as Basic, plus a per-facet multi-pattern index that narrows a
// full linear scan down to a small candidate set before any individual rule
// regex runs. On a ruleset with many rules and few real matches per lookup,
// this avoids the bulk of the O(R) regex evaluations Basic pays on every
// call.
//
// It is not, and is not meant to be, an equivalent to a true regex-set
// engine (RE2::Set and friends, unavailable in the standard regexp
// package): the index only ever narrows candidates, it never matches on its
// own. Every reported candidate is still verified by running its actual
// compiled pattern (§4.9); a prefilter false positive costs an extra regex
// evaluation, never a wrong answer.
type RegexSetResolver struct {
	rules  *ruleset.Ruleset
	ua     *facetIndex
	os     *facetIndex
	device *facetIndex
}

// NewRegexSetResolver builds the per-facet indexes over rules and returns a
// resolver ready to serve lookups. Index construction walks every compiled
// pattern once; it is meant to run at load time, not per request.
func NewRegexSetResolver(rules *ruleset.Ruleset) *RegexSetResolver {
	uaSrc := make([]string, len(rules.UA))
	for i, m := range rules.UA {
		uaSrc[i] = m.Source()
	}
	osSrc := make([]string, len(rules.OS))
	for i, m := range rules.OS {
		osSrc[i] = m.Source()
	}
	deviceSrc := make([]string, len(rules.Device))
	for i, m := range rules.Device {
		deviceSrc[i] = m.Source()
	}

	return &RegexSetResolver{
		rules:  rules,
		ua:     buildFacetIndex(uaSrc),
		os:     buildFacetIndex(osSrc),
		device: buildFacetIndex(deviceSrc),
	}
}

// Resolve implements Resolver. For each requested facet it asks the index
// for the candidate rule indices, then applies each candidate's own regex in
// ascending index order and extracts from the first one that matches — the
// same first-match-by-rule-order result as Basic (§3, §4.5).
func (r *RegexSetResolver) Resolve(ua string, requested ruleset.Facet) ruleset.Result {
	out := ruleset.Result{Requested: requested, UA: ua}

	if requested.Has(ruleset.FacetUserAgent) {
		for _, i := range r.ua.candidates(ua) {
			if v, ok := r.rules.UA[i].Match(ua); ok {
				out.UserAgent = v
				break
			}
		}
	}
	if requested.Has(ruleset.FacetOS) {
		for _, i := range r.os.candidates(ua) {
			if v, ok := r.rules.OS[i].Match(ua); ok {
				out.OS = v
				break
			}
		}
	}
	if requested.Has(ruleset.FacetDevice) {
		for _, i := range r.device.candidates(ua) {
			if v, ok := r.rules.Device[i].Match(ua); ok {
				out.Device = v
				break
			}
		}
	}

	return out
}
