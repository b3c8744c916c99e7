package resolver

import "github.com/edgecomet/uaparser/internal/ruleset"

// Basic is the linear-scan resolver (§4.4): for each requested facet it
// walks that facet's matcher list in order and stops at the first match.
// O(R) regex evaluations per facet in the worst case — tolerable only with
// a caching layer in front (§4.4).
type Basic struct {
	rules *ruleset.Ruleset
}

// NewBasic wraps a compiled ruleset in a Basic resolver.
func NewBasic(rules *ruleset.Ruleset) *Basic {
	return &Basic{rules: rules}
}

// Resolve implements Resolver.
func (b *Basic) Resolve(ua string, requested ruleset.Facet) ruleset.Result {
	out := ruleset.Result{Requested: requested, UA: ua}

	if requested.Has(ruleset.FacetUserAgent) {
		for _, m := range b.rules.UA {
			if v, ok := m.Match(ua); ok {
				out.UserAgent = v
				break
			}
		}
	}
	if requested.Has(ruleset.FacetOS) {
		for _, m := range b.rules.OS {
			if v, ok := m.Match(ua); ok {
				out.OS = v
				break
			}
		}
	}
	if requested.Has(ruleset.FacetDevice) {
		for _, m := range b.rules.Device {
			if v, ok := m.Match(ua); ok {
				out.Device = v
				break
			}
		}
	}

	return out
}
