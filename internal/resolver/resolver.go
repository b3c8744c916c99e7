// Package resolver implements the base resolver layer (§4.4-4.5): the
// orchestrators that own a full ruleset and return the first match per
// requested facet.
package resolver

import "github.com/edgecomet/uaparser/internal/ruleset"

// Resolver is the universal protocol every layer of the stack — base,
// caching, sharded — implements: a callable from a User-Agent string and a
// requested facet set to a partial result (§6, §9). Implementations MUST
// return at least the requested facets; they MAY return more if
// computationally free, and MUST echo the requested set in the result so
// callers can distinguish "not requested" from "requested but unmatched".
type Resolver interface {
	Resolve(ua string, requested ruleset.Facet) ruleset.Result
}
