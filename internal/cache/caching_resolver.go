package cache

import (
	"github.com/edgecomet/uaparser/internal/resolver"
	"github.com/edgecomet/uaparser/internal/ruleset"
)

// CachingResolver wraps a base resolver with a Cache (§4.7). A cache hit
// that already covers every requested facet short-circuits the base
// resolver entirely; a partial hit only asks the base resolver for the
// missing facets and merges the two, preferring the cached value for any
// facet both sides produced (cached values are immutable and authoritative
// once written).
type CachingResolver struct {
	base    resolver.Resolver
	cache   Cache
	metrics *Metrics
}

// NewCachingResolver wraps base with cache. metrics may be nil, in which
// case hit/miss counts are not recorded.
func NewCachingResolver(base resolver.Resolver, c Cache, metrics *Metrics) *CachingResolver {
	return &CachingResolver{base: base, cache: c, metrics: metrics}
}

// Resolve implements resolver.Resolver.
func (r *CachingResolver) Resolve(ua string, requested ruleset.Facet) ruleset.Result {
	hit, ok := r.cache.Get(ua)
	if !ok {
		r.metrics.recordMiss()
		full := r.base.Resolve(ua, requested)
		r.cache.Put(ua, full)
		return full.Narrow(requested)
	}

	missing := requested &^ hit.Requested
	if missing.IsEmpty() {
		r.metrics.recordHit()
		return hit.Narrow(requested)
	}

	r.metrics.recordPartialHit()
	fresh := r.base.Resolve(ua, missing)
	merged := mergeResults(hit, fresh, requested)
	r.cache.Put(ua, merged)
	return merged.Narrow(requested)
}

// mergeResults combines a cached partial result with a freshly resolved one,
// keeping the cached facet whenever both sides have it (§4.7: "preferring
// the already-cached value where both exist").
func mergeResults(cached, fresh ruleset.Result, requested ruleset.Facet) ruleset.Result {
	merged := ruleset.Result{
		Requested: cached.Requested.With(fresh.Requested),
		UA:        cached.UA,
	}
	merged.UserAgent = cached.UserAgent
	if merged.UserAgent == nil {
		merged.UserAgent = fresh.UserAgent
	}
	merged.OS = cached.OS
	if merged.OS == nil {
		merged.OS = fresh.OS
	}
	merged.Device = cached.Device
	if merged.Device == nil {
		merged.Device = fresh.Device
	}
	return merged
}
