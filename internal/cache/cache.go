// Package cache implements the bounded key-value substrate (§4.6): three
// interchangeable eviction policies over user-agent strings to partial
// results, a striped wrapper that trades memory for contention, and the
// resolver that composes a policy with a base resolver (§4.7).
package cache

import "github.com/edgecomet/uaparser/internal/ruleset"

// Cache is a bounded key→value store. It knows nothing about facets; keys
// are raw user-agent strings and values are whatever the caller put there
// (§4.6). Get may mutate internal metadata (recency, visited bits,
// frequency counters) even on what looks like a read.
type Cache interface {
	Get(key string) (ruleset.Result, bool)
	Put(key string, value ruleset.Result)
}
