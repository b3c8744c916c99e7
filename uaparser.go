// Package uaparser parses User-Agent strings into browser, OS, and device
// records. It is meant to be embedded inside higher-level services: build a
// *Parser once from a rule file, keep it, and call its methods from as many
// goroutines as you like.
//
// The facade is deliberately small: Parse for everything at once, and
// ParseUserAgent/ParseOS/ParseDevice when only one facet is needed (the
// underlying resolver only pays for the facets requested).
package uaparser

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/edgecomet/uaparser/internal/cache"
	"github.com/edgecomet/uaparser/internal/obs"
	"github.com/edgecomet/uaparser/internal/resolver"
	"github.com/edgecomet/uaparser/internal/ruleset"
	"github.com/edgecomet/uaparser/internal/uacore/rulesource"
)

// Type aliases for backward compatibility: the record and facet types live
// in internal/ruleset (where the matching logic that produces them also
// lives), but external callers of this module address them here, at the
// package boundary, without ever importing an internal path.
type (
	Result    = ruleset.Result
	UserAgent = ruleset.UserAgent
	OS        = ruleset.OS
	Device    = ruleset.Device
	Facet     = ruleset.Facet
)

// Facet values, re-exported the same way.
const (
	FacetUserAgent = ruleset.FacetUserAgent
	FacetOS        = ruleset.FacetOS
	FacetDevice    = ruleset.FacetDevice
)

// AllFacets returns the full facet set (user agent, OS, and device).
func AllFacets() Facet { return ruleset.AllFacets() }

// ResolverKind selects which base resolver backs a Parser (§4.4/§4.5).
type ResolverKind int

const (
	// ResolverBasic is the plain linear scan: simplest, and fast enough for
	// small rulesets or low request volume.
	ResolverBasic ResolverKind = iota
	// ResolverRegexSet adds the multi-pattern literal prefilter; preferred
	// for larger rulesets under sustained load.
	ResolverRegexSet
)

// CacheKind selects the eviction policy wrapping the base resolver (§4.6).
// CacheNone disables caching entirely.
type CacheKind int

const (
	CacheNone CacheKind = iota
	CacheLRU
	CacheSIEVE
	CacheS3FIFO
)

// Config controls how a Parser is built from a rule file.
type Config struct {
	RulesPath string

	Resolver ResolverKind

	Cache         CacheKind
	CacheCapacity int // per-shard capacity when Cache != CacheNone; default 10000
	CacheShards   int // 0 defaults to runtime.GOMAXPROCS(0); ignored when Cache == CacheNone

	Logger  *zap.Logger
	Metrics *cache.Metrics
}

// Parser is a fully built, immutable, concurrency-safe User-Agent parser.
// Build one with New and keep it; all its methods are safe to call from any
// number of goroutines at once.
type Parser struct {
	resolver resolver.Resolver
	stats    ruleset.Stats
}

// New loads rules from cfg.RulesPath, compiles them, and builds the
// resolver/cache stack cfg describes.
func New(cfg Config) (*Parser, error) {
	log := obs.NopIfNil(cfg.Logger)

	uaRules, osRules, deviceRules, err := rulesource.Load(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("uaparser: %w", err)
	}

	rs, err := ruleset.Build(uaRules, osRules, deviceRules, log)
	if err != nil {
		return nil, fmt.Errorf("uaparser: %w", err)
	}

	var base resolver.Resolver
	switch cfg.Resolver {
	case ResolverRegexSet:
		base = resolver.NewRegexSetResolver(rs)
	default:
		base = resolver.NewBasic(rs)
	}

	r := base
	if cfg.Cache != CacheNone {
		capacity := cfg.CacheCapacity
		if capacity == 0 {
			capacity = 10000
		}
		newShard := shardFactory(cfg.Cache, capacity)
		sharded := cache.NewSharded(cfg.CacheShards, newShard)
		r = cache.NewCachingResolver(base, sharded, cfg.Metrics)
	}

	log.Debug("uaparser: parser built",
		zap.Int("ua_rules", rs.Stats().UA),
		zap.Int("os_rules", rs.Stats().OS),
		zap.Int("device_rules", rs.Stats().Device))

	return &Parser{resolver: r, stats: rs.Stats()}, nil
}

func shardFactory(kind CacheKind, capacity int) func() cache.Cache {
	switch kind {
	case CacheSIEVE:
		return func() cache.Cache { return cache.NewSIEVE(capacity) }
	case CacheS3FIFO:
		return func() cache.Cache { return cache.NewS3FIFO(capacity) }
	default:
		return func() cache.Cache { return cache.NewLRU(capacity) }
	}
}

// Stats reports the rule counts the parser was built with.
func (p *Parser) Stats() ruleset.Stats { return p.stats }

// Parse resolves every facet for ua (§4.8).
func (p *Parser) Parse(ua string) Result {
	return p.resolver.Resolve(ua, AllFacets())
}

// ParseUserAgent resolves only the browser facet for ua, or nil if no rule
// matched.
func (p *Parser) ParseUserAgent(ua string) *UserAgent {
	return p.resolver.Resolve(ua, FacetUserAgent).UserAgent
}

// ParseOS resolves only the OS facet for ua, or nil if no rule matched.
func (p *Parser) ParseOS(ua string) *OS {
	return p.resolver.Resolve(ua, FacetOS).OS
}

// ParseDevice resolves only the device facet for ua, or nil if no rule
// matched.
func (p *Parser) ParseDevice(ua string) *Device {
	return p.resolver.Resolve(ua, FacetDevice).Device
}

var defaultParser atomic.Pointer[Parser]

// SetDefault installs p as the process-wide default parser used by the
// package-level Parse/ParseUserAgent/ParseOS/ParseDevice functions.
// Replacement is an atomic pointer swap (§5): in-flight calls complete
// against whichever parser they observed at entry, never a half-swapped
// state.
func SetDefault(p *Parser) { defaultParser.Store(p) }

// Default returns the current process-wide default parser, or nil if
// SetDefault was never called.
func Default() *Parser { return defaultParser.Load() }

// Parse resolves every facet for ua using the default parser. Panics if no
// default parser has been installed via SetDefault.
func Parse(ua string) Result { return mustDefault().Parse(ua) }

// ParseUserAgent resolves only the browser facet using the default parser.
func ParseUserAgent(ua string) *UserAgent { return mustDefault().ParseUserAgent(ua) }

// ParseOS resolves only the OS facet using the default parser.
func ParseOS(ua string) *OS { return mustDefault().ParseOS(ua) }

// ParseDevice resolves only the device facet using the default parser.
func ParseDevice(ua string) *Device { return mustDefault().ParseDevice(ua) }

func mustDefault() *Parser {
	p := Default()
	if p == nil {
		panic("uaparser: no default parser installed; call SetDefault first")
	}
	return p
}
