package main

import (
	"fmt"
	"time"

	"github.com/edgecomet/uaparser"
)

// Config is the validated shape of uabench's command-line flags, grounded
// on the teacher's load tester's own flag-struct/validate-then-run split
// (tests/loadtest/main.go's Config + validateParameters).
type Config struct {
	RulesPath string

	Resolver uaparser.ResolverKind
	Cache    uaparser.CacheKind

	CacheCapacity int
	CacheShards   int

	Workers  int
	Duration time.Duration

	LogLevel string
}

func validateConfig(rulesPath, resolverStr, cacheStr string, capacity, shards, workers int, duration time.Duration, logLevel string) (Config, error) {
	if rulesPath == "" {
		return Config{}, fmt.Errorf("-rules is required")
	}
	if workers <= 0 {
		return Config{}, fmt.Errorf("-workers must be a positive integer, got %d", workers)
	}
	if duration <= 0 {
		return Config{}, fmt.Errorf("-duration must be a positive duration, got %s", duration)
	}

	resolverKind, err := parseResolverKind(resolverStr)
	if err != nil {
		return Config{}, err
	}
	cacheKind, err := parseCacheKind(cacheStr)
	if err != nil {
		return Config{}, err
	}

	return Config{
		RulesPath:     rulesPath,
		Resolver:      resolverKind,
		Cache:         cacheKind,
		CacheCapacity: capacity,
		CacheShards:   shards,
		Workers:       workers,
		Duration:      duration,
		LogLevel:      logLevel,
	}, nil
}

func parseResolverKind(s string) (uaparser.ResolverKind, error) {
	switch s {
	case "basic":
		return uaparser.ResolverBasic, nil
	case "regexset":
		return uaparser.ResolverRegexSet, nil
	default:
		return 0, fmt.Errorf("-resolver must be %q or %q, got %q", "basic", "regexset", s)
	}
}

func parseCacheKind(s string) (uaparser.CacheKind, error) {
	switch s {
	case "none":
		return uaparser.CacheNone, nil
	case "lru":
		return uaparser.CacheLRU, nil
	case "sieve":
		return uaparser.CacheSIEVE, nil
	case "s3fifo":
		return uaparser.CacheS3FIFO, nil
	default:
		return 0, fmt.Errorf("-cache must be one of %q, %q, %q, %q, got %q", "none", "lru", "sieve", "s3fifo", s)
	}
}
