package main

import (
	"fmt"
	"time"
)

// Report is the benchmark run's final summary, grounded on the teacher's
// printFinalReport shape (tests/loadtest/main.go) but measuring parses
// instead of HTTP requests.
type Report struct {
	RunID string

	Elapsed time.Duration
	Parses  uint64

	ResolverKind string
	CacheKind    string

	CacheLookups    uint64
	CacheHits       uint64
	CacheHitRatio   float64
	UARuleCount     int
	OSRuleCount     int
	DeviceRuleCount int
}

func (r Report) Throughput() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.Parses) / secs
}

func (r Report) String() string {
	s := fmt.Sprintf(
		"uabench run %s\n"+
			"  resolver:       %s\n"+
			"  cache:          %s\n"+
			"  rules:          %d user-agent / %d os / %d device\n"+
			"  elapsed:        %s\n"+
			"  parses:         %d\n"+
			"  throughput:     %.0f parses/sec\n",
		r.RunID, r.ResolverKind, r.CacheKind,
		r.UARuleCount, r.OSRuleCount, r.DeviceRuleCount,
		r.Elapsed.Round(time.Millisecond), r.Parses, r.Throughput(),
	)
	if r.CacheKind != "none" {
		s += fmt.Sprintf(
			"  cache lookups:  %d\n"+
				"  cache hits:     %d\n"+
				"  cache hit rate: %.2f%%\n",
			r.CacheLookups, r.CacheHits, r.CacheHitRatio*100,
		)
	}
	return s
}
