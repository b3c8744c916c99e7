// Package ruleset compiles declarative rule records into callable
// match-and-extract units, and owns the record types the rest of the
// engine resolves into (UserAgent, OS, Device, Result, Facet).
package ruleset

import "go.uber.org/zap"

// Ruleset holds three ordered, immutable matcher lists — one per facet.
// Matchers are evaluated in order; the first match wins for that facet
// (§3). A Ruleset is read-only after Build returns and is safe to share
// across goroutines without synchronisation.
type Ruleset struct {
	UA     []*UAMatcher
	OS     []*OSMatcher
	Device []*DeviceMatcher
}

// Stats reports the rule counts loaded per facet, for startup logging and
// test assertions about a loaded ruleset's shape.
type Stats struct {
	UA, OS, Device int
}

// Stats returns the per-facet rule counts.
func (rs *Ruleset) Stats() Stats {
	return Stats{UA: len(rs.UA), OS: len(rs.OS), Device: len(rs.Device)}
}

// Build compiles and validates a full set of rule records into a Ruleset.
// A single invalid record — a regex that fails to compile, or a template
// referencing a capture group the pattern doesn't have — aborts the whole
// build; the caller gets no partial ruleset (§4.9, §7). log may be nil, in
// which case construction is silent (falls back to a no-op logger).
func Build(uaRules []UARuleRecord, osRules []OSRuleRecord, deviceRules []DeviceRuleRecord, log *zap.Logger) (*Ruleset, error) {
	if log == nil {
		log = zap.NewNop()
	}

	ua := make([]*UAMatcher, 0, len(uaRules))
	for i, r := range uaRules {
		m, err := NewUAMatcher(r)
		if err != nil {
			return nil, newRuleError(FacetUserAgent, i, r.Regex, err)
		}
		ua = append(ua, m)
	}

	os := make([]*OSMatcher, 0, len(osRules))
	for i, r := range osRules {
		m, err := NewOSMatcher(r)
		if err != nil {
			return nil, newRuleError(FacetOS, i, r.Regex, err)
		}
		os = append(os, m)
	}

	device := make([]*DeviceMatcher, 0, len(deviceRules))
	for i, r := range deviceRules {
		m, err := NewDeviceMatcher(r)
		if err != nil {
			return nil, newRuleError(FacetDevice, i, r.Regex, err)
		}
		device = append(device, m)
	}

	log.Debug("ruleset compiled",
		zap.Int("ua_rules", len(ua)),
		zap.Int("os_rules", len(os)),
		zap.Int("device_rules", len(device)))

	return &Ruleset{UA: ua, OS: os, Device: device}, nil
}
