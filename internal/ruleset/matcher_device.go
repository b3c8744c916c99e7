package ruleset

import "regexp"

// DeviceMatcher is a compiled device rule: a pattern, an optional
// case-insensitivity flag, and up to three substitution templates (§4.3).
// Default extraction when a template is absent: family=$1, brand=none
// (brand requires an explicit template to ever be produced), model=$1.
// Case sensitivity affects only pattern matching, never template
// substitution (§4.3, §9).
type DeviceMatcher struct {
	pattern *regexp.Regexp
	family  *string
	brand   *string
	model   *string
}

// NewDeviceMatcher compiles a DeviceRuleRecord into a DeviceMatcher. The
// only recognised RegexFlag value is "i" (case-insensitive); any other
// non-empty flag is a load-time error.
func NewDeviceMatcher(r DeviceRuleRecord) (*DeviceMatcher, error) {
	caseInsensitive := false
	switch r.RegexFlag {
	case "":
	case "i":
		caseInsensitive = true
	default:
		return nil, errUnknownRegexFlag(r.RegexFlag)
	}

	maxGroup := maxBackref(r.DeviceReplacement, r.BrandReplacement, r.ModelReplacement)
	re, err := compilePattern(r.Regex, caseInsensitive, maxGroup)
	if err != nil {
		return nil, err
	}
	return &DeviceMatcher{
		pattern: re,
		family:  r.DeviceReplacement,
		brand:   r.BrandReplacement,
		model:   r.ModelReplacement,
	}, nil
}

// Source returns the compiled pattern's text, for callers that build a
// prefilter index over the same patterns (§4.5).
func (m *DeviceMatcher) Source() string { return m.pattern.String() }

// Match applies the matcher to ua, returning nil, false on no match.
func (m *DeviceMatcher) Match(ua string) (*Device, bool) {
	groups := m.pattern.FindStringSubmatch(ua)
	if groups == nil {
		return nil, false
	}

	family, ok := resolveField(m.family, groups, 1)
	if !ok {
		return nil, false
	}

	out := &Device{Family: family}
	out.Brand, _ = resolveField(m.brand, groups, 0) // no default group: brand needs an explicit template
	out.Model, _ = resolveField(m.model, groups, 1)
	return out, true
}
