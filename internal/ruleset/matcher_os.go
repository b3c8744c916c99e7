package ruleset

import "regexp"

// OSMatcher is a compiled OS rule: a pattern plus up to five substitution
// templates (§4.2). Default extraction when a template is absent:
// family=$1, major=$2, minor=$3, patch=$4, patch_minor=$5.
type OSMatcher struct {
	pattern    *regexp.Regexp
	family     *string
	major      *string
	minor      *string
	patch      *string
	patchMinor *string
}

// NewOSMatcher compiles an OSRuleRecord into an OSMatcher.
func NewOSMatcher(r OSRuleRecord) (*OSMatcher, error) {
	maxGroup := maxBackref(r.OSReplacement, r.OSV1Replacement, r.OSV2Replacement, r.OSV3Replacement, r.OSV4Replacement)
	re, err := compilePattern(r.Regex, false, maxGroup)
	if err != nil {
		return nil, err
	}
	return &OSMatcher{
		pattern:    re,
		family:     r.OSReplacement,
		major:      r.OSV1Replacement,
		minor:      r.OSV2Replacement,
		patch:      r.OSV3Replacement,
		patchMinor: r.OSV4Replacement,
	}, nil
}

// Source returns the compiled pattern's text, for callers that build a
// prefilter index over the same patterns (§4.5).
func (m *OSMatcher) Source() string { return m.pattern.String() }

// Match applies the matcher to ua, returning nil, false on no match.
func (m *OSMatcher) Match(ua string) (*OS, bool) {
	groups := m.pattern.FindStringSubmatch(ua)
	if groups == nil {
		return nil, false
	}

	family, ok := resolveField(m.family, groups, 1)
	if !ok {
		return nil, false
	}

	out := &OS{Family: family}
	out.Major, _ = resolveField(m.major, groups, 2)
	out.Minor, _ = resolveField(m.minor, groups, 3)
	out.Patch, _ = resolveField(m.patch, groups, 4)
	out.PatchMinor, _ = resolveField(m.patchMinor, groups, 5)
	return out, true
}
