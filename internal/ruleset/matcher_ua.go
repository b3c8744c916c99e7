package ruleset

import (
	"regexp"
	"strings"
)

// UAMatcher is a compiled user-agent rule: a pattern plus up to four
// substitution templates (§4.1). Default extraction when a template is
// absent: family=$1, major=$2, minor=$3, patch=$4. patch_minor has no
// template in the uap-core corpus and always comes from $5 directly.
type UAMatcher struct {
	pattern *regexp.Regexp
	family  *string
	major   *string
	minor   *string
	patch   *string
}

// NewUAMatcher compiles a UARuleRecord into a UAMatcher, validating that any
// $N back-reference in its templates stays within the compiled pattern's
// capture group count.
func NewUAMatcher(r UARuleRecord) (*UAMatcher, error) {
	maxGroup := maxBackref(r.FamilyReplacement, r.V1Replacement, r.V2Replacement, r.V3Replacement)
	re, err := compilePattern(r.Regex, false, maxGroup)
	if err != nil {
		return nil, err
	}
	return &UAMatcher{
		pattern: re,
		family:  r.FamilyReplacement,
		major:   r.V1Replacement,
		minor:   r.V2Replacement,
		patch:   r.V3Replacement,
	}, nil
}

// Source returns the compiled pattern's text, for callers that build a
// prefilter index over the same patterns (§4.5).
func (m *UAMatcher) Source() string { return m.pattern.String() }

// Match applies the matcher to ua. It returns nil, false on no match —
// never an error; runtime non-match is the common case (§4.9).
func (m *UAMatcher) Match(ua string) (*UserAgent, bool) {
	groups := m.pattern.FindStringSubmatch(ua)
	if groups == nil {
		return nil, false
	}

	family, ok := resolveField(m.family, groups, 1)
	if !ok {
		return nil, false
	}

	out := &UserAgent{Family: family}
	out.Major, _ = resolveField(m.major, groups, 2)
	out.Minor, _ = resolveField(m.minor, groups, 3)
	out.Patch, _ = resolveField(m.patch, groups, 4)
	if len(groups) > 5 {
		out.PatchMinor = strings.TrimSpace(groups[5])
	}
	return out, true
}
