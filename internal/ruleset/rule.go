package ruleset

import (
	"regexp"
	"strings"
)

// UARuleRecord is the decoded shape of one entry in uap-core's
// user_agent_parsers list (§6).
type UARuleRecord struct {
	Regex             string
	FamilyReplacement *string
	V1Replacement     *string
	V2Replacement     *string
	V3Replacement     *string
}

// OSRuleRecord is the decoded shape of one entry in uap-core's os_parsers
// list (§6).
type OSRuleRecord struct {
	Regex           string
	OSReplacement   *string
	OSV1Replacement *string
	OSV2Replacement *string
	OSV3Replacement *string
	OSV4Replacement *string
}

// DeviceRuleRecord is the decoded shape of one entry in uap-core's
// device_parsers list (§6). RegexFlag is the only recognised flag string
// ("i") and marks the pattern case-insensitive.
type DeviceRuleRecord struct {
	Regex             string
	RegexFlag         string
	DeviceReplacement *string
	BrandReplacement  *string
	ModelReplacement  *string
}

// maxBackref returns the highest $N referenced across the given templates,
// or 0 if none reference a group. Used to validate a rule's back-references
// against its compiled pattern's actual group count at load time (§4's
// design note: "precompute the maximum $N referenced ... reject at load
// time any reference beyond the compiled pattern's group count").
func maxBackref(templates ...*string) int {
	max := 0
	for _, t := range templates {
		if t == nil {
			continue
		}
		s := *t
		for i := 0; i+1 < len(s); i++ {
			if s[i] != '$' {
				continue
			}
			n := s[i+1]
			if n >= '1' && n <= '9' {
				if v := int(n - '0'); v > max {
					max = v
				}
			}
		}
	}
	return max
}

// compilePattern compiles regex, optionally case-insensitively, and
// validates that maxGroup does not exceed the pattern's actual capture
// group count.
func compilePattern(regex string, caseInsensitive bool, maxGroup int) (*regexp.Regexp, error) {
	pat := regex
	if caseInsensitive && !strings.HasPrefix(pat, "(?i)") {
		pat = "(?i)" + pat
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, err
	}
	if maxGroup > re.NumSubexp() {
		return nil, errBackrefOutOfRange(maxGroup, re.NumSubexp())
	}
	return re, nil
}
