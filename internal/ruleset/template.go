package ruleset

import "strings"

// substitute resolves a replacement template against a compiled match's
// captured groups. template uses $N (N in 1..9) to reference the Nth
// captured group; a group that exists in the pattern but did not
// participate in this particular match substitutes as empty. No other
// interpolation syntax is recognised, and a literal "$" is not escapable —
// the uap-core rule corpus never requires it (§4.1).
//
// groups[0] is the full match; groups[i] is capture group i, or "" if group
// i did not participate. The result is trimmed of leading/trailing
// whitespace; this is done by the caller (resolveField), not here, so that
// callers doing their own group-1-direct fallback share the same trim path.
func substitute(template string, groups []string) string {
	if !strings.Contains(template, "$") {
		return template
	}
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			b.WriteByte(c)
			continue
		}
		n := template[i+1]
		if n < '1' || n > '9' {
			b.WriteByte(c)
			continue
		}
		idx := int(n - '0')
		if idx < len(groups) {
			b.WriteString(groups[idx])
		}
		i++ // consume the digit
	}
	return b.String()
}

// resolveField applies either a literal template (with $N substitution) or,
// when no template is configured for this field, falls back to the given
// default capture group taken directly. The result is trimmed; an empty
// result after trimming becomes "none" for the field, signalled by
// returning ok=false.
func resolveField(template *string, groups []string, defaultGroup int) (string, bool) {
	var raw string
	if template != nil {
		raw = substitute(*template, groups)
	} else if defaultGroup > 0 && defaultGroup < len(groups) {
		raw = groups[defaultGroup]
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
