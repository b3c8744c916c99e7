package ruleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestUAMatcher_DefaultExtraction(t *testing.T) {
	m, err := NewUAMatcher(UARuleRecord{
		Regex: `(Chrome)/(\d+)\.(\d+)\.(\d+)\.(\d+)`,
	})
	require.NoError(t, err)

	got, ok := m.Match("Mozilla/5.0 Chrome/41.0.2272.104 Safari/537.36")
	require.True(t, ok, "expected match")
	want := UserAgent{Family: "Chrome", Major: "41", Minor: "0", Patch: "2272", PatchMinor: "104"}
	assert.Equal(t, want, *got)
}

func TestUAMatcher_FamilyTemplate(t *testing.T) {
	// Spec §8 scenario 5: family template "$1 Mobile" with pattern
	// capturing "Firefox" produces family "Firefox Mobile".
	m, err := NewUAMatcher(UARuleRecord{
		Regex:             `(Firefox)/\d+\.\d+ Mobile`,
		FamilyReplacement: strp("$1 Mobile"),
	})
	require.NoError(t, err)

	got, ok := m.Match("Mozilla/5.0 (Mobile; rv:41.0) Gecko/41.0 Firefox/41.0 Mobile")
	require.True(t, ok, "expected match")
	assert.Equal(t, "Firefox Mobile", got.Family)
}

func TestUAMatcher_NoMatch(t *testing.T) {
	m, err := NewUAMatcher(UARuleRecord{Regex: `^Chrome/`})
	require.NoError(t, err)
	_, ok := m.Match("not a browser")
	assert.False(t, ok, "expected no match")
}

func TestUAMatcher_EmptyFieldBecomesNone(t *testing.T) {
	m, err := NewUAMatcher(UARuleRecord{Regex: `(Chrome)()`})
	require.NoError(t, err)
	got, ok := m.Match("Chrome")
	require.True(t, ok, "expected match")
	assert.Equal(t, "Chrome", got.Family)
	assert.Equal(t, "", got.Major)
}

func TestNewUAMatcher_BackrefOutOfRange(t *testing.T) {
	_, err := NewUAMatcher(UARuleRecord{
		Regex:             `Chrome`,
		FamilyReplacement: strp("$1"),
	})
	assert.Error(t, err, "expected load-time error for out-of-range backreference")
}

func TestNewUAMatcher_InvalidRegex(t *testing.T) {
	_, err := NewUAMatcher(UARuleRecord{Regex: `Chrome(`})
	assert.Error(t, err, "expected compile error")
}
