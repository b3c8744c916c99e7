package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredLiteral_SimpleLiteral(t *testing.T) {
	lit, ok := requiredLiteral(`Chrome/(\d+)\.(\d+)`)
	assert.True(t, ok)
	assert.Equal(t, "Chrome/", lit)
}

func TestRequiredLiteral_BailsOnAlternation(t *testing.T) {
	_, ok := requiredLiteral(`Chrome|Chromium`)
	assert.False(t, ok, "expected alternation to defeat extraction")
}

func TestRequiredLiteral_BailsOnOptionalGroup(t *testing.T) {
	_, ok := requiredLiteral(`Android(?: Mobile)?`)
	assert.False(t, ok, "expected an optional group to defeat extraction")
}

func TestRequiredLiteral_BailsOnCaseInsensitivePrefix(t *testing.T) {
	// compilePattern prepends "(?i)" for RegexFlag: "i" rules; the literal
	// extracted from such a pattern would only be required modulo case, so
	// it must never be indexed as an exact-byte candidate.
	_, ok := requiredLiteral(`(?i)iPhone`)
	assert.False(t, ok, "expected a case-insensitive prefix to defeat extraction")
}

func TestRequiredLiteral_SkipsCharacterClassesAndEscapes(t *testing.T) {
	lit, ok := requiredLiteral(`Mac OS X \d+[._]\d+`)
	assert.True(t, ok)
	assert.Equal(t, "Mac OS X ", lit)
}

func TestRequiredLiteral_DropsTrailingOptionalChar(t *testing.T) {
	// "Androids?Tablet": the optional "s" cannot be part of a required
	// literal, so the run before it is trimmed to "Android"; that run (7
	// chars) is still longer than the unbroken "Tablet" (6 chars) and wins.
	lit, ok := requiredLiteral(`Androids?Tablet`)
	assert.True(t, ok)
	assert.Equal(t, "Android", lit)
}

func TestRequiredLiteral_TooShortIsRejected(t *testing.T) {
	_, ok := requiredLiteral(`\d+.\d+`)
	assert.False(t, ok, "expected a pattern with no usable literal run to be rejected")
}

func TestRequiredLiteral_QuantifierBodyIsNotLiteral(t *testing.T) {
	// The "{3,}" bound must never leak "3," into the extracted literal.
	lit, ok := requiredLiteral(`Chrome/(\d{3,})`)
	assert.True(t, ok)
	assert.Equal(t, "Chrome/", lit)
}

func TestRequiredLiteral_RequiredGroupIsTransparent(t *testing.T) {
	lit, ok := requiredLiteral(`Firefox(Mobile)`)
	assert.True(t, ok, "expected extraction to succeed through a non-optional group")
	assert.Contains(t, []string{"Firefox", "Mobile"}, lit)
}
