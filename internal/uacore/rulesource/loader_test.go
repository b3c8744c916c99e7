package rulesource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DecodesAllThreeFacets(t *testing.T) {
	ua, os, device, err := Load("testdata/rules_sample.yaml")
	require.NoError(t, err)
	require.Len(t, ua, 2)
	require.Len(t, os, 2)
	require.Len(t, device, 2)

	assert.Equal(t, `Firefox/(\d+)\.(\d+)`, ua[0].Regex)
	if assert.NotNil(t, ua[0].FamilyReplacement) {
		assert.Equal(t, "Firefox", *ua[0].FamilyReplacement)
	}
	if assert.NotNil(t, os[0].OSV1Replacement) {
		assert.Equal(t, "$1", *os[0].OSV1Replacement)
	}
	assert.Equal(t, "i", device[0].RegexFlag)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, _, _, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err, "expected an error for a missing file")
}

func TestDecode_RejectsUnknownField(t *testing.T) {
	_, _, _, err := Decode([]byte("user_agent_parsers:\n  - regex: 'x'\n    typo_field: 'y'\n"))
	assert.Error(t, err, "expected strict decoding to reject an unknown field")
}

func TestDecode_AbsentReplacementFieldsAreNil(t *testing.T) {
	ua, _, _, err := Decode([]byte("user_agent_parsers:\n  - regex: 'Chrome'\n"))
	require.NoError(t, err)
	require.Len(t, ua, 1)
	assert.Nil(t, ua[0].FamilyReplacement)
}
