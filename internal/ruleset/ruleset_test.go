package ruleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_OrderDeterminism(t *testing.T) {
	rs, err := Build(
		[]UARuleRecord{
			{Regex: `(Chrome)`},
			{Regex: `(Chrome)/(\d+)`}, // would also match, but first rule wins
		},
		nil, nil, nil,
	)
	require.NoError(t, err)

	got, ok := rs.UA[0].Match("Chrome/41")
	require.True(t, ok, "expected the first matcher to win")
	assert.Equal(t, "Chrome", got.Family)
	assert.Equal(t, "", got.Major)
}

func TestBuild_RejectsInvalidRuleWhole(t *testing.T) {
	_, err := Build(
		[]UARuleRecord{
			{Regex: `Chrome`},
			{Regex: `Firefox(`}, // invalid
		},
		nil, nil, nil,
	)
	assert.Error(t, err, "expected Build to fail the whole ruleset on one bad rule")
}

func TestBuild_Stats(t *testing.T) {
	rs, err := Build(
		[]UARuleRecord{{Regex: "a"}, {Regex: "b"}},
		[]OSRuleRecord{{Regex: "c"}},
		nil,
		nil,
	)
	require.NoError(t, err)

	stats := rs.Stats()
	assert.Equal(t, 2, stats.UA)
	assert.Equal(t, 1, stats.OS)
	assert.Equal(t, 0, stats.Device)
}
