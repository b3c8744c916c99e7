package uaparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRules = "testdata/sample_rules.yaml"

func mustParser(t *testing.T, cfg Config) *Parser {
	t.Helper()
	if cfg.RulesPath == "" {
		cfg.RulesPath = sampleRules
	}
	p, err := New(cfg)
	require.NoError(t, err)
	return p
}

// TestScenario_ChromeOnMacOSX is spec scenario 1: a full Chrome-on-Mac UA
// string resolving every facet.
func TestScenario_ChromeOnMacOSX(t *testing.T) {
	p := mustParser(t, Config{})
	const ua = `Mozilla/5.0 (Macintosh; Intel Mac OS X 10_9_4) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/41.0.2272.104 Safari/537.36`

	got := p.Parse(ua)

	if assert.NotNil(t, got.UserAgent) {
		assert.Equal(t, "Chrome", got.UserAgent.Family)
		assert.Equal(t, "41", got.UserAgent.Major)
		assert.Equal(t, "0", got.UserAgent.Minor)
		assert.Equal(t, "2272", got.UserAgent.Patch)
		assert.Equal(t, "104", got.UserAgent.PatchMinor)
	}
	if assert.NotNil(t, got.OS) {
		assert.Equal(t, "Mac OS X", got.OS.Family)
		assert.Equal(t, "10", got.OS.Major)
		assert.Equal(t, "9", got.OS.Minor)
		assert.Equal(t, "4", got.OS.Patch)
		assert.Equal(t, "", got.OS.PatchMinor)
	}
	if assert.NotNil(t, got.Device) {
		assert.Equal(t, "Mac", got.Device.Family)
		assert.Equal(t, "Apple", got.Device.Brand)
		assert.Equal(t, "Mac", got.Device.Model)
	}
}

// TestScenario_EmptyString is spec scenario 2: an empty UA resolves to
// none for every facet, and with_defaults fills in the "Other" sentinel.
func TestScenario_EmptyString(t *testing.T) {
	p := mustParser(t, Config{})

	got := p.Parse("")
	assert.Nil(t, got.UserAgent)
	assert.Nil(t, got.OS)
	assert.Nil(t, got.Device)
	assert.Equal(t, "", got.UA, "expected original string preserved")

	full := got.WithDefaults()
	assert.Equal(t, "Other", full.UserAgent.Family)
	assert.Equal(t, "Other", full.OS.Family)
	assert.Equal(t, "Other", full.Device.Family)
}

// TestScenario_UANonMatchingOSMatching is spec scenario 3: a UA string with
// no recognisable browser but a recognisable OS fragment.
func TestScenario_UANonMatchingOSMatching(t *testing.T) {
	p := mustParser(t, Config{})

	got := p.Parse("SomeCustomBot running on Windows NT 10.0")
	assert.Nil(t, got.UserAgent, "expected no UserAgent match")
	if assert.NotNil(t, got.OS) {
		assert.Equal(t, "Windows NT", got.OS.Family)
		assert.Equal(t, "10", got.OS.Major)
		assert.Equal(t, "0", got.OS.Minor)
	}
}

func TestParser_FacetSpecificEntryPointsMatchParse(t *testing.T) {
	p := mustParser(t, Config{})
	const ua = `Firefox/89.0`

	full := p.Parse(ua)
	got := p.ParseUserAgent(ua)
	if assert.NotNil(t, got) && assert.NotNil(t, full.UserAgent) {
		assert.Equal(t, full.UserAgent.Family, got.Family)
	}
	assert.Nil(t, p.ParseOS(ua), "expected no OS match")
	assert.Nil(t, p.ParseDevice(ua), "expected no device match")
}

func TestParser_ResolverKindsAgree(t *testing.T) {
	const ua = `Chrome/41.0.2272.104 on Mac OS X 10_9_4`
	basic := mustParser(t, Config{Resolver: ResolverBasic})
	regexSet := mustParser(t, Config{Resolver: ResolverRegexSet})

	a := basic.Parse(ua)
	b := regexSet.Parse(ua)
	assert.Equal(t, a.UserAgent == nil, b.UserAgent == nil)
	if a.UserAgent != nil && b.UserAgent != nil {
		assert.Equal(t, a.UserAgent.Family, b.UserAgent.Family)
	}
}

func TestParser_CachedResultsAreIdempotent(t *testing.T) {
	p := mustParser(t, Config{Cache: CacheLRU, CacheCapacity: 16})
	const ua = `Chrome/41.0.2272.104`

	first := p.Parse(ua)
	second := p.Parse(ua)
	require.NotNil(t, first.UserAgent)
	require.NotNil(t, second.UserAgent)
	assert.Equal(t, first.UserAgent.Family, second.UserAgent.Family)
	assert.Equal(t, first.UserAgent.Major, second.UserAgent.Major)
}

func TestDefaultParser_PanicsBeforeSetDefault(t *testing.T) {
	SetDefault(nil)
	assert.Panics(t, func() { Parse("anything") }, "expected a panic with no default parser installed")
}

func TestDefaultParser_RoutesToInstalledParser(t *testing.T) {
	p := mustParser(t, Config{})
	SetDefault(p)
	defer SetDefault(nil)

	got := Parse("Firefox/89.0")
	if assert.NotNil(t, got.UserAgent) {
		assert.Equal(t, "Firefox", got.UserAgent.Family)
	}
}

func TestNew_MissingRulesFileIsAnError(t *testing.T) {
	_, err := New(Config{RulesPath: "testdata/does-not-exist.yaml"})
	assert.Error(t, err, "expected an error for a missing rules file")
}
