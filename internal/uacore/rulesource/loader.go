// Package rulesource is the loader collaborator (§6): it decodes the
// uap-core-shaped rule YAML into the plain record triple the ruleset
// package compiles. It never touches a resolver or a cache (§6: "loaders
// never interact with the resolver or cache directly").
package rulesource

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/edgecomet/uaparser/internal/ruleset"
)

// document is the decoded top-level shape of a uap-core-style rule file.
type document struct {
	UserAgentParsers []uaRecord     `yaml:"user_agent_parsers"`
	OSParsers        []osRecord     `yaml:"os_parsers"`
	DeviceParsers    []deviceRecord `yaml:"device_parsers"`
}

type uaRecord struct {
	Regex             string  `yaml:"regex"`
	FamilyReplacement *string `yaml:"family_replacement"`
	V1Replacement     *string `yaml:"v1_replacement"`
	V2Replacement     *string `yaml:"v2_replacement"`
	V3Replacement     *string `yaml:"v3_replacement"`
}

type osRecord struct {
	Regex           string  `yaml:"regex"`
	OSReplacement   *string `yaml:"os_replacement"`
	OSV1Replacement *string `yaml:"os_v1_replacement"`
	OSV2Replacement *string `yaml:"os_v2_replacement"`
	OSV3Replacement *string `yaml:"os_v3_replacement"`
	OSV4Replacement *string `yaml:"os_v4_replacement"`
}

type deviceRecord struct {
	Regex             string  `yaml:"regex"`
	RegexFlag         string  `yaml:"regex_flag"`
	DeviceReplacement *string `yaml:"device_replacement"`
	BrandReplacement  *string `yaml:"brand_replacement"`
	ModelReplacement  *string `yaml:"model_replacement"`
}

// Load reads and strictly decodes a rule file from path (§6's loader
// collaborator). Unknown fields are a load-time error, same as
// yamlutil.UnmarshalStrict in the wider codebase: better to fail loudly on
// a typo'd field name than silently ignore it.
func Load(path string) ([]ruleset.UARuleRecord, []ruleset.OSRuleRecord, []ruleset.DeviceRuleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("rulesource: reading %s: %w", path, err)
	}
	return Decode(data)
}

// Decode strictly decodes rule YAML already in memory.
func Decode(data []byte) ([]ruleset.UARuleRecord, []ruleset.OSRuleRecord, []ruleset.DeviceRuleRecord, error) {
	var doc document
	if err := unmarshalStrict(data, &doc); err != nil {
		return nil, nil, nil, fmt.Errorf("rulesource: decoding rules: %w", err)
	}

	ua := make([]ruleset.UARuleRecord, len(doc.UserAgentParsers))
	for i, r := range doc.UserAgentParsers {
		ua[i] = ruleset.UARuleRecord{
			Regex:             r.Regex,
			FamilyReplacement: r.FamilyReplacement,
			V1Replacement:     r.V1Replacement,
			V2Replacement:     r.V2Replacement,
			V3Replacement:     r.V3Replacement,
		}
	}

	osRules := make([]ruleset.OSRuleRecord, len(doc.OSParsers))
	for i, r := range doc.OSParsers {
		osRules[i] = ruleset.OSRuleRecord{
			Regex:           r.Regex,
			OSReplacement:   r.OSReplacement,
			OSV1Replacement: r.OSV1Replacement,
			OSV2Replacement: r.OSV2Replacement,
			OSV3Replacement: r.OSV3Replacement,
			OSV4Replacement: r.OSV4Replacement,
		}
	}

	device := make([]ruleset.DeviceRuleRecord, len(doc.DeviceParsers))
	for i, r := range doc.DeviceParsers {
		device[i] = ruleset.DeviceRuleRecord{
			Regex:             r.Regex,
			RegexFlag:         r.RegexFlag,
			DeviceReplacement: r.DeviceReplacement,
			BrandReplacement:  r.BrandReplacement,
			ModelReplacement:  r.ModelReplacement,
		}
	}

	return ua, osRules, device, nil
}

// unmarshalStrict rejects unknown fields, catching typo'd keys in rule
// files at load time instead of silently dropping them.
func unmarshalStrict(data []byte, v any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(v); err != nil {
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("unknown rule field (check for typos): %w", err)
		}
		return err
	}
	return nil
}
