// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/i18nsub/pkg/rules"
)

// 🧪 TestParserRegistration tests the parser registration system
func TestParserRegistration(t *testing.T) {
	originalParsers := parsers
	defer func() {
		parsers = originalParsers
	}()

	parsers = nil

	mockParser := &struct {
		Parser
		canParse bool
	}{
		canParse: true,
	}

	Register(mockParser)
	assert.Len(t, parsers, 1, "should have 1 parser registered")
	assert.Equal(t, mockParser, parsers[0], "registered parser should match")
}

// 🧪 TestParserSelection tests parser selection by file extension
func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{name: "yaml_file", filename: "i18nsub.yaml", want: &YAMLParser{}},
		{name: "yml_file", filename: "i18nsub.yml", want: &YAMLParser{}},
		{name: "hcl_file", filename: "i18nsub.hcl", want: &HCLParser{}},
		{name: "json_file", filename: "i18nsub.json", want: &JSONParser{}},
		{name: "unknown_extension", filename: "i18nsub.txt", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got, "should return nil for unknown extension")
				return
			}
			require.NotNil(t, got, "should return a parser")
			assert.IsType(t, tt.want, got, "should return correct parser type")
		})
	}
}

// 🧪 TestHCLParsing tests HCL config parsing
func TestHCLParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_hcl",
			config: `
target  = default_target
builtin = false
atomic  = true

rule {
  pattern     = "Our Team"
  replacement = "{t.pages.about.team}"
  section     = "about"
}

rule {
  pattern     = "label=\"Bedrooms\""
  replacement = "label={t.pages.home.filters.bedrooms}"
  file        = "*.tsx"
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, rules.DefaultTarget, cfg.Target)
				assert.False(t, cfg.UseBuiltin())
				assert.True(t, cfg.Atomic)
				require.Len(t, cfg.Rules, 2)
				assert.Equal(t, "Our Team", cfg.Rules[0].Pattern)
				assert.Equal(t, "about", cfg.Rules[0].Section)
				assert.Equal(t, `label="Bedrooms"`, cfg.Rules[1].Pattern)
				assert.Equal(t, "*.tsx", cfg.Rules[1].File)
			},
		},
		{
			name:   "empty_hcl_uses_defaults",
			config: ``,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, rules.DefaultTarget, cfg.Target)
				assert.True(t, cfg.UseBuiltin())
				assert.Empty(t, cfg.Rules)
			},
		},
		{
			name: "invalid_hcl_syntax",
			config: `
target =
`,
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name: "invalid_block_type",
			config: `
unknown_block {
  foo = "bar"
}`,
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name: "rule_missing_replacement",
			config: `
rule {
  pattern = "x"
}`,
			wantErr:     true,
			errContains: "decoding HCL",
		},
	}

	parser := &HCLParser{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Parse(ctx, []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// 🧪 TestJSONParsing tests JSON config parsing
func TestJSONParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_json",
			config: `{
				"target": "src/pages/Listings.tsx",
				"rules": [
					{"pattern": "No listings found", "replacement": "{t.pages.listings.empty}"}
				],
				"backup": true
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "src/pages/Listings.tsx", cfg.Target)
				assert.True(t, cfg.Backup)
				require.Len(t, cfg.Rules, 1)
				assert.Equal(t, "{t.pages.listings.empty}", cfg.Rules[0].Replacement)
			},
		},
		{
			name:        "unknown_field",
			config:      `{"destination": "/tmp"}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "invalid_json",
			config:      `{"target": `,
			wantErr:     true,
			errContains: "parsing JSON",
		},
	}

	parser := &JSONParser{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Parse(ctx, []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
