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
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/i18nsub/pkg/rules"
	"github.com/walteh/i18nsub/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrNoParser is returned when no registered parser accepts the file name
var ErrNoParser = errors.New("no parser found")

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 RuleArgs is a replacement rule as written in a config file
type RuleArgs struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	Replacement string `json:"replacement" yaml:"replacement"`
	File        string `json:"file,omitempty" yaml:"file,omitempty"`       // Optional glob limiting the rule to matching files
	Section     string `json:"section,omitempty" yaml:"section,omitempty"` // Optional display label
}

// 📚 Config represents the complete configuration
type Config struct {
	Target  string     `json:"target" yaml:"target"`
	Builtin *bool      `json:"builtin,omitempty" yaml:"builtin,omitempty"` // nil means true
	Rules   []RuleArgs `json:"rules,omitempty" yaml:"rules,omitempty"`
	Backup  bool       `json:"backup,omitempty" yaml:"backup,omitempty"`
	Atomic  bool       `json:"atomic,omitempty" yaml:"atomic,omitempty"`
	Strict  bool       `json:"strict,omitempty" yaml:"strict,omitempty"`
}

// 🏭 Default returns the zero-config setup: built-in rules against the default target
func Default() *Config {
	return &Config{Target: rules.DefaultTarget}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("%w for file: %s", ErrNoParser, path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Str("target", cfg.Target).Int("rules", len(cfg.Rules)).Bool("builtin", cfg.UseBuiltin()).Msg("configuration loaded")
	return cfg, nil
}

// UseBuiltin reports whether the built-in rules run before the configured ones
func (cfg *Config) UseBuiltin() bool {
	return cfg.Builtin == nil || *cfg.Builtin
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Target == "" {
		cfg.Target = rules.DefaultTarget
	}
	cfg.Target = filepath.Clean(cfg.Target)

	for i, r := range cfg.Rules {
		if r.Pattern == "" {
			return errors.Errorf("rules[%d].pattern is required", i)
		}
		if r.File != "" && !doublestar.ValidatePattern(r.File) {
			return errors.Errorf("rules[%d].file is not a valid glob: %q", i, r.File)
		}
	}

	if !cfg.UseBuiltin() && len(cfg.Rules) == 0 {
		return errors.Errorf("at least one rule is required when builtin rules are disabled")
	}

	return nil
}

// 📋 EffectiveRules returns the ordered rule list: built-in rules first, then configured ones
func (cfg *Config) EffectiveRules() []text.Rule {
	var out []text.Rule
	if cfg.UseBuiltin() {
		out = append(out, rules.Home()...)
	}
	for _, r := range cfg.Rules {
		section := r.Section
		if section == "" {
			section = "custom"
		}
		out = append(out, text.Rule{
			Pattern:        r.Pattern,
			Replacement:    r.Replacement,
			FileFilterGlob: r.File,
			Section:        section,
		})
	}
	return out
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s (%d rules)", cfg.Target, len(cfg.EffectiveRules()))
}
