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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/walteh/i18nsub/pkg/rules"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL.
// The variable default_target is available to expressions.
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_target": cty.StringVal(rules.DefaultTarget),
		},
	}

	type hclRule struct {
		Pattern     string `hcl:"pattern"`
		Replacement string `hcl:"replacement"`
		File        string `hcl:"file,optional"`
		Section     string `hcl:"section,optional"`
	}

	type hclConfig struct {
		Target  string    `hcl:"target,optional"`
		Builtin *bool     `hcl:"builtin,optional"`
		Rules   []hclRule `hcl:"rule,block"`
		Backup  bool      `hcl:"backup,optional"`
		Atomic  bool      `hcl:"atomic,optional"`
		Strict  bool      `hcl:"strict,optional"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{
		Target:  hclCfg.Target,
		Builtin: hclCfg.Builtin,
		Backup:  hclCfg.Backup,
		Atomic:  hclCfg.Atomic,
		Strict:  hclCfg.Strict,
	}
	for _, r := range hclCfg.Rules {
		cfg.Rules = append(cfg.Rules, RuleArgs{
			Pattern:     r.Pattern,
			Replacement: r.Replacement,
			File:        r.File,
			Section:     r.Section,
		})
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
