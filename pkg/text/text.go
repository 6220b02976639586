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

// Package text applies ordered literal replacement rules to a document buffer.
package text

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// Rule defines a single literal text replacement
type Rule struct {
	// Pattern is the exact, case-sensitive text to find
	Pattern string

	// Replacement is the text written in place of every match
	Replacement string

	// FileFilterGlob limits the rule to matching files. Empty matches every file.
	FileFilterGlob string

	// Section is a display label (hero, stats, ...) with no effect on matching
	Section string
}

// DisplayPattern returns the pattern with control characters escaped for single-line output
func (r Rule) DisplayPattern() string {
	return escape(r.Pattern)
}

// DisplayReplacement returns the replacement with control characters escaped
func (r Rule) DisplayReplacement() string {
	return escape(r.Replacement)
}

var escaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

func escape(s string) string {
	return escaper.Replace(s)
}

// AppliesTo reports whether the rule should run against the file at p.
// A glob without a slash is matched against the base name only.
func (r Rule) AppliesTo(p string) (bool, error) {
	if r.FileFilterGlob == "" {
		return true, nil
	}

	slashed := filepath.ToSlash(p)
	if !strings.Contains(r.FileFilterGlob, "/") {
		slashed = path.Base(slashed)
	}

	ok, err := doublestar.Match(r.FileFilterGlob, slashed)
	if err != nil {
		return false, errors.Errorf("matching glob %q: %w", r.FileFilterGlob, err)
	}
	return ok, nil
}

// FilterRules returns the rules that apply to p, keeping their order
func FilterRules(p string, rules []Rule) ([]Rule, error) {
	out := make([]Rule, 0, len(rules))
	for i, rule := range rules {
		ok, err := rule.AppliesTo(p)
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
		if ok {
			out = append(out, rule)
		}
	}
	return out, nil
}

// RuleResult records how a single rule fared against the evolving buffer
type RuleResult struct {
	Rule Rule

	// Matches is the number of non-overlapping occurrences replaced
	Matches int
}

// Result contains the results of a text replacement operation
type Result struct {
	// WasModified indicates the final content differs from the original
	WasModified bool

	// ReplacementCount is the total number of replacements made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte

	// Rules holds one entry per applied rule, in application order
	Rules []RuleResult
}

// Unmatched returns the rules that found nothing to replace
func (r *Result) Unmatched() []Rule {
	var out []Rule
	for _, rr := range r.Rules {
		if rr.Matches == 0 {
			out = append(out, rr.Rule)
		}
	}
	return out
}

// Replacer defines the interface for text replacement operations
type Replacer interface {
	// ReplaceText applies the rules to the content in order
	ReplaceText(ctx context.Context, content io.Reader, rules []Rule) (*Result, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []Rule) error
}
