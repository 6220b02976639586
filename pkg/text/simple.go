package text

import (
	"context"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// SimpleReplacer implements Replacer with one full-buffer scan per rule
type SimpleReplacer struct{}

var _ Replacer = (*SimpleReplacer)(nil)

// NewSimpleReplacer creates a new SimpleReplacer
func NewSimpleReplacer() *SimpleReplacer {
	return &SimpleReplacer{}
}

// ReplaceText implements Replacer.ReplaceText.
// Each rule sees the buffer produced by the rules before it.
func (r *SimpleReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []Rule) (*Result, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &Result{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
		Rules:           make([]RuleResult, 0, len(rules)),
	}

	current := string(originalContent)
	for i, rule := range rules {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("applying rule %d: %w", i, err)
		}

		// an empty pattern would match between every rune
		matches := 0
		if rule.Pattern != "" {
			matches = strings.Count(current, rule.Pattern)
		}
		if matches > 0 {
			current = strings.ReplaceAll(current, rule.Pattern, rule.Replacement)
			result.ReplacementCount += matches
		}

		result.Rules = append(result.Rules, RuleResult{Rule: rule, Matches: matches})
	}

	result.ModifiedContent = []byte(current)
	result.WasModified = current != string(originalContent)
	return result, nil
}

// ValidateRules implements Replacer.ValidateRules
func (r *SimpleReplacer) ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}
