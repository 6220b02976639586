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

package operation

import (
	"bytes"
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/i18nsub/pkg/log"
	"github.com/walteh/i18nsub/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner rewrites one target file
type Runner struct {
	opts Options
}

// 🏃 Run reads the target, applies every rule in order, writes the result back
// and prints the confirmation line. The write happens even when nothing matched.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	logger := zerolog.Ctx(ctx).With().Str("target", r.opts.Target).Logger()
	target := r.opts.Target

	rules, err := text.FilterRules(target, r.opts.Rules)
	if err != nil {
		return nil, errors.Errorf("filtering rules: %w", err)
	}
	if err := r.opts.Replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}
	logger.Debug().Int("rules", len(rules)).Int("skipped", len(r.opts.Rules)-len(rules)).Msg("rules selected")

	if r.opts.Verbose {
		r.opts.Console.Header("rewriting " + target)
	}

	// read
	content, err := r.opts.Files.ReadFile(ctx, target)
	if err != nil {
		return nil, errors.Errorf("reading target: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, errors.Errorf("reading target: %s is not valid UTF-8", target)
	}

	// transform
	result, err := r.opts.Replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return nil, errors.Errorf("replacing text: %w", err)
	}

	report := &Report{
		Path:        target,
		Result:      result,
		BytesBefore: int64(len(result.OriginalContent)),
		BytesAfter:  int64(len(result.ModifiedContent)),
		DryRun:      r.opts.DryRun,
	}

	unmatched := result.Unmatched()
	for i, rr := range result.Rules {
		if rr.Matches == 0 {
			logger.Warn().Int("rule", i+1).Str("pattern", rr.Rule.DisplayPattern()).Msg("rule matched nothing")
		}
	}
	logger.Debug().
		Int("replacements", result.ReplacementCount).
		Int("unmatched", len(unmatched)).
		Bool("modified", result.WasModified).
		Msg("transformed buffer")

	if r.opts.Strict && len(unmatched) > 0 {
		return nil, &UnmatchedError{Path: target, Rules: unmatched, Total: len(result.Rules)}
	}

	if r.opts.DryRun {
		r.opts.Console.Diff(lineDiff(string(result.OriginalContent), string(result.ModifiedContent)))
		r.printRules(report)
		r.opts.Console.Success(r.opts.Formatter.FormatDryRun(target, result.ReplacementCount))
		return report, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("before writing: %w", err)
	}

	// write
	if r.opts.Backup {
		backupPath, err := r.opts.Files.BackupFile(ctx, target)
		if err != nil {
			return nil, errors.Errorf("backing up target: %w", err)
		}
		report.BackupPath = backupPath
	}

	if err := r.write(ctx, result.ModifiedContent); err != nil {
		if r.opts.Backup {
			if rerr := r.opts.Files.RestoreFile(ctx, target); rerr != nil {
				r.opts.Console.Errorf("restoring %s from backup: %v", target, rerr)
			}
		}
		return nil, errors.Errorf("writing target: %w", err)
	}
	report.Written = true

	// report
	r.printRules(report)
	r.printWritten(ctx, report)
	r.opts.Console.Success(r.opts.Formatter.FormatApplied(target))

	return report, nil
}

func (r *Runner) write(ctx context.Context, content []byte) error {
	if r.opts.Atomic {
		return r.opts.Files.WriteFileAtomic(ctx, r.opts.Target, content)
	}
	return r.opts.Files.WriteFile(ctx, r.opts.Target, content)
}

// printWritten describes the target as it is on disk after the write
func (r *Runner) printWritten(ctx context.Context, report *Report) {
	if !r.opts.Verbose {
		return
	}
	info, err := r.opts.Files.Stat(ctx, report.Path)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("target", report.Path).Msg("stat after write failed")
		return
	}
	report.Checksum = info.Checksum
	r.opts.Console.Info(r.opts.Formatter.FormatWritten(info))
}

func (r *Runner) printRules(report *Report) {
	if !r.opts.Verbose {
		return
	}
	for i, rr := range report.Result.Rules {
		r.opts.Console.LogRule(log.RuleLine{
			Index:   i + 1,
			Section: rr.Rule.Section,
			Pattern: rr.Rule.DisplayPattern(),
			Matches: rr.Matches,
		})
	}
	r.opts.Console.Info(r.opts.Formatter.FormatSummary(report.Summary()))
}
