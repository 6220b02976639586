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

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	ruleIndent    = 4  // spaces to indent rule entries
	indexWidth    = 3  // Width for the rule number
	sectionWidth  = 10 // Width for the section label
	patternWidth  = 40 // Width for the pattern text
	truncatedMark = "…"
)

// 🎯 RuleLine describes one rule's outcome for display
type RuleLine struct {
	Index   int    // 1-based position in the rule list
	Section string // Section label
	Pattern string // Pattern, already escaped for one line
	Matches int    // Number of replacements made
}

// 🎯 Logger writes user-facing lines to a console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + truncatedMark
}

// 📝 formatRuleLine formats a rule outcome for display
func (l *Logger) formatRuleLine(line RuleLine) string {
	var symbol rune
	var symbolColor color.Attribute
	var status string
	switch line.Matches {
	case 0:
		symbol = '-'
		symbolColor = color.FgYellow
		status = "no match"
	case 1:
		symbol = '✓'
		symbolColor = color.FgGreen
		status = "1 match"
	default:
		symbol = '✓'
		symbolColor = color.FgGreen
		status = fmt.Sprintf("%d matches", line.Matches)
	}

	return fmt.Sprintf("%s%s %s %s %s %s",
		strings.Repeat(" ", ruleIndent),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%*d", indexWidth, line.Index),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", sectionWidth, line.Section)),
		fmt.Sprintf("%-*s", patternWidth, truncate(line.Pattern, patternWidth)),
		status)
}

// 📝 LogRule logs a single rule outcome
func (l *Logger) LogRule(line RuleLine) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatRuleLine(line))

	l.zlog.Debug().
		Int("rule", line.Index).
		Str("section", line.Section).
		Str("pattern", line.Pattern).
		Int("matches", line.Matches).
		Msg("rule applied")
}

// 📝 Diff prints unified-style -/+ lines
func (l *Logger) Diff(lines []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(l.console, color.New(color.FgRed).Sprint(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(l.console, color.New(color.FgGreen).Sprint(line))
		default:
			fmt.Fprintln(l.console, line)
		}
	}
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("i18nsub")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
