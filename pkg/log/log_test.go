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
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✓ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
			},
			wantLogs: []string{
				"⚠️  warning test",
				"❌ error test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("rewriting src/pages/Home.tsx")
			},
			wantLogs: []string{
				"i18nsub • rewriting src/pages/Home.tsx",
			},
		},
		{
			name: "log_diff",
			op: func(t *testing.T, logger *Logger) {
				logger.Diff([]string{"-Find Your Dream Home", "+{t.pages.home.hero.title}", "@@"})
			},
			wantLogs: []string{
				"-Find Your Dream Home",
				"+{t.pages.home.hero.title}",
				"@@",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerMirrorsToZerolog(t *testing.T) {
	zbuf := &bytes.Buffer{}
	logger := New(io.Discard, zerolog.New(zbuf))

	logger.Warning("rule 3 matched nothing")

	assert.Contains(t, zbuf.String(), `"level":"warn"`)
	assert.Contains(t, zbuf.String(), `"message":"rule 3 matched nothing"`)
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestRuleLineFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	long := strings.Repeat("x", 50)

	tests := []struct {
		name string
		line RuleLine
		want string
	}{
		{
			name: "single_match",
			line: RuleLine{Index: 1, Section: "hero", Pattern: "Find Your Dream Home", Matches: 1},
			want: "✓   1 hero       Find Your Dream Home" + strings.Repeat(" ", 20) + " 1 match",
		},
		{
			name: "many_matches",
			line: RuleLine{Index: 12, Section: "featured", Pattern: "For Rent", Matches: 3},
			want: "✓  12 featured   For Rent" + strings.Repeat(" ", 32) + " 3 matches",
		},
		{
			name: "no_match",
			line: RuleLine{Index: 4, Section: "hero", Pattern: `label="Location"`, Matches: 0},
			want: `-   4 hero       label="Location"` + strings.Repeat(" ", 24) + " no match",
		},
		{
			name: "long_pattern_truncated",
			line: RuleLine{Index: 2, Section: "hero", Pattern: long, Matches: 1},
			want: "✓   2 hero       " + strings.Repeat("x", 39) + "… 1 match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			logger.LogRule(tt.line)

			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()), "formatted output should match")
		})
	}
}
