// Package operation runs the substitution: read the target, apply the rules, write it back, report.
package operation

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/i18nsub/pkg/log"
	"github.com/walteh/i18nsub/pkg/status"
	"github.com/walteh/i18nsub/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrUnmatchedRules is wrapped by UnmatchedError
var ErrUnmatchedRules = errors.New("rules matched nothing")

// UnmatchedError is returned in strict mode when some rules found nothing to replace.
// The target is left untouched.
type UnmatchedError struct {
	Path  string
	Rules []text.Rule
	Total int
}

func (e *UnmatchedError) Error() string {
	patterns := make([]string, 0, len(e.Rules))
	for _, r := range e.Rules {
		patterns = append(patterns, fmt.Sprintf("%q", r.DisplayPattern()))
	}
	return fmt.Sprintf("%d of %d %s in %s: %s", len(e.Rules), e.Total, ErrUnmatchedRules, e.Path, strings.Join(patterns, ", "))
}

func (e *UnmatchedError) Unwrap() error {
	return ErrUnmatchedRules
}

// 🔧 Options contains configuration for the runner
type Options struct {
	// Target is the file rewritten in place
	Target string
	// Rules are applied in order
	Rules []text.Rule
	// Files reads and writes the target
	Files status.FileManager

	// Replacer defaults to text.SimpleReplacer
	Replacer text.Replacer
	// Formatter defaults to status.DefaultFileFormatter
	Formatter status.FileFormatter
	// Console receives the user-facing lines. Defaults to a discarding logger.
	Console *log.Logger

	DryRun  bool // transform and print a diff, never write
	Backup  bool // copy the target to <target>.bak before writing
	Atomic  bool // write through a temp file and rename
	Strict  bool // fail before writing if any rule matched nothing
	Verbose bool // print one line per rule and a summary
}

// 🏭 New creates a new runner with the given options
func New(opts Options) (*Runner, error) {
	if opts.Target == "" {
		return nil, errors.Errorf("target is required")
	}
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewSimpleReplacer()
	}
	if opts.Formatter == nil {
		opts.Formatter = status.NewDefaultFileFormatter()
	}
	if opts.Console == nil {
		opts.Console = log.New(io.Discard, zerolog.Nop())
	}
	if opts.DryRun && opts.Backup {
		return nil, errors.Errorf("backup has no effect with dry run")
	}

	return &Runner{opts: opts}, nil
}

// 📊 Report describes a finished run
type Report struct {
	Path        string
	Result      *text.Result
	BytesBefore int64
	BytesAfter  int64
	DryRun      bool
	Written     bool
	BackupPath  string
	// Checksum is the sha256 of the written file, set in verbose mode
	Checksum string
}

// Summary converts the report into formatter input
func (r *Report) Summary() status.Summary {
	s := status.Summary{
		Path:        r.Path,
		BytesBefore: r.BytesBefore,
		BytesAfter:  r.BytesAfter,
	}
	if r.Result != nil {
		s.Rules = len(r.Result.Rules)
		s.Unmatched = len(r.Result.Unmatched())
		s.Replacements = r.Result.ReplacementCount
	}
	return s
}
