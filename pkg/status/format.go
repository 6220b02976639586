package status

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

const shortChecksum = 12

// Summary carries the numbers shown after a run
type Summary struct {
	Path         string
	Rules        int
	Unmatched    int
	Replacements int
	BytesBefore  int64
	BytesAfter   int64
}

// FileFormatter defines how run results should be worded
type FileFormatter interface {
	// FormatApplied is the confirmation line printed after a successful write
	FormatApplied(path string) string

	// FormatDryRun is the confirmation line printed when nothing was written
	FormatDryRun(path string, replacements int) string

	// FormatSummary formats the totals of a run
	FormatSummary(s Summary) string

	// FormatWritten describes the file as it is on disk after the write
	FormatWritten(info FileInfo) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

func (f *DefaultFileFormatter) FormatApplied(path string) string {
	return fmt.Sprintf("Applied all translations to %s", filepath.Base(path))
}

func (f *DefaultFileFormatter) FormatDryRun(path string, replacements int) string {
	return fmt.Sprintf("Dry run: %d %s in %s", replacements, plural(replacements, "replacement", "replacements"), filepath.Base(path))
}

func (f *DefaultFileFormatter) FormatSummary(s Summary) string {
	return fmt.Sprintf("%d %s from %d %s (%d unmatched), %s -> %s",
		s.Replacements, plural(s.Replacements, "replacement", "replacements"),
		s.Rules, plural(s.Rules, "rule", "rules"),
		s.Unmatched,
		humanize.Bytes(uint64(s.BytesBefore)),
		humanize.Bytes(uint64(s.BytesAfter)),
	)
}

func (f *DefaultFileFormatter) FormatWritten(info FileInfo) string {
	sum := info.Checksum
	if len(sum) > shortChecksum {
		sum = sum[:shortChecksum]
	}
	return fmt.Sprintf("Wrote %s (%s, %s, sha256 %s)", filepath.Base(info.Path), humanize.Bytes(uint64(info.Size)), info.Mode, sum)
}

func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
