package processor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mikededo/sort-svelte-attributes/internal/lint"
	"github.com/mikededo/sort-svelte-attributes/internal/parser"
)

// maxFixPasses bounds the lint/fix loop of one file
const maxFixPasses = 10

// Config holds the configuration for processing files
type Config struct {
	Check      bool
	Write      bool
	Recursive  bool
	Verbose    bool
	Extensions []string
	Exclude    []string
	Path       string
	Workers    int
	ConfigPath string
	Preset     string
	Format     string
}

// ProcessResult contains the result of processing a file
type ProcessResult struct {
	Changed      bool
	TagsFound    int
	TagsNeedSort int
	// Diagnostics are the problems found in the original content
	Diagnostics []lint.Diagnostic
	// Remaining are the problems left after fixing
	Remaining []lint.Diagnostic
	// Output is the fixed content
	Output []byte
}

// Processor runs the configured rules over svelte files
type Processor struct {
	rules  []lint.Rule
	logger *slog.Logger
}

// NewProcessor creates a processor for rules. A nil logger discards output.
func NewProcessor(rules []lint.Rule, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{rules: rules, logger: logger}
}

// ProcessFile lints one file and writes the fixed content back when requested
func (p *Processor) ProcessFile(ctx context.Context, filePath string, config Config) (ProcessResult, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("reading file: %w", err)
	}

	result, err := p.ProcessContent(ctx, filePath, content)
	if err != nil {
		return result, err
	}

	if result.Changed && config.Write {
		info, err := os.Stat(filePath)
		if err != nil {
			return result, fmt.Errorf("stat file: %w", err)
		}
		if err := os.WriteFile(filePath, result.Output, info.Mode().Perm()); err != nil {
			return result, fmt.Errorf("writing file: %w", err)
		}
		p.logger.Debug("wrote fixes", "file", filePath, "tags", result.TagsNeedSort)
	}

	return result, nil
}

// ProcessContent lints content and applies fixes until the content is stable
// or the pass limit is reached
func (p *Processor) ProcessContent(ctx context.Context, filename string, content []byte) (ProcessResult, error) {
	result := ProcessResult{Output: content}

	doc, diagnostics, tagsNeedSort, err := p.lint(ctx, filename, content)
	if err != nil {
		return result, err
	}
	result.TagsFound = len(doc.Tags)
	result.TagsNeedSort = tagsNeedSort
	result.Diagnostics = diagnostics
	result.Remaining = diagnostics

	text := string(content)
	for pass := 1; pass <= maxFixPasses && len(result.Remaining) > 0; pass++ {
		fixed, applied := lint.ApplyFixes(text, result.Remaining)
		if !applied {
			break
		}
		text = fixed

		_, remaining, _, err := p.lint(ctx, filename, []byte(text))
		if err != nil {
			return result, fmt.Errorf("pass %d: %w", pass, err)
		}
		result.Remaining = remaining
		p.logger.Debug("applied fixes", "file", filename, "pass", pass, "remaining", len(remaining))
	}

	result.Output = []byte(text)
	result.Changed = !bytes.Equal(result.Output, content)
	return result, nil
}

func (p *Processor) lint(ctx context.Context, filename string, content []byte) (*parser.Document, []lint.Diagnostic, int, error) {
	doc, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, nil, 0, err
	}
	if doc.Skipped > 0 {
		p.logger.Debug("skipped tags", "file", filename, "count", doc.Skipped)
	}

	lintCtx := lint.NewContext(filename, doc.Source)
	tagsNeedSort := 0
	for _, tag := range doc.Tags {
		before := len(lintCtx.Diagnostics())
		for _, rule := range p.rules {
			if err := rule.Check(lintCtx.ForRule(rule), tag); err != nil {
				return nil, nil, 0, fmt.Errorf("%s: %w", rule.Name(), err)
			}
		}
		if len(lintCtx.Diagnostics()) > before {
			tagsNeedSort++
		}
	}

	return doc, lintCtx.Diagnostics(), tagsNeedSort, nil
}
