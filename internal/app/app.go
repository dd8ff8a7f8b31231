package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mikededo/sort-svelte-attributes/internal/config"
	"github.com/mikededo/sort-svelte-attributes/internal/fileutil"
	"github.com/mikededo/sort-svelte-attributes/internal/lint"
	"github.com/mikededo/sort-svelte-attributes/internal/processor"
	"github.com/mikededo/sort-svelte-attributes/internal/report"

	// Register rules via init()
	_ "github.com/mikededo/sort-svelte-attributes/internal/rules/sortattributes"
)

// ErrNeedsSorting is returned in check mode when a file is out of order
var ErrNeedsSorting = errors.New("files need sorting")

func Run() {
	if err := NewCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewCommand builds the root command writing results to stdout and logs to stderr
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		cfg        processor.Config
		extensions string
		logLevel   string
	)

	root := &cobra.Command{
		Use:           "sort-svelte-attributes [flags] <path>",
		Short:         "Check and fix the order of attributes in Svelte components",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Path = args[0]
			cfg.Extensions = strings.Split(extensions, ",")

			logger := newLogger(logLevel, stderr)
			err := run(cmd.Context(), cfg, logger, stdout)
			if err != nil && !errors.Is(err, ErrNeedsSorting) {
				logger.Debug("run failed", "path", cfg.Path, "error", err)
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
			return err
		},
	}

	flags := root.Flags()
	flags.BoolVar(&cfg.Check, "check", false, "Check if files are sorted (exit 1 if not)")
	flags.BoolVar(&cfg.Write, "write", false, "Write changes to files (default: dry-run)")
	flags.BoolVar(&cfg.Recursive, "recursive", true, "Process directories recursively")
	flags.StringVar(&extensions, "extensions", strings.Join(fileutil.DefaultExtensions, ","), "File extensions to process")
	flags.StringSliceVar(&cfg.Exclude, "exclude", nil, "Path globs to skip, relative to <path>")
	flags.IntVar(&cfg.Workers, "workers", 0, "Number of parallel workers (0 = number of CPUs)")
	flags.BoolVar(&cfg.Verbose, "verbose", false, "Show detailed output")
	flags.StringVarP(&cfg.ConfigPath, "config", "c", "", "Path to config file (default: discovered from the working directory)")
	flags.StringVar(&cfg.Preset, "preset", "", "Recommended preset: "+strings.Join(config.PresetNames(), ", "))
	flags.StringVarP(&cfg.Format, "format", "f", "text", "Diagnostics format: text, json")
	flags.StringVar(&logLevel, "log-level", WARN, "Log level: debug, info, warn, error")

	root.AddCommand(rulesCommand(stdout))
	return root
}

func rulesCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "RULE\tFIXABLE\tDESCRIPTION\n")
			for _, d := range lint.GlobalRegistry().All() {
				fixable := "no"
				if d.Fixable {
					fixable = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, fixable, d.Description)
			}
			return tw.Flush()
		},
	}
}

func run(ctx context.Context, cfg processor.Config, logger *slog.Logger, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fileCfg, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Preset != "" {
		fileCfg.Preset = cfg.Preset
	}
	cfg.Exclude = append(cfg.Exclude, fileCfg.Exclude...)

	rules, err := lint.GlobalRegistry().Build(fileCfg)
	if err != nil {
		return err
	}

	reporter, err := report.New(cfg.Format)
	if err != nil {
		return err
	}

	fileInfo, err := os.Stat(cfg.Path)
	if err != nil {
		return fmt.Errorf("cannot access path %s: %w", cfg.Path, err)
	}

	var files []string
	if fileInfo.IsDir() {
		files, err = fileutil.FindFiles(cfg.Path, cfg.Extensions, cfg.Recursive, cfg.Exclude)
		if err != nil {
			return fmt.Errorf("error finding files: %w", err)
		}
	} else if fileutil.HasValidExtension(cfg.Path, cfg.Extensions) {
		files = []string{cfg.Path}
	} else {
		return fmt.Errorf("file %s does not have a valid extension", cfg.Path)
	}

	if len(files) == 0 {
		if cfg.Verbose {
			fmt.Fprintln(stdout, "No Svelte files found")
		}
		return nil
	}
	logger.Info("found files", "count", len(files), "path", cfg.Path)
	if cfg.Verbose {
		fmt.Fprintf(stdout, "Found %d Svelte file(s)\n", len(files))
	}

	results, err := processFiles(ctx, files, cfg, processor.NewProcessor(rules, logger))
	if err != nil {
		return err
	}

	return summarize(results, cfg, reporter, stdout)
}

type fileResult struct {
	file   string
	result processor.ProcessResult
	err    error
}

// processFiles runs the processor over files with a bounded worker pool.
// Per-file errors are collected, not fatal.
func processFiles(ctx context.Context, files []string, cfg processor.Config, p *processor.Processor) ([]fileResult, error) {
	workerCount := cfg.Workers
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}

	results := make([]fileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := p.ProcessFile(ctx, file, cfg)
			results[i] = fileResult{file: file, result: result, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type stats struct {
	totalFiles     int
	filesNeedSort  int
	filesNoChanges int
	errorFiles     int
	totalTags      int
	tagsNeedSort   int
}

func summarize(results []fileResult, cfg processor.Config, reporter report.Reporter, stdout io.Writer) error {
	st := stats{totalFiles: len(results)}
	var diagnostics []lint.Diagnostic
	var errs []error

	for _, r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.file, r.err))
			st.errorFiles++
			continue
		}

		st.totalTags += r.result.TagsFound
		st.tagsNeedSort += r.result.TagsNeedSort
		diagnostics = append(diagnostics, r.result.Diagnostics...)

		if !r.result.Changed && len(r.result.Diagnostics) == 0 {
			st.filesNoChanges++
			if cfg.Verbose && cfg.Check {
				fmt.Fprintf(stdout, "✓ No changes needed %s\n", r.file)
			}
			continue
		}

		st.filesNeedSort++
		if cfg.Verbose {
			switch {
			case cfg.Write:
				fmt.Fprintf(stdout, "✓ Sorted %s (%d tags)\n", r.file, r.result.TagsNeedSort)
			case cfg.Check:
				fmt.Fprintf(stdout, "✗ Needs sorting: %s (%d tags need sorting)\n", r.file, r.result.TagsNeedSort)
			default:
				fmt.Fprintf(stdout, "Would sort %s (%d tags need sorting)\n", r.file, r.result.TagsNeedSort)
			}
		}
	}

	if !cfg.Write {
		sort.SliceStable(diagnostics, func(i, j int) bool {
			if diagnostics[i].Filename != diagnostics[j].Filename {
				return diagnostics[i].Filename < diagnostics[j].Filename
			}
			return diagnostics[i].Pos.Line < diagnostics[j].Pos.Line
		})
		if err := reporter.Report(stdout, diagnostics); err != nil {
			return fmt.Errorf("reporting: %w", err)
		}
	}

	if cfg.Verbose && st.totalFiles > 1 {
		printSummary(stdout, st, cfg)
	}

	if len(errs) > 0 {
		return errs[0]
	}
	if cfg.Check && st.filesNeedSort > 0 {
		return ErrNeedsSorting
	}
	return nil
}

func printSummary(w io.Writer, st stats, cfg processor.Config) {
	fmt.Fprintln(w, "\n─────────────────────────────────────")
	fmt.Fprintf(w, "Total files:    %d\n", st.totalFiles)

	switch {
	case cfg.Check:
		fmt.Fprintf(w, "No changes:     %d\n", st.filesNoChanges)
		if st.filesNeedSort > 0 {
			fmt.Fprintf(w, "Need sorting:   %d ❌\n", st.filesNeedSort)
		}
	case cfg.Write:
		fmt.Fprintf(w, "Sorted:         %d\n", st.filesNeedSort)
		fmt.Fprintf(w, "No changes:     %d\n", st.filesNoChanges)
	default:
		fmt.Fprintf(w, "Would sort:     %d\n", st.filesNeedSort)
		fmt.Fprintf(w, "No changes:     %d\n", st.filesNoChanges)
	}

	if st.errorFiles > 0 {
		fmt.Fprintf(w, "Errors:         %d\n", st.errorFiles)
	}

	if st.totalTags > 0 {
		fmt.Fprintf(w, "\nTags with attributes:\n")
		fmt.Fprintf(w, "Total found:    %d\n", st.totalTags)
		fmt.Fprintf(w, "Need sorting:   %d\n", st.tagsNeedSort)
	}
}
