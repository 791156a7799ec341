package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/pipeline"
)

// compileOpts holds the command-line flags for the compile command.
type compileOpts struct {
	sheet   string // sheet TOML path; empty uses the built-in dashboard table
	output  string // output file (single format) or base path (multiple)
	formats []string
	widths  []int
	noCache bool
	refresh bool
}

// compileCommand creates the compile command for rendering artifacts.
//
// Default settings:
//   - format: css
//   - widths: one representative width per device class
//   - caching: file cache under the XDG cache directory
func (c *CLI) compileCommand() *cobra.Command {
	var formatsStr string
	var opts compileOpts

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the sheet to CSS and other artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runCompile(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sheet, "sheet", "s", "", "sheet TOML file (default: built-in dashboard sheet)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): css (default), json, dot, svg (comma-separated)")
	cmd.Flags().IntSliceVarP(&opts.widths, "width", "w", nil, "snapshot width(s) for the json format")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and recompute")

	return cmd
}

func (c *CLI) runCompile(cmd *cobra.Command, opts *compileOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}

	spin := newSpinnerWithContext(cmd.Context(), "compiling sheet")
	spin.Start()
	prog := newProgress(c.Logger)

	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		SheetPath: opts.sheet,
		Widths:    opts.widths,
		Formats:   opts.formats,
		Refresh:   opts.refresh,
		Logger:    c.Logger,
	})
	spin.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Compiled %d artifacts", len(result.Artifacts)))

	printSuccess("Compiled sheet %s", StyleHighlight.Render(result.Sheet.Name))
	printStats(result.Stats.RegionCount, result.Stats.BandCount, result.CacheInfo.RenderHit)

	if opts.output == "" {
		// Single format without an output path streams to stdout.
		if len(opts.formats) == 1 {
			_, err := os.Stdout.Write(result.Artifacts[opts.formats[0]])
			return err
		}
		return fmt.Errorf("multiple formats need --output")
	}

	for _, format := range opts.formats {
		path := outputPath(opts.output, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// outputPath derives the file path for one format. With several formats the
// base path gets the format as extension.
func outputPath(base, format string, multi bool) string {
	if !multi {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "." + format
}
