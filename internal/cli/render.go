package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhofer/treelay/pkg/cache"
	"github.com/mhofer/treelay/pkg/errors"
	"github.com/mhofer/treelay/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file path (or base path for multiple formats)
	view        string   // visualization view: "layered" or "graphviz"
	formats     []string // output formats: "svg", "png", "dot", "json"
	detailed    bool     // show ord/level in graphviz labels
	unit        float64  // pixels per logical x unit (layered view)
	levelHeight float64  // pixels per tree level (layered view)
	cacheDir    string   // directory for the graphviz artifact cache
}

// newRenderCmd creates the render command for generating output artifacts.
//
// Default settings:
//   - view: layered (the embedding's own coordinates)
//   - format: svg
//   - unit: 10px, level height: 60px
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		view:        pipeline.ViewLayered,
		unit:        10,
		levelHeight: 60,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a tree document to SVG, PNG, DOT, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			for _, f := range opts.formats {
				if err := errors.ValidateFormat(f); err != nil {
					return err
				}
			}
			if err := errors.ValidateView(opts.view); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple formats)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, json (comma-separated)")
	cmd.Flags().StringVar(&opts.view, "view", opts.view, "visualization view: layered (default), graphviz")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show ord and level in graphviz labels")
	cmd.Flags().Float64Var(&opts.unit, "unit", opts.unit, "pixels per logical x unit (layered view)")
	cmd.Flags().Float64Var(&opts.levelHeight, "level-height", opts.levelHeight, "pixels per tree level (layered view)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "cache graphviz renders in this directory")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	if opts.output != "" {
		if err := errors.ValidateOutputPath(opts.output); err != nil {
			return err
		}
	}

	sp := newSpinner(ctx, fmt.Sprintf("Rendering %s", input))
	sp.start()

	var rc cache.Cache
	if opts.cacheDir != "" {
		fc, err := cache.NewFileCache(opts.cacheDir)
		if err != nil {
			sp.stop()
			return fmt.Errorf("open cache %s: %w", opts.cacheDir, err)
		}
		defer fc.Close()
		rc = fc
	}

	p := newProgress(logger)
	runner := pipeline.NewRunner(rc, logger)
	result, err := runner.Run(ctx, pipeline.Options{
		Input:       input,
		View:        opts.view,
		Formats:     opts.formats,
		Detailed:    opts.detailed,
		Unit:        opts.unit,
		LevelHeight: opts.levelHeight,
	})
	if err != nil {
		sp.stopWithError(errors.UserMessage(err))
		return err
	}
	sp.stop()
	p.done(fmt.Sprintf("Embedded %d nodes across %d levels", len(result.Embedding), result.Embedding.Height()))

	for _, format := range opts.formats {
		path := outputPath(input, opts.output, opts.formats, format)
		data := result.Artifacts[format]
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printSuccess("wrote %s (%d bytes)", path, len(data))
	}
	return nil
}

// outputPath derives the artifact path for one format. A single requested
// format honors --output verbatim; multiple formats treat --output (or the
// input name) as a base path and append the format extension.
func outputPath(input, output string, formats []string, format string) string {
	if output != "" && len(formats) == 1 {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	return base + "." + format
}
