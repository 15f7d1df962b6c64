package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/connectoviz/connectoviz/pkg/errors"
	"github.com/connectoviz/connectoviz/pkg/palette"
	"github.com/connectoviz/connectoviz/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file path (or base path for multiple formats)
	metadata    string   // region metadata CSV
	groupBy     string   // metadata column used for node coloring
	groupColors []string // explicit group=color pairs
	paletteName string   // palette sampled when no explicit colors are given
	formats     []string // output formats
	size        int      // square surface size in pixels
	atlas       string   // atlas name recorded in summaries and JSON output
}

// newRenderCmd creates the render command for generating visualizations.
//
// Default settings come from the user config file (palette, format, size)
// with built-in fallbacks: tab20 palette, SVG output, 800px surface.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <matrix-file>",
		Short: "Render a connectivity matrix as a circular diagram",
		Long: `Render a connectivity matrix as a circular node-link diagram.

The matrix file is dense numeric CSV, TSV, or JSON. Region names and group
labels come from an optional metadata CSV (--metadata, --group-by); without
metadata, regions are named R1..RN and drawn in a single color.

Edges are drawn for strictly positive weights only, curved through the
circle center, with stroke width proportional to weight.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if opts.paletteName == "" {
				opts.paletteName = cfg.Palette
			}
			if opts.size == 0 {
				opts.size = cfg.Size
			}
			opts.formats = pipeline.ParseFormats(formatsStr)
			if len(opts.formats) == 0 {
				opts.formats = []string{cfg.Format}
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.metadata, "metadata", "m", "", "region metadata CSV (region names + grouping columns)")
	cmd.Flags().StringVarP(&opts.groupBy, "group-by", "g", "", "metadata column used for node coloring")
	cmd.Flags().StringSliceVar(&opts.groupColors, "group-color", nil, "explicit group=color pair (repeatable)")
	cmd.Flags().StringVarP(&opts.paletteName, "palette", "p", "", "palette for group coloring: "+strings.Join(palette.Names(), ", "))
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg, png, pdf, dot, json (comma-separated)")
	cmd.Flags().IntVar(&opts.size, "size", 0, "square surface size in pixels")
	cmd.Flags().StringVar(&opts.atlas, "atlas", "", "atlas name recorded in output")

	return cmd
}

func runRender(ctx context.Context, matrixPath string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	groupColors, err := parseGroupColors(opts.groupColors)
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		MatrixPath:   matrixPath,
		MetadataPath: opts.metadata,
		GroupBy:      opts.groupBy,
		Atlas:        opts.atlas,
		Palette:      opts.paletteName,
		GroupColors:  groupColors,
		Formats:      opts.formats,
		Size:         opts.size,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	result, err := pipeline.NewRunner(logger).Execute(ctx, popts)
	if err != nil {
		printError(os.Stderr, "%s", errors.UserMessage(err))
		return err
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(matrixPath, filepath.Ext(matrixPath))
	}
	if err := errors.ValidateOutputPath(base); err != nil {
		return err
	}

	for _, format := range popts.Formats {
		path := outputPath(base, format, len(popts.Formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printSuccess(os.Stdout, "wrote %s (%d bytes)", path, len(result.Artifacts[format]))
	}

	prog.done(fmt.Sprintf("Rendered %d nodes, %d edges", result.Stats.NodeCount, result.Stats.EdgeCount))
	return nil
}

// outputPath derives the artifact path for a format. With a single format
// the base keeps its extension if it already has the right one.
func outputPath(base, format string, multi bool) string {
	ext := "." + format
	if !multi && strings.HasSuffix(base, ext) {
		return base
	}
	return base + ext
}

// parseGroupColors parses repeated group=color flags into a mapping.
func parseGroupColors(pairs []string) (map[string]palette.Color, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]palette.Color, len(pairs))
	for _, pair := range pairs {
		group, value, ok := strings.Cut(pair, "=")
		if !ok || group == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"invalid --group-color %q (want group=color)", pair)
		}
		c, err := palette.Parse(value)
		if err != nil {
			return nil, err
		}
		out[group] = c
	}
	return out, nil
}
