package pipeline

import (
	"bytes"
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/connectoviz/connectoviz/pkg/connectome"
	cio "github.com/connectoviz/connectoviz/pkg/io"
	"github.com/connectoviz/connectoviz/pkg/observability"
	"github.com/connectoviz/connectoviz/pkg/palette"
	"github.com/connectoviz/connectoviz/pkg/render"
	"github.com/connectoviz/connectoviz/pkg/render/circular"
	"github.com/connectoviz/connectoviz/pkg/render/dot"
)

// Result contains the outputs of a pipeline run.
type Result struct {
	// Connectome is the validated data model built from the inputs.
	Connectome *connectome.Connectome

	// Positions holds the circular node coordinates, index-aligned with
	// the regions.
	Positions []circular.Point

	// Colors holds the resolved per-node colors.
	Colors []palette.Color

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Runner executes the load → layout → render pipeline.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil logger falls back to the
// default charmbracelet logger.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{logger: logger}
}

// Execute runs the complete pipeline and returns the rendered artifacts.
// The context is checked between stages; rendering a single surface is not
// interruptible.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if !opts.validated {
		if err := opts.ValidateAndSetDefaults(); err != nil {
			return nil, err
		}
	}

	c, loadTime, err := r.load(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Connectome: c,
		Artifacts:  make(map[string][]byte, len(opts.Formats)),
		Stats: Stats{
			NodeCount: c.N(),
			EdgeCount: len(c.Edges()),
			LoadTime:  loadTime,
		},
	}

	if err := r.layout(ctx, opts, res); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.renderAll(ctx, opts, res); err != nil {
		return nil, err
	}
	return res, nil
}

// load reads the matrix and optional metadata and builds the connectome.
func (r *Runner) load(ctx context.Context, opts Options) (*connectome.Connectome, time.Duration, error) {
	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.MatrixPath)
	r.logger.Debug("loading matrix", "path", opts.MatrixPath)

	m, err := cio.ImportMatrix(opts.MatrixPath)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.MatrixPath, 0, time.Since(start), err)
		return nil, 0, err
	}

	rows, _ := m.Dims()
	regions := make([]string, rows)
	var copts []connectome.Option
	if opts.Atlas != "" {
		copts = append(copts, connectome.WithAtlas(opts.Atlas))
	}

	if opts.MetadataPath != "" {
		md, err := cio.ImportMetadata(opts.MetadataPath)
		if err != nil {
			observability.Pipeline().OnLoadComplete(ctx, opts.MatrixPath, 0, time.Since(start), err)
			return nil, 0, err
		}
		regions = md.Regions
		if opts.GroupBy != "" {
			groups, err := md.Column(opts.GroupBy)
			if err != nil {
				observability.Pipeline().OnLoadComplete(ctx, opts.MatrixPath, 0, time.Since(start), err)
				return nil, 0, err
			}
			copts = append(copts, connectome.WithGroups(groups))
		}
	} else {
		for i := range regions {
			regions[i] = defaultRegionName(i)
		}
	}

	c, err := connectome.New(m, regions, copts...)
	elapsed := time.Since(start)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.MatrixPath, 0, elapsed, err)
		return nil, 0, err
	}

	observability.Pipeline().OnLoadComplete(ctx, opts.MatrixPath, c.N(), elapsed, nil)
	r.logger.Debug("loaded connectome", "nodes", c.N(), "edges", len(c.Edges()), "elapsed", elapsed)
	return c, elapsed, nil
}

// layout computes node positions and resolves node colors.
func (r *Runner) layout(ctx context.Context, opts Options, res *Result) error {
	start := time.Now()
	c := res.Connectome
	observability.Pipeline().OnLayoutStart(ctx, c.N())

	res.Positions = circular.Layout(c.N())
	colors, err := palette.Resolve(c.Groups(), opts.GroupColors, opts.Palette, c.N())

	elapsed := time.Since(start)
	res.Stats.LayoutTime = elapsed
	observability.Pipeline().OnLayoutComplete(ctx, elapsed, err)
	if err != nil {
		return err
	}

	res.Colors = colors
	r.logger.Debug("computed layout", "nodes", c.N(), "elapsed", elapsed)
	return nil
}

// renderAll produces one artifact per requested format.
func (r *Runner) renderAll(ctx context.Context, opts Options, res *Result) error {
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	c := res.Connectome
	plotOpts := r.plotOptions(c, opts)

	var svg []byte
	renderSVG := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		out, err := circular.RenderSVG(c.Matrix(), c.Regions(), opts.Size, plotOpts...)
		if err != nil {
			return nil, err
		}
		svg = out
		return svg, nil
	}

	var err error
	for _, format := range opts.Formats {
		var artifact []byte
		switch format {
		case FormatSVG:
			artifact, err = renderSVG()
		case FormatPNG:
			artifact, err = circular.RenderPNG(c.Matrix(), c.Regions(), opts.Size, plotOpts...)
		case FormatPDF:
			var s []byte
			if s, err = renderSVG(); err == nil {
				artifact, err = render.ToPDF(s)
			}
		case FormatDOT:
			artifact = []byte(dot.ToDOT(c, res.Colors))
		case FormatJSON:
			var buf bytes.Buffer
			if err = cio.WriteJSON(c, &buf); err == nil {
				artifact = buf.Bytes()
			}
		}
		if err != nil {
			break
		}
		res.Artifacts[format] = artifact
		r.logger.Debug("rendered artifact", "format", format, "bytes", len(artifact))
	}

	elapsed := time.Since(start)
	res.Stats.RenderTime = elapsed
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, elapsed, err)
	return err
}

func (r *Runner) plotOptions(c *connectome.Connectome, opts Options) []circular.Option {
	plotOpts := []circular.Option{circular.WithPalette(opts.Palette)}
	if groups := c.Groups(); groups != nil {
		plotOpts = append(plotOpts, circular.WithGroups(groups))
	}
	if opts.GroupColors != nil {
		plotOpts = append(plotOpts, circular.WithGroupColors(opts.GroupColors))
	}
	return plotOpts
}

// defaultRegionName labels region i when no metadata is supplied.
func defaultRegionName(i int) string {
	return "R" + strconv.Itoa(i+1)
}
