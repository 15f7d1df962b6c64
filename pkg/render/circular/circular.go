// Package circular renders a connectivity matrix as a circular node-link
// diagram: regions placed evenly on the unit circle, curved edges drawn
// through the circle center with stroke width proportional to connection
// weight, and optional group-based node coloring.
//
// The rendering contract follows the classic connectome circle plot:
//
//   - node k of n sits at angle 2πk/n, counter-clockwise from angle 0
//   - labels sit at 1.1× the node radius along the same angle
//   - an edge is drawn for every unordered pair (i, j), i < j, whose matrix
//     entry is strictly positive; zero and negative weights are skipped
//   - stroke width is weight × 5, edge color and opacity are fixed
//
// Drawing happens against a [Surface]; [SVGSurface] and [Raster] are
// provided, and the recording pattern makes the geometry testable without
// a graphics stack.
package circular

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/connectoviz/connectoviz/pkg/errors"
	"github.com/connectoviz/connectoviz/pkg/palette"
)

const (
	// labelRadius pushes labels slightly outside the circle so they do not
	// overlap the node markers.
	labelRadius = 1.1

	// widthScale converts a connection weight into a stroke width.
	widthScale = 5.0
)

// DefaultSize is the pixel size of the square surface created when the
// caller does not supply one.
const DefaultSize = 800

// Layout returns n positions evenly spaced on the unit circle, starting at
// angle 0 and proceeding counter-clockwise in increments of 2π/n. The range
// is half-open: there is no position at the full turn.
func Layout(n int) []Point {
	pts := make([]Point, n)
	for k := range pts {
		theta := 2 * math.Pi * float64(k) / float64(n)
		pts[k] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return pts
}

type plotter struct {
	groups      []string
	groupColors map[string]palette.Color
	paletteName string
	surface     Surface
}

// Option configures a call to [Plot].
type Option func(*plotter)

// WithGroups attaches per-node group labels used for coloring.
// Length must equal the matrix dimension.
func WithGroups(groups []string) Option {
	return func(p *plotter) { p.groups = groups }
}

// WithGroupColors supplies an explicit group→color mapping. Every distinct
// group present in the group labels must have an entry.
func WithGroupColors(colors map[string]palette.Color) Option {
	return func(p *plotter) { p.groupColors = colors }
}

// WithPalette names the palette sampled when no explicit mapping is given.
// Defaults to [palette.Default].
func WithPalette(name string) Option {
	return func(p *plotter) { p.paletteName = name }
}

// WithSurface draws onto an existing surface instead of creating a new one.
func WithSurface(s Surface) Option {
	return func(p *plotter) { p.surface = s }
}

// Plot draws the circular diagram for the matrix onto the configured
// surface. If no surface is given, a fresh square [SVGSurface] of
// [DefaultSize] is created and mutated; callers who need the output should
// pass their own surface or use [RenderSVG] / [RenderPNG].
//
// Validation is fail-fast: the matrix must be square and its dimension must
// equal len(regions) (INVALID_SHAPE), and group labels and colors are
// checked before anything is drawn.
func Plot(m *mat.Dense, regions []string, opts ...Option) error {
	p := plotter{paletteName: palette.Default}
	for _, opt := range opts {
		opt(&p)
	}

	r, c := m.Dims()
	if r != c {
		return errors.New(errors.ErrCodeInvalidShape, "matrix must be square, got %dx%d", r, c)
	}
	if r != len(regions) {
		return errors.New(errors.ErrCodeInvalidShape,
			"region labels must match matrix size: %d labels for %dx%d matrix", len(regions), r, c)
	}

	n := r
	colors, err := palette.Resolve(p.groups, p.groupColors, p.paletteName, n)
	if err != nil {
		return err
	}

	if p.surface == nil {
		p.surface = NewSVGSurface(DefaultSize)
	}

	coords := Layout(n)
	for i, pt := range coords {
		p.surface.Node(pt, colors[i])
		p.surface.Label(Point{X: pt.X * labelRadius, Y: pt.Y * labelRadius}, regions[i])
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := m.At(i, j); w > 0 {
				p.surface.Edge(coords[i], coords[j], w*widthScale)
			}
		}
	}

	return nil
}

// RenderSVG plots the matrix onto a fresh square SVG surface of the given
// pixel size and returns the SVG document. A size of 0 uses [DefaultSize].
func RenderSVG(m *mat.Dense, regions []string, size int, opts ...Option) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	s := NewSVGSurface(size)
	if err := Plot(m, regions, append(opts, WithSurface(s))...); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// RenderPNG plots the matrix onto a fresh square raster surface of the given
// pixel size and returns the encoded PNG. A size of 0 uses [DefaultSize].
func RenderPNG(m *mat.Dense, regions []string, size int, opts ...Option) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	s := NewRaster(size)
	if err := Plot(m, regions, append(opts, WithSurface(s))...); err != nil {
		return nil, err
	}
	return s.EncodePNG()
}
