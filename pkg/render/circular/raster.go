package circular

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/connectoviz/connectoviz/pkg/palette"
)

// Raster draws the diagram into an in-memory image via fogleman/gg and
// encodes it as PNG. It produces output without any external tooling, unlike
// the SVG → rsvg-convert path.
type Raster struct {
	dc    *gg.Context
	size  float64
	scale float64
}

// NewRaster creates a square white raster surface of the given pixel size.
func NewRaster(size int) *Raster {
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	s := float64(size)
	return &Raster{
		dc:    dc,
		size:  s,
		scale: s / 2 / viewMargin,
	}
}

func (r *Raster) px(p Point) (float64, float64) {
	return r.size/2 + p.X*r.scale, r.size/2 - p.Y*r.scale
}

// Node implements [Surface].
func (r *Raster) Node(p Point, fill palette.Color) {
	x, y := r.px(p)
	r.dc.SetColor(fill.Std())
	r.dc.DrawCircle(x, y, nodeMarkerRadius)
	r.dc.Fill()
}

// Label implements [Surface].
// Text uses gg's built-in face; callers needing typographic control should
// render SVG instead.
func (r *Raster) Label(p Point, text string) {
	x, y := r.px(p)
	r.dc.SetRGB(0, 0, 0)
	r.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// Edge implements [Surface].
func (r *Raster) Edge(a, b Point, width float64) {
	x1, y1 := r.px(a)
	x2, y2 := r.px(b)
	cx, cy := r.px(Point{})

	r.dc.SetRGBA(0, 0, 1, edgeOpacity)
	r.dc.SetLineWidth(width)
	r.dc.MoveTo(x1, y1)
	r.dc.QuadraticTo(cx, cy, x2, y2)
	r.dc.Stroke()
}

// EncodePNG returns the surface contents as an encoded PNG.
func (r *Raster) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Context returns the underlying gg drawing context.
func (r *Raster) Context() *gg.Context { return r.dc }
