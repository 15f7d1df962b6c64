package circular

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/connectoviz/connectoviz/pkg/palette"
)

// Fixed edge styling. Width varies with connection weight; everything else
// is constant across the diagram.
const (
	edgeColor   = "#0000ff"
	edgeOpacity = 0.5
)

const (
	nodeMarkerRadius = 4.0
	labelFontSize    = 11.0

	// viewMargin leaves room for labels at radius 1.1 plus text overhang.
	viewMargin = 1.25
)

// SVGSurface renders draw calls into a standalone SVG document. It has no
// axis decorations; the viewport is a blank square centered on the circle.
//
// Elements are written in call order, so edges drawn after nodes sit on top
// of the markers, matching the reference rendering.
type SVGSurface struct {
	size  float64
	scale float64
	body  bytes.Buffer
}

// NewSVGSurface creates a square SVG surface of the given pixel size.
func NewSVGSurface(size int) *SVGSurface {
	s := float64(size)
	return &SVGSurface{
		size:  s,
		scale: s / 2 / viewMargin,
	}
}

// px maps a unit-circle point into pixel space. SVG y grows downward, so the
// y axis is flipped to keep the layout counter-clockwise.
func (s *SVGSurface) px(p Point) (float64, float64) {
	return s.size/2 + p.X*s.scale, s.size/2 - p.Y*s.scale
}

// Node implements [Surface].
func (s *SVGSurface) Node(p Point, fill palette.Color) {
	x, y := s.px(p)
	fmt.Fprintf(&s.body, `  <circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>`+"\n",
		x, y, nodeMarkerRadius, fill.Hex())
}

// Label implements [Surface].
func (s *SVGSurface) Label(p Point, text string) {
	x, y := s.px(p)
	fmt.Fprintf(&s.body,
		`  <text x="%.2f" y="%.2f" font-size="%.0f" font-family="sans-serif" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		x, y, labelFontSize, escapeXML(text))
}

// Edge implements [Surface].
func (s *SVGSurface) Edge(a, b Point, width float64) {
	x1, y1 := s.px(a)
	x2, y2 := s.px(b)
	cx, cy := s.px(Point{})
	fmt.Fprintf(&s.body,
		`  <path d="M %.2f %.2f Q %.2f %.2f %.2f %.2f" stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f" fill="none"/>`+"\n",
		x1, y1, cx, cy, x2, y2, edgeColor, width, edgeOpacity)
}

// Bytes returns the complete SVG document.
func (s *SVGSurface) Bytes() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		s.size, s.size, s.size, s.size)
	out.Write(s.body.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

// escapeXML escapes label text for safe embedding in SVG.
func escapeXML(text string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(text)); err != nil {
		return ""
	}
	return buf.String()
}
