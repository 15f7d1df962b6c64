// Package dot exports connectomes as Graphviz DOT and renders them with the
// circo circular layout engine. Nodes appear as filled circles, connections
// as undirected edges whose pen width scales with weight.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/connectoviz/connectoviz/pkg/connectome"
	"github.com/connectoviz/connectoviz/pkg/palette"
	"github.com/connectoviz/connectoviz/pkg/render"
)

// penWidthScale matches the circular renderer: stroke width = weight × 5.
const penWidthScale = 5.0

// ToDOT converts a connectome to Graphviz DOT using the circo layout.
// colors must hold one resolved color per region (see [palette.Resolve]);
// nil colors renders every node in the default node color.
func ToDOT(c *connectome.Connectome, colors []palette.Color) string {
	var buf bytes.Buffer
	buf.WriteString("graph connectome {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=10, fixedsize=true, width=0.9];\n")
	buf.WriteString("\n")

	for i := 0; i < c.N(); i++ {
		fill := palette.DefaultNodeColor
		if colors != nil {
			fill = colors[i]
		}
		fmt.Fprintf(&buf, "  %q [fillcolor=%q, fontcolor=white];\n", c.Region(i), fill.Hex())
	}

	buf.WriteString("\n")
	for _, e := range c.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q [penwidth=%.2f, color=\"#0000ff80\"];\n",
			c.Region(e.From), c.Region(e.To), e.Weight*penWidthScale)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns SVG bytes ready for display or conversion with [render.ToPDF] or
// [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg (rsvg-convert on PATH).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}
