// Package render provides visualization rendering for connectomes.
//
// # Overview
//
// This package contains the rendering pipeline that transforms an in-memory
// connectivity matrix into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Circular node-link diagrams (in [circular] subpackage)
//   - Graphviz DOT export (in [dot] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// the circular and DOT renderers.
//
//	svg, err := circular.RenderSVG(m, regions, 800)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Circular Diagrams
//
// The [circular] subpackage places regions evenly on the unit circle and
// draws curved weighted edges through the circle center. This is the
// primary connectome visualization.
//
// # DOT Export
//
// The [dot] subpackage emits Graphviz DOT with the circo layout engine for
// interoperability with Graphviz tooling.
//
// [circular]: github.com/connectoviz/connectoviz/pkg/render/circular
// [dot]: github.com/connectoviz/connectoviz/pkg/render/dot
package render
