// Package pkg provides the core libraries for Connectoviz connectome visualization.
//
// # Overview
//
// Connectoviz turns weighted brain connectivity matrices into circular node-link
// diagrams. The pkg directory is organized into a handful of focused packages:
//
//  1. [connectome] - Domain model (validated matrix + region labels + groups)
//  2. [palette] - Color parsing, categorical and sequential palettes
//  3. [render] - Rendering surfaces (circular SVG/PNG, Graphviz DOT, PDF)
//  4. [pipeline] - Orchestration (load → layout → render)
//  5. [io] - Matrix and metadata import/export (CSV, TSV, JSON)
//
// # Architecture
//
// The typical data flow through Connectoviz:
//
//	Connectivity matrix (CSV/TSV/JSON)
//	         ↓
//	    [connectome] package (validate shape, labels, groups)
//	         ↓
//	    [render/circular] package (unit-circle layout + edge drawing)
//	         ↓
//	    SVG/PNG/PDF/DOT/JSON output
//
// # Quick Start
//
// Build a connectome and render it as SVG:
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//	    "github.com/connectoviz/connectoviz/pkg/render/circular"
//	)
//
//	// 1. Assemble the adjacency matrix.
//	m := mat.NewDense(3, 3, nil)
//	m.Set(0, 1, 0.4)
//	m.Set(1, 2, 0.9)
//
//	// 2. Render it.
//	svg, err := circular.RenderSVG(m, []string{"V1", "M1", "S1"}, 800)
//
// For file-based workflows (paths in, artifacts out) use [pipeline.Runner],
// which the connectoviz CLI is a thin wrapper around.
package pkg
