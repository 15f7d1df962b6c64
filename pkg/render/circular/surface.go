package circular

import "github.com/connectoviz/connectoviz/pkg/palette"

// Point is a node coordinate in unit-circle space: the layout places nodes
// on the circle of radius 1 around the origin, labels at radius 1.1.
type Point struct {
	X, Y float64
}

// Surface is a 2D drawing target for circular diagrams. Implementations map
// unit-circle coordinates onto their own pixel space.
//
// A Surface has a single writer: draw calls for one diagram must come from
// one goroutine, in order. [Plot] draws each node with its label first, then
// all edges.
type Surface interface {
	// Node draws a filled marker at p.
	Node(p Point, fill palette.Color)
	// Label draws centered text at p.
	Label(p Point, text string)
	// Edge draws an unfilled quadratic curve from a through the circle
	// center (0,0) to b with the given stroke width. Edge color and opacity
	// are fixed properties of the diagram, not parameters.
	Edge(a, b Point, width float64)
}
