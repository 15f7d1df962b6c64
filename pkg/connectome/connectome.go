// Package connectome provides the core data model for connectivity matrices.
//
// A [Connectome] couples a square weighted adjacency matrix with index-aligned
// region labels and optional group labels. Connectivity is treated as
// undirected: only the upper triangle of the matrix is read, and entries that
// are not strictly positive are ignored.
//
// All shape invariants are validated eagerly by [New]; a constructed
// Connectome is always internally consistent.
package connectome

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/connectoviz/connectoviz/pkg/errors"
)

// Connectome is a validated connectivity matrix with region metadata.
// It is immutable after construction and safe for concurrent reads.
type Connectome struct {
	m       *mat.Dense
	regions []string
	groups  []string
	atlas   string
}

// Edge is an undirected connection between two regions, identified by their
// indices with From < To.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Option configures optional Connectome fields.
type Option func(*Connectome)

// WithAtlas records the name of the brain atlas the regions come from.
func WithAtlas(name string) Option {
	return func(c *Connectome) { c.atlas = name }
}

// WithGroups attaches per-region group labels, index-aligned with the
// regions. Group labels are used only for node coloring.
func WithGroups(groups []string) Option {
	return func(c *Connectome) { c.groups = groups }
}

// New validates and constructs a Connectome.
//
// The matrix must be square (INVALID_SHAPE), its dimension must equal the
// number of region labels (INVALID_SHAPE), and group labels, if given, must
// match the region count (SHAPE_MISMATCH). Validation is fail-fast: no
// partially constructed Connectome is ever returned.
func New(m *mat.Dense, regions []string, opts ...Option) (*Connectome, error) {
	if m == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "matrix cannot be nil")
	}

	r, cols := m.Dims()
	if r != cols {
		return nil, errors.New(errors.ErrCodeInvalidShape, "matrix must be square, got %dx%d", r, cols)
	}
	if r != len(regions) {
		return nil, errors.New(errors.ErrCodeInvalidShape,
			"region labels must match matrix size: %d labels for %dx%d matrix", len(regions), r, cols)
	}

	c := &Connectome{m: m, regions: regions}
	for _, opt := range opts {
		opt(c)
	}

	if c.groups != nil && len(c.groups) != r {
		return nil, errors.New(errors.ErrCodeShapeMismatch,
			"group labels must match node count: %d labels for %d nodes", len(c.groups), r)
	}

	return c, nil
}

// N returns the number of regions.
func (c *Connectome) N() int {
	n, _ := c.m.Dims()
	return n
}

// Region returns the display name of region i.
func (c *Connectome) Region(i int) string { return c.regions[i] }

// Regions returns a copy of the region labels.
func (c *Connectome) Regions() []string {
	out := make([]string, len(c.regions))
	copy(out, c.regions)
	return out
}

// Groups returns a copy of the group labels, or nil if none were given.
func (c *Connectome) Groups() []string {
	if c.groups == nil {
		return nil
	}
	out := make([]string, len(c.groups))
	copy(out, c.groups)
	return out
}

// Atlas returns the atlas name, or the empty string if unspecified.
func (c *Connectome) Atlas() string { return c.atlas }

// Weight returns the connection strength between regions i and j.
func (c *Connectome) Weight(i, j int) float64 { return c.m.At(i, j) }

// Matrix returns the underlying adjacency matrix. Callers must not mutate it.
func (c *Connectome) Matrix() *mat.Dense { return c.m }

// Edges scans the upper triangle and returns every connection with a
// strictly positive weight, ordered by (From, To). Zero and negative entries
// are both skipped; the cutoff is weight > 0, not a gradient.
func (c *Connectome) Edges() []Edge {
	n := c.N()
	var edges []Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := c.m.At(i, j); w > 0 {
				edges = append(edges, Edge{From: i, To: j, Weight: w})
			}
		}
	}
	return edges
}

// Summary returns a short human-readable description of the connectome.
func (c *Connectome) Summary() string {
	atlas := c.atlas
	if atlas == "" {
		atlas = "unspecified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Atlas: %s\n", atlas)
	fmt.Fprintf(&b, "Nodes: %d\n", c.N())
	fmt.Fprintf(&b, "Edges: %d\n", len(c.Edges()))
	if c.groups != nil {
		fmt.Fprintf(&b, "Groups: %d", countDistinct(c.groups))
	} else {
		b.WriteString("Groups: none")
	}
	return b.String()
}

func countDistinct(labels []string) int {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}
