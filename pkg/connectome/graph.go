package connectome

import (
	"encoding/json"

	"gonum.org/v1/gonum/mat"

	"github.com/connectoviz/connectoviz/pkg/errors"
)

// Graph is the canonical serialization format for a connectome.
// It is designed for round-trip fidelity: export → re-import produces an
// equivalent Connectome (the matrix is rebuilt symmetric from the edge list,
// which is lossless because only the upper triangle is ever read).
type Graph struct {
	Atlas string      `json:"atlas,omitempty"`
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// GraphNode is one region in the serialized form.
type GraphNode struct {
	Region string `json:"region"`
	Group  string `json:"group,omitempty"`
}

// GraphEdge is one positive-weight connection, with From < To.
type GraphEdge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// ToGraph converts a Connectome to its serialization format.
// Only edges with strictly positive weight are emitted.
func ToGraph(c *Connectome) Graph {
	g := Graph{
		Atlas: c.Atlas(),
		Nodes: make([]GraphNode, c.N()),
	}
	for i := range g.Nodes {
		g.Nodes[i].Region = c.Region(i)
		if c.groups != nil {
			g.Nodes[i].Group = c.groups[i]
		}
	}
	for _, e := range c.Edges() {
		g.Edges = append(g.Edges, GraphEdge(e))
	}
	return g
}

// FromGraph rebuilds a Connectome from its serialization format.
// Edge weights are mirrored across the diagonal so the resulting matrix is
// symmetric. Edges referencing unknown node indices are rejected.
func FromGraph(g Graph) (*Connectome, error) {
	n := len(g.Nodes)
	regions := make([]string, n)
	var groups []string
	for i, node := range g.Nodes {
		regions[i] = node.Region
		if node.Group != "" && groups == nil {
			groups = make([]string, n)
		}
	}
	if groups != nil {
		for i, node := range g.Nodes {
			groups[i] = node.Group
		}
	}

	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph has no nodes")
	}
	m := mat.NewDense(n, n, nil)
	for _, e := range g.Edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"edge %d-%d references unknown node (have %d nodes)", e.From, e.To, n)
		}
		m.Set(e.From, e.To, e.Weight)
		m.Set(e.To, e.From, e.Weight)
	}

	opts := []Option{}
	if g.Atlas != "" {
		opts = append(opts, WithAtlas(g.Atlas))
	}
	if groups != nil {
		opts = append(opts, WithGroups(groups))
	}
	return New(m, regions, opts...)
}

// MarshalJSON implements json.Marshaler via the Graph form.
func (c *Connectome) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToGraph(c))
}
