package dot

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/connectoviz/connectoviz/pkg/connectome"
	"github.com/connectoviz/connectoviz/pkg/palette"
)

func testConnectome(t *testing.T) *connectome.Connectome {
	t.Helper()
	m := mat.NewDense(3, 3, nil)
	m.Set(0, 1, 0.4)
	m.Set(0, 2, 0)
	m.Set(1, 2, -0.1)

	c, err := connectome.New(m, []string{"V1", "M1", "S1"})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestToDOT(t *testing.T) {
	c := testConnectome(t)
	out := ToDOT(c, nil)

	if !strings.HasPrefix(out, "graph connectome {") {
		t.Errorf("not an undirected graph: %.40s", out)
	}
	if !strings.Contains(out, "layout=circo") {
		t.Error("circo layout attribute missing")
	}
	for _, region := range []string{`"V1"`, `"M1"`, `"S1"`} {
		if !strings.Contains(out, region) {
			t.Errorf("node %s missing", region)
		}
	}

	// Only the strictly positive weight becomes an edge.
	if got := strings.Count(out, " -- "); got != 1 {
		t.Errorf("got %d edges, want 1:\n%s", got, out)
	}
	if !strings.Contains(out, "penwidth=2.00") {
		t.Error("pen width should be 0.4*5 = 2.00")
	}
}

func TestToDOTColors(t *testing.T) {
	c := testConnectome(t)
	red := palette.MustParse("red")
	out := ToDOT(c, []palette.Color{red, red, red})

	if got := strings.Count(out, `fillcolor="#ff0000"`); got != 3 {
		t.Errorf("got %d red nodes, want 3:\n%s", got, out)
	}
}

func TestToDOTDefaultColor(t *testing.T) {
	out := ToDOT(testConnectome(t), nil)
	if got := strings.Count(out, `fillcolor="#000000"`); got != 3 {
		t.Errorf("nil colors should use the default node color, got:\n%s", out)
	}
}
