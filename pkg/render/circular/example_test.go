package circular_test

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/connectoviz/connectoviz/pkg/render/circular"
)

func ExampleRenderSVG() {
	m := mat.NewDense(4, 4, nil)
	m.Set(0, 2, 0.6)
	m.Set(1, 3, 0.3)

	svg, err := circular.RenderSVG(m, []string{"V1", "M1", "S1", "A1"}, 400,
		circular.WithGroups([]string{"visual", "motor", "somato", "auditory"}))
	if err != nil {
		panic(err)
	}

	out := string(svg)
	fmt.Println("nodes:", strings.Count(out, "<circle"))
	fmt.Println("edges:", strings.Count(out, "<path"))
	// Output:
	// nodes: 4
	// edges: 2
}

func ExampleLayout() {
	for _, p := range circular.Layout(4) {
		fmt.Printf("(%.0f, %.0f)\n", p.X, p.Y)
	}
	// Output:
	// (1, 0)
	// (0, 1)
	// (-1, 0)
	// (-0, -1)
}
