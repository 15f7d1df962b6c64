package connectome_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/connectoviz/connectoviz/pkg/connectome"
)

func ExampleNew() {
	m := mat.NewDense(3, 3, nil)
	m.Set(0, 1, 0.4)
	m.Set(1, 2, 1.1)

	c, err := connectome.New(m, []string{"V1", "M1", "S1"},
		connectome.WithAtlas("Schaefer100"),
		connectome.WithGroups([]string{"occipital", "frontal", "parietal"}))
	if err != nil {
		panic(err)
	}

	fmt.Println(c.Summary())
	// Output:
	// Atlas: Schaefer100
	// Nodes: 3
	// Edges: 2
	// Groups: 3
}

func ExampleConnectome_Edges() {
	m := mat.NewDense(3, 3, nil)
	m.Set(0, 1, 0.4)
	m.Set(0, 2, 0)    // zero weight: skipped
	m.Set(1, 2, -0.1) // negative weight: skipped

	c, _ := connectome.New(m, []string{"V1", "M1", "S1"})
	for _, e := range c.Edges() {
		fmt.Printf("%s -- %s (%.1f)\n", c.Region(e.From), c.Region(e.To), e.Weight)
	}
	// Output:
	// V1 -- M1 (0.4)
}
