package circular

import (
	"bytes"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSVGSurfaceOutput(t *testing.T) {
	m := mat.NewDense(3, 3, nil)
	m.Set(0, 1, 0.4)

	svg, err := RenderSVG(m, []string{"V1", "M1", "A<1>"}, 400)
	if err != nil {
		t.Fatal(err)
	}
	out := string(svg)

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("output does not start with svg element: %.60s", out)
	}
	if !strings.Contains(out, `viewBox="0 0 400 400"`) {
		t.Error("viewBox missing or wrong size")
	}
	if got := strings.Count(out, "<circle"); got != 3 {
		t.Errorf("got %d circle elements, want 3", got)
	}
	if got := strings.Count(out, "<text"); got != 3 {
		t.Errorf("got %d text elements, want 3", got)
	}
	if got := strings.Count(out, "<path"); got != 1 {
		t.Errorf("got %d path elements, want 1", got)
	}
	if !strings.Contains(out, `stroke-width="2.00"`) {
		t.Error("edge stroke width should be 0.4*5 = 2.00")
	}
	if !strings.Contains(out, `stroke-opacity="0.50"`) {
		t.Error("edge opacity should be fixed at 0.5")
	}
	if !strings.Contains(out, `fill="none"`) {
		t.Error("edge curve must be unfilled")
	}
	if strings.Contains(out, "A<1>") {
		t.Error("label text not XML-escaped")
	}
	if !strings.Contains(out, "A&lt;1&gt;") {
		t.Error("escaped label missing")
	}
}

func TestSVGEdgeCurvesThroughCenter(t *testing.T) {
	s := NewSVGSurface(100)
	s.Edge(Point{X: 1, Y: 0}, Point{X: -1, Y: 0}, 1)

	// The quadratic control point is the circle center, which maps to the
	// middle of the 100px surface.
	if !strings.Contains(string(s.Bytes()), "Q 50.00 50.00") {
		t.Errorf("edge path missing center control point: %s", s.Bytes())
	}
}

func TestSVGDeterministic(t *testing.T) {
	m := mat.NewDense(4, 4, nil)
	m.Set(0, 3, 0.9)
	regions := []string{"a", "b", "c", "d"}

	first, err := RenderSVG(m, regions, 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := RenderSVG(m, regions, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical inputs produced different SVG")
	}
}

func TestRasterEncodePNG(t *testing.T) {
	m := mat.NewDense(3, 3, nil)
	m.Set(0, 1, 0.4)

	png, err := RenderPNG(m, []string{"a", "b", "c"}, 64)
	if err != nil {
		t.Fatal(err)
	}

	// PNG signature
	if !bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}) {
		t.Errorf("output is not a PNG: % x", png[:8])
	}
}
