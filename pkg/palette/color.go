package palette

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/connectoviz/connectoviz/pkg/errors"
)

// Color is an opaque color value. It can be constructed from a CSS-style name,
// a #RRGGBB hex string, or raw RGB components, and is only stringified at the
// drawing-surface boundary.
type Color struct {
	c colorful.Color
}

// namedColors maps the CSS basic color keywords to hex values.
// Anything fancier should be given as hex.
var namedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"orange":  "#ffa500",
}

// Parse converts a color given as a name or #RRGGBB hex string into a Color.
// Returns an INVALID_COLOR error for anything it cannot interpret.
func Parse(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[v]; ok {
		v = hex
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "unrecognized color %q", s)
	}
	return Color{c: c}, nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for package-level palette tables.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB constructs a Color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{c: colorful.Color{R: r, G: g, B: b}}
}

// Hex returns the color as a #rrggbb string for SVG and DOT output.
func (c Color) Hex() string {
	return c.c.Hex()
}

// Std returns the color as a standard library color.Color for raster drawing.
func (c Color) Std() color.Color {
	return c.c
}

// blend interpolates between two colors in HCL space, which keeps
// perceptual brightness monotone for sequential palettes.
func blend(a, b Color, t float64) Color {
	return Color{c: a.c.BlendHcl(b.c, t).Clamped()}
}
