package render

import (
	"bytes"
	"fmt"
	"os/exec"
)

// rsvgBinary is the external converter used for PDF and PNG output.
const rsvgBinary = "rsvg-convert"

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg (brew install librsvg / apt install librsvg2-bin).
func ToPDF(svg []byte) ([]byte, error) {
	return rsvg(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert at the given scale
// factor. A scale of 2.0 produces a 2x resolution image.
// Requires librsvg (brew install librsvg / apt install librsvg2-bin).
//
// For circular diagrams the raster surface in the [circular] subpackage can
// produce PNG directly without the external tool.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvg(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvg pipes the SVG through rsvg-convert and returns the converted bytes.
func rsvg(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath(rsvgBinary); err != nil {
		return nil, fmt.Errorf("%s export requires librsvg (install rsvg-convert): %w", format, err)
	}

	cmd := exec.Command(rsvgBinary, append([]string{"-f", format}, extraArgs...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %v: %s", rsvgBinary, err, errBuf.String())
	}
	return out.Bytes(), nil
}
