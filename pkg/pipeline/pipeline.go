// Package pipeline provides the load → layout → render orchestration for
// Connectoviz.
//
// This package implements the complete flow from files on disk to rendered
// artifacts, shared by the CLI and by library consumers. Centralizing it
// keeps behavior consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read the matrix (and optional metadata) and build a validated
//     connectome
//  2. Layout: compute circular node positions and resolve node colors
//  3. Render: produce output in the requested formats
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    MatrixPath: "matrix.csv",
//	    Formats:    []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"strings"

	"github.com/connectoviz/connectoviz/pkg/errors"
	"github.com/connectoviz/connectoviz/pkg/palette"
)

// Defaults shared by CLI and library consumers.
const (
	// DefaultSize is the pixel size of the square output surface.
	DefaultSize = 800

	// DefaultFormat is the output produced when none is requested.
	DefaultFormat = FormatSVG
)

// Output format identifiers.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Load options
	MatrixPath   string `json:"matrix_path"`
	MetadataPath string `json:"metadata_path,omitempty"`
	GroupBy      string `json:"group_by,omitempty"` // metadata column used for coloring
	Atlas        string `json:"atlas,omitempty"`

	// Layout / color options
	Palette     string                   `json:"palette,omitempty"`
	GroupColors map[string]palette.Color `json:"-"` // explicit group→color mapping

	// Render options
	Formats []string `json:"formats,omitempty"`
	Size    int      `json:"size,omitempty"` // square surface size in pixels

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// It must be called before Execute; Execute calls it if the caller did not.
func (o *Options) ValidateAndSetDefaults() error {
	if o.MatrixPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "matrix path is required")
	}
	if o.GroupBy != "" && o.MetadataPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "--group-by requires a metadata file")
	}
	if o.Palette == "" {
		o.Palette = palette.Default
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	o.validated = true
	return nil
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be one of: svg, png, pdf, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming whitespace and
// dropping empty entries. An empty input yields nil.
func ParseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}
