package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/connectoviz/connectoviz/pkg/connectome"
	"github.com/connectoviz/connectoviz/pkg/errors"
)

// ReadMatrix decodes a dense numeric matrix from r using the given field
// delimiter (',' for CSV, '\t' for TSV).
//
// Every row must have the same number of fields and every field must parse
// as a float. Empty input, ragged rows, and non-numeric cells all return an
// INVALID_INPUT error. The matrix is not required to be square here; shape
// validation happens in [connectome.New] so the error can name the labels.
func ReadMatrix(r io.Reader, comma rune) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read matrix")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "matrix input is empty")
	}

	rows := len(records)
	cols := len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		if len(rec) != cols {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"ragged matrix: row %d has %d fields, want %d", i+1, len(rec), cols)
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"matrix cell [%d,%d]: %q is not a number", i, j, field)
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// ReadMatrixJSON decodes a matrix from a JSON 2-D number array.
func ReadMatrixJSON(r io.Reader) (*mat.Dense, error) {
	var rows [][]float64
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode matrix JSON")
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "matrix input is empty")
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"ragged matrix: row %d has %d fields, want %d", i+1, len(row), cols)
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), cols, data), nil
}

// ImportMatrix reads a matrix file, picking the decoder from the extension:
// .csv, .tsv, or .json. Unknown extensions return an UNSUPPORTED error.
func ImportMatrix(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "matrix file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadMatrix(f, ',')
	case ".tsv":
		return ReadMatrix(f, '\t')
	case ".json":
		return ReadMatrixJSON(f)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"unsupported matrix format %q (want .csv, .tsv, or .json)", filepath.Ext(path))
	}
}

// Metadata is a parsed region metadata table. The first CSV column holds
// region names; the remaining columns are keyed by header and can be used
// as grouping labels.
type Metadata struct {
	Regions []string
	columns map[string][]string
}

// ReadMetadata decodes a region metadata table from CSV with a header row.
//
// Layout:
//
//	region,lobe,hemisphere
//	V1,occipital,left
//	M1,frontal,left
func ReadMetadata(r io.Reader) (*Metadata, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read metadata")
	}
	if len(records) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "metadata needs a header row and at least one region")
	}

	header := records[0]
	md := &Metadata{columns: make(map[string][]string, len(header)-1)}
	for _, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"ragged metadata: row has %d fields, want %d", len(rec), len(header))
		}
		md.Regions = append(md.Regions, rec[0])
		for i := 1; i < len(header); i++ {
			md.columns[header[i]] = append(md.columns[header[i]], rec[i])
		}
	}

	if err := validateRegions(md.Regions); err != nil {
		return nil, err
	}
	return md, nil
}

// ImportMetadata reads a metadata CSV file at path.
func ImportMetadata(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "metadata file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadMetadata(f)
}

// Columns returns the sorted names of the available grouping columns.
func (m *Metadata) Columns() []string {
	out := make([]string, 0, len(m.columns))
	for name := range m.columns {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Column returns the values of a grouping column, index-aligned with Regions.
func (m *Metadata) Column(name string) ([]string, error) {
	col, ok := m.columns[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"metadata has no column %q (have: %s)", name, strings.Join(m.Columns(), ", "))
	}
	return col, nil
}

// ReadJSON decodes a connectome from its JSON graph form (see [WriteJSON]).
func ReadJSON(r io.Reader) (*connectome.Connectome, error) {
	var g connectome.Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode connectome JSON")
	}
	return connectome.FromGraph(g)
}

// ImportJSON reads a connectome JSON file at path.
func ImportJSON(path string) (*connectome.Connectome, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

func validateRegions(regions []string) error {
	for i, name := range regions {
		if err := errors.ValidateRegionName(name); err != nil {
			return fmt.Errorf("region %d: %w", i, err)
		}
	}
	return nil
}
