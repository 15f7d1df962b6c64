package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/connectoviz/connectoviz/pkg/connectome"
)

// WriteJSON encodes a connectome as an indented {nodes, edges} JSON document.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(c *connectome.Connectome, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(connectome.ToGraph(c)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a connectome to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(c *connectome.Connectome, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(c, f)
}

// WriteMatrixCSV writes the dense adjacency matrix as numeric CSV,
// the inverse of [ReadMatrix].
func WriteMatrixCSV(c *connectome.Connectome, w io.Writer) error {
	cw := csv.NewWriter(w)
	n := c.N()
	row := make([]string, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			row[j] = strconv.FormatFloat(c.Weight(i, j), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportMatrixCSV writes the adjacency matrix to a CSV file at path.
func ExportMatrixCSV(c *connectome.Connectome, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteMatrixCSV(c, f)
}
