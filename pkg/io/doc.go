// Package io provides file import and export for connectivity data.
//
// Matrices are read from dense numeric CSV, TSV, or JSON files; region
// metadata (labels and grouping columns) from CSV. Connectomes are exported
// as a {nodes, edges} JSON document that can be re-imported losslessly with
// [ReadJSON].
//
// The package never guesses: malformed input fails fast with a structured
// error rather than being repaired.
package io
