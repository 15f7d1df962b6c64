package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/connectoviz/connectoviz/pkg/errors"
	cio "github.com/connectoviz/connectoviz/pkg/io"
)

// newConvertCmd creates the convert command for translating between matrix
// CSV and connectome JSON.
func newConvertCmd() *cobra.Command {
	var output, metadata, groupBy string

	cmd := &cobra.Command{
		Use:   "convert <input-file>",
		Short: "Convert between matrix CSV and connectome JSON",
		Long: `Convert between matrix CSV and connectome JSON.

A matrix file (.csv, .tsv, .json array) becomes a {nodes, edges} connectome
JSON document; a connectome JSON document becomes a dense matrix CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], output, metadata, groupBy)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&metadata, "metadata", "m", "", "region metadata CSV (matrix input only)")
	cmd.Flags().StringVarP(&groupBy, "group-by", "g", "", "metadata column treated as grouping")

	return cmd
}

func runConvert(input, output, metadata, groupBy string) error {
	toJSON := !isConnectomeJSON(input)

	c, err := loadConnectome(input, metadata, groupBy, "")
	if err != nil {
		return err
	}

	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		if toJSON {
			output = base + ".json"
		} else {
			output = base + ".csv"
		}
	}
	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}
	if sameFile(input, output) {
		return errors.New(errors.ErrCodeInvalidInput, "refusing to overwrite input file %s", input)
	}

	if toJSON {
		err = cio.ExportJSON(c, output)
	} else {
		err = cio.ExportMatrixCSV(c, output)
	}
	if err != nil {
		return err
	}

	printSuccess(os.Stdout, "wrote %s", output)
	return nil
}

// isConnectomeJSON reports whether path parses as a connectome JSON
// document (as opposed to a bare matrix in any format).
func isConnectomeJSON(path string) bool {
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		return false
	}
	_, err := cio.ImportJSON(path)
	return err == nil
}

func sameFile(a, b string) bool {
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	if err1 != nil || err2 != nil {
		return a == b
	}
	return aa == bb
}
