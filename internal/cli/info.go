package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/connectoviz/connectoviz/pkg/connectome"
	cio "github.com/connectoviz/connectoviz/pkg/io"
)

// newInfoCmd creates the info command for inspecting connectome inputs.
func newInfoCmd() *cobra.Command {
	var metadata, groupBy, atlas string

	cmd := &cobra.Command{
		Use:   "info <matrix-file|connectome.json>",
		Short: "Print a summary of a connectome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConnectome(args[0], metadata, groupBy, atlas)
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, styleTitle.Render("Connectome"))
			for _, line := range strings.Split(c.Summary(), "\n") {
				key, value, ok := strings.Cut(line, ": ")
				if !ok {
					continue
				}
				printKV(os.Stdout, key, value)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&metadata, "metadata", "m", "", "region metadata CSV")
	cmd.Flags().StringVarP(&groupBy, "group-by", "g", "", "metadata column treated as grouping")
	cmd.Flags().StringVar(&atlas, "atlas", "", "atlas name")

	return cmd
}

// loadConnectome builds a connectome from either a connectome JSON file or a
// matrix file plus optional metadata.
func loadConnectome(path, metadata, groupBy, atlas string) (*connectome.Connectome, error) {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		if c, err := cio.ImportJSON(path); err == nil {
			return c, nil
		}
		// Fall through: a .json file can also be a bare 2-D matrix array.
	}

	m, err := cio.ImportMatrix(path)
	if err != nil {
		return nil, err
	}

	rows, _ := m.Dims()
	regions := make([]string, rows)
	for i := range regions {
		regions[i] = fmt.Sprintf("R%d", i+1)
	}

	var opts []connectome.Option
	if atlas != "" {
		opts = append(opts, connectome.WithAtlas(atlas))
	}
	if metadata != "" {
		md, err := cio.ImportMetadata(metadata)
		if err != nil {
			return nil, err
		}
		regions = md.Regions
		if groupBy != "" {
			groups, err := md.Column(groupBy)
			if err != nil {
				return nil, err
			}
			opts = append(opts, connectome.WithGroups(groups))
		}
	}

	return connectome.New(m, regions, opts...)
}
