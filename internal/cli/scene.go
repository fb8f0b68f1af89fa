package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ifcwalk/ifcwalk/pkg/ifc"
	"github.com/ifcwalk/ifcwalk/pkg/scene"
)

// sceneCommand creates the scene command for exporting a 3D scene
// description.
func (c *CLI) sceneCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "scene <file>",
		Short: "Export a renderer-agnostic 3D scene description",
		Long: `Export the model as a 3D scene description.

One node per product in the spatial hierarchy (openings and spaces
are skipped), carrying name, class, parent, placement and
representation ids, and a per-class display style. Geometry is not
triangulated; nodes reference the model's representation ids.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ifc.Open(args[0])
			if err != nil {
				return err
			}
			sc, err := scene.Build(m)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(sc, "", "  ")
			if err != nil {
				return err
			}

			if output == "" {
				return writeToStdout(data)
			}
			if err := writeFile(output, data); err != nil {
				return err
			}
			printSuccess("Wrote %d scene nodes", len(sc.Nodes))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (stdout if empty)")

	return cmd
}
