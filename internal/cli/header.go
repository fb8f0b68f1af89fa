package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ifcwalk/ifcwalk/pkg/ifc"
)

// headerCommand creates the header command for printing the STEP file
// header.
func (c *CLI) headerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>",
		Short: "Print the STEP header of a model",
		Long:  `Print the FILE_DESCRIPTION, FILE_NAME and FILE_SCHEMA sections of the model's STEP header.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ifc.Open(args[0])
			if err != nil {
				return err
			}
			h := m.Header()

			printKeyValue("Schema", h.Schema())
			printKeyValue("Description", joinNonEmpty(h.Description))
			printKeyValue("Implementation", h.ImplementationLevel)
			printKeyValue("Name", h.Name)
			printKeyValue("Timestamp", h.Timestamp)
			printKeyValue("Authors", joinNonEmpty(h.Authors))
			printKeyValue("Organizations", joinNonEmpty(h.Organizations))
			printKeyValue("Preprocessor", h.Preprocessor)
			printKeyValue("Originating system", h.OriginatingSystem)
			printKeyValue("Authorization", h.Authorization)
			printDetail("%d entities", m.Len())
			return nil
		},
	}
}

// joinNonEmpty joins list entries with ", ", leaving out blanks.
func joinNonEmpty(items []string) string {
	var kept []string
	for _, s := range items {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ", ")
}
