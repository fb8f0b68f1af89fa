package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ifcwalk/ifcwalk/pkg/ifc"
	"github.com/ifcwalk/ifcwalk/pkg/render"
)

// editCommand creates the edit command for setting a scalar attribute.
func (c *CLI) editCommand() *cobra.Command {
	var (
		output string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "edit <file> <id|guid> <attr> <value>",
		Short: "Set a scalar attribute and save the model",
		Long: `Set a scalar attribute of one entity and write the model back.

The raw value is parsed against the schema type of the attribute:
strings are kept verbatim, numbers are parsed, booleans accept
yes/y/true/t/.t./1, and enumerations are validated against the schema
domain. References and lists cannot be edited.

The model is rewritten in place unless --out diverts it; --dry-run
validates and previews the change without writing anything.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(args[0], args[1], args[2], args[3], output, dryRun)
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "write the result to this file instead of in place")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and preview without writing")

	return cmd
}

func runEdit(path, entityArg, attr, value, output string, dryRun bool) error {
	m, err := ifc.Open(path)
	if err != nil {
		return err
	}
	e, err := resolveEntityArg(m, entityArg)
	if err != nil {
		return err
	}

	before := ""
	if old, ok := e.Attr(attr); ok {
		before = render.FormatValue(old)
	}

	if err := e.SetAttr(attr, value); err != nil {
		return err
	}

	after := ""
	if now, ok := e.Attr(attr); ok {
		after = render.FormatValue(now)
	}

	fmt.Printf("#%d %s %s\n", e.ID(), e.Class(), StyleDim.Render("("+ifc.DisplayName(e)+")"))
	printDetail("%s: %s %s %s", attr, before, iconArrow, after)

	if dryRun {
		printInfo("Dry run, nothing written")
		return nil
	}

	dest := path
	if output != "" {
		dest = output
		err = m.SaveAs(output)
	} else {
		err = m.Save()
	}
	if err != nil {
		return err
	}
	printSuccess("Saved %s", dest)
	return nil
}
