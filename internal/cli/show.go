package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
	"github.com/ifcwalk/ifcwalk/pkg/render"
)

// showCommand creates the show command for printing one entity in
// detail.
func (c *CLI) showCommand() *cobra.Command {
	opts := render.AllDetails()

	cmd := &cobra.Command{
		Use:   "show <file> <id|guid>",
		Short: "Print one entity with attributes, psets and quantities",
		Long: `Print one entity in detail: the attribute table, attached property
sets, quantities, and inverse relations (containment, voids, fills).

The entity is addressed by its numeric instance id (with or without
the leading #) or by its 22-character GlobalId.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ifc.Open(args[0])
			if err != nil {
				return err
			}
			e, err := resolveEntityArg(m, args[1])
			if err != nil {
				return err
			}
			return render.WriteEntity(os.Stdout, e, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Psets, "psets", opts.Psets, "show property sets")
	cmd.Flags().BoolVar(&opts.Quantities, "quantities", opts.Quantities, "show quantities")
	cmd.Flags().BoolVar(&opts.Inverse, "inverse", opts.Inverse, "show inverse relations")

	return cmd
}

// resolveEntityArg resolves a positional entity argument: a numeric
// instance id (optionally prefixed with #) or a GlobalId.
func resolveEntityArg(m *ifc.Model, raw string) (ifc.Entity, error) {
	arg := raw
	if len(arg) > 1 && arg[0] == '#' {
		arg = arg[1:]
	}
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		if e, ok := m.Get(id); ok {
			return e, nil
		}
		return ifc.Entity{}, errors.New(errors.ErrCodeEntityNotFound, "no entity #%d in %s", id, m.Path())
	}
	if e, ok := m.ByGlobalID(arg); ok {
		return e, nil
	}
	return ifc.Entity{}, errors.New(errors.ErrCodeEntityNotFound, "no entity %q in %s", raw, m.Path())
}
