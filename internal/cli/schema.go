package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
)

// schemaCommand creates the schema command for browsing the built-in
// entity definitions.
func (c *CLI) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [entity]",
		Short: "Browse the built-in IFC schema tables",
		Long: `Browse the built-in IFC entity definitions.

Without an argument, all known entities are listed. With an entity
name, the full attribute table is shown, including attributes
inherited through the supertype chain, the entity each attribute is
declared on, enum value domains, and direct subtypes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := ifc.DefaultSchema()
			if len(args) == 0 {
				listEntities(s)
				return nil
			}
			return describeEntity(s, args[0])
		},
	}
}

// listEntities prints all known entity names, marking abstract ones.
func listEntities(s *ifc.Schema) {
	for _, name := range s.Entities() {
		def := s.Lookup(name)
		if def.Abstract {
			fmt.Println(StyleDim.Render(name + " (abstract)"))
		} else {
			fmt.Println(name)
		}
	}
}

// describeEntity prints the full definition of one entity.
func describeEntity(s *ifc.Schema, name string) error {
	def := s.Lookup(name)
	if def == nil {
		return errors.New(errors.ErrCodeNotFound, "unknown entity %q (try 'schema' without arguments for the full list)", name)
	}

	title := def.Name
	if def.Abstract {
		title += " (abstract)"
	}
	fmt.Println(StyleTitle.Render(title))
	if chain := supertypeChain(s, def); len(chain) > 0 {
		printDetail("supertypes: %s", strings.Join(chain, " < "))
	}
	fmt.Println()

	rows := declaredAttrs(s, def.Name)
	for _, row := range rows {
		optional := ""
		if row.Def.Optional {
			optional = "optional"
		}
		fmt.Printf("  %2d  %-22s %-10s %-9s %s\n",
			row.Index, row.Def.Name, row.Def.Type.String(), optional,
			StyleDim.Render(row.DeclaredBy))
		if len(row.Def.Enum) > 0 {
			fmt.Printf("      %s\n", StyleDim.Render("values: "+strings.Join(row.Def.Enum, ", ")))
		}
	}

	if subs := s.Subtypes(def.Name); len(subs) > 0 {
		fmt.Println()
		printDetail("subtypes: %s", strings.Join(subs, ", "))
	}
	return nil
}

// attrRow pairs an attribute definition with its argument position and
// the entity that declares it.
type attrRow struct {
	Index      int
	Def        ifc.AttrDef
	DeclaredBy string
}

// declaredAttrs lists all attributes of name in argument order,
// annotated with the declaring entity. Inherited attributes come
// first, matching STEP instance positions.
func declaredAttrs(s *ifc.Schema, name string) []attrRow {
	var chain []*ifc.EntityDef
	for d := s.Lookup(name); d != nil; d = s.Lookup(d.Supertype) {
		chain = append(chain, d)
		if d.Supertype == "" {
			break
		}
	}

	var rows []attrRow
	idx := 0
	for i := len(chain) - 1; i >= 0; i-- {
		for _, def := range chain[i].Attrs {
			rows = append(rows, attrRow{Index: idx, Def: def, DeclaredBy: chain[i].Name})
			idx++
		}
	}
	return rows
}

// supertypeChain lists the ancestors of def from direct supertype to
// root.
func supertypeChain(s *ifc.Schema, def *ifc.EntityDef) []string {
	var out []string
	for d := s.Lookup(def.Supertype); d != nil; d = s.Lookup(d.Supertype) {
		out = append(out, d.Name)
		if d.Supertype == "" {
			break
		}
	}
	return out
}
