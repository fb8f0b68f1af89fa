package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ifcwalk/ifcwalk/pkg/hierarchy"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
	"github.com/ifcwalk/ifcwalk/pkg/step"
)

// indentUnit is the per-level prefix of the console tree.
const indentUnit = ".  "

// WriteTree prints the hierarchy as indented text, one entity per line:
// the indent unit repeated depth times, then "Name [Class]". Entities
// without a usable name print "Unnamed".
func WriteTree(w io.Writer, t *hierarchy.Tree) error {
	var err error
	t.Walk(func(e ifc.Entity, depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s [%s]\n",
			strings.Repeat(indentUnit, depth), ifc.DisplayName(e), e.Class())
	})
	return err
}

// DetailOptions selects the sections of an entity detail listing.
type DetailOptions struct {
	Psets      bool
	Quantities bool
	Inverse    bool
}

// AllDetails selects every section.
func AllDetails() DetailOptions {
	return DetailOptions{Psets: true, Quantities: true, Inverse: true}
}

// WriteEntity prints one entity in detail: a headline, the attribute
// table, and optionally property sets, quantities and inverse
// relations.
func WriteEntity(w io.Writer, e ifc.Entity, opts DetailOptions) error {
	if guid := e.GlobalID(); guid != "" {
		fmt.Fprintf(w, "#%d = %s %q (%s)\n", e.ID(), e.Class(), ifc.DisplayName(e), guid)
	} else {
		fmt.Fprintf(w, "#%d = %s %q\n", e.ID(), e.Class(), ifc.DisplayName(e))
	}

	attrs := e.Attrs()
	width := 0
	for _, a := range attrs {
		if len(a.Def.Name) > width {
			width = len(a.Def.Name)
		}
	}
	fmt.Fprintf(w, "\nAttributes:\n")
	for _, a := range attrs {
		fmt.Fprintf(w, "  %-*s  %s\n", width, a.Def.Name, FormatValue(a.Value))
	}

	if opts.Psets {
		writePsets(w, e)
	}
	if opts.Quantities {
		writeQuantities(w, e)
	}
	if opts.Inverse {
		writeInverse(w, e)
	}
	return nil
}

func writePsets(w io.Writer, e ifc.Entity) {
	sets := e.PropertySets()
	if len(sets) == 0 {
		return
	}
	fmt.Fprintf(w, "\nProperty sets:\n")
	for _, ps := range sets {
		origin := ""
		if ps.FromType {
			origin = " (from type)"
		}
		fmt.Fprintf(w, "  %s%s\n", ps.Name, origin)
		for _, p := range ps.Props {
			fmt.Fprintf(w, "    %s = %s\n", p.Name, FormatValue(p.Value))
		}
	}
}

func writeQuantities(w io.Writer, e ifc.Entity) {
	sets := e.QuantitySets()
	if len(sets) == 0 {
		return
	}
	fmt.Fprintf(w, "\nQuantities:\n")
	for _, qs := range sets {
		fmt.Fprintf(w, "  %s\n", qs.Name)
		for _, q := range qs.Quantities {
			fmt.Fprintf(w, "    %s = %s [%s]\n", q.Name, formatFloat(q.Value), q.Kind)
		}
	}
}

func writeInverse(w io.Writer, e ifc.Entity) {
	var lines []string
	if parent, ok := e.Parent(); ok {
		lines = append(lines, relLine("Decomposes", parent))
	}
	for _, child := range e.DecomposedChildren() {
		lines = append(lines, relLine("Decomposed by", child))
	}
	if container, ok := e.Container(); ok {
		lines = append(lines, relLine("Contained in", container))
	}
	for _, child := range e.ContainedChildren() {
		lines = append(lines, relLine("Contains", child))
	}
	if typ, ok := e.TypeObject(); ok {
		lines = append(lines, relLine("Defined by type", typ))
	}
	for _, opening := range e.VoidedBy() {
		lines = append(lines, relLine("Voided by", opening))
	}
	if filled, ok := e.FillsOpening(); ok {
		lines = append(lines, relLine("Fills", filled))
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, "\nRelations:\n")
	for _, line := range lines {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

func relLine(kind string, e ifc.Entity) string {
	return fmt.Sprintf("%-16s #%d %s [%s]", kind, e.ID(), ifc.DisplayName(e), e.Class())
}

// FormatValue renders a STEP value for console display: omitted and
// derived become "-", references "#n", strings print verbatim, typed
// values unwrap, aggregates keep their STEP text.
func FormatValue(v step.Value) string {
	switch v.Kind {
	case step.Omitted, step.Derived:
		return "-"
	case step.String:
		return v.Str
	case step.Enum:
		return v.Str
	case step.Int:
		return fmt.Sprintf("%d", v.IntVal)
	case step.Real:
		return formatFloat(v.RealVal)
	case step.Ref:
		return fmt.Sprintf("#%d", v.RefID)
	case step.Typed:
		return FormatValue(v.Unwrap())
	default:
		return v.String()
	}
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
