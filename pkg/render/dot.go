package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/ifcwalk/ifcwalk/pkg/hierarchy"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
)

// ToDOT converts a spatial tree to Graphviz DOT. Nodes are keyed by
// STEP id and labeled "Name\nClass"; spatial structure nodes are filled
// to stand out from elements. The resulting DOT string renders with
// [RenderSVG] or [RenderPNG].
func ToDOT(t *hierarchy.Tree) string {
	var buf bytes.Buffer
	buf.WriteString("digraph hierarchy {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	t.Walk(func(e ifc.Entity, _ int) {
		label := fmt.Sprintf("%s\n%s", ifc.DisplayName(e), e.Class())
		if fill := nodeFill(e); fill != "" {
			fmt.Fprintf(&buf, "  \"n%d\" [label=%q, fillcolor=%q];\n", e.ID(), label, fill)
		} else {
			fmt.Fprintf(&buf, "  \"n%d\" [label=%q];\n", e.ID(), label)
		}
	})

	buf.WriteString("\n")
	for _, root := range t.Roots {
		writeEdges(&buf, root)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeEdges(buf *bytes.Buffer, n *hierarchy.Node) {
	for _, child := range n.Children {
		fmt.Fprintf(buf, "  \"n%d\" -> \"n%d\";\n", n.Entity.ID(), child.Entity.ID())
		writeEdges(buf, child)
	}
}

// nodeFill picks the fill color class of an entity: projects darkest,
// spatial structure lighter, elements default white.
func nodeFill(e ifc.Entity) string {
	switch {
	case e.IsA("IfcProject"):
		return "lightgoldenrod1"
	case e.IsA("IfcSpatialStructureElement"):
		return "lightblue"
	default:
		return ""
	}
}

// RenderSVG renders a DOT graph to SVG through Graphviz, with the
// viewBox normalized to origin for embedding.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG, true)
}

// RenderPNG renders a DOT graph to PNG through Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG, false)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format, normalize bool) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if normalize {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the viewBox starts at
// the origin and the element carries explicit dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
