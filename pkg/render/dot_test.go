package render

import (
	"strings"
	"testing"

	"github.com/ifcwalk/ifcwalk/pkg/hierarchy"
)

func TestToDOT(t *testing.T) {
	m := loadHouse(t)
	tree, _ := hierarchy.Build(m)

	dot := ToDOT(tree)

	wantFragments := []string{
		"digraph hierarchy {",
		"rankdir=TB",
		`"n1" [label="Demo Project\nIfcProject", fillcolor="lightgoldenrod1"];`,
		`"n2" [label="Site\nIfcSite", fillcolor="lightblue"];`,
		`"n4" [label="Ground Floor\nIfcBuildingStorey", fillcolor="lightblue"];`,
		`"n5" [label="South Wall\nIfcWallStandardCase"];`,
		`"n1" -> "n2";`,
		`"n4" -> "n5";`,
		`"n4" -> "n6";`,
	}
	for _, frag := range wantFragments {
		if !strings.Contains(dot, frag) {
			t.Errorf("DOT missing %q:\n%s", frag, dot)
		}
	}

	if edges := strings.Count(dot, "->"); edges != tree.Count()-1 {
		t.Errorf("edge count = %d, want %d", edges, tree.Count()-1)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(&hierarchy.Tree{})
	if !strings.Contains(dot, "digraph hierarchy {") {
		t.Errorf("empty tree must still emit a graph shell:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Errorf("empty tree must have no edges:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>
<svg width="8pt" height="6pt" viewBox="0.00 0.00 150.50 200.25" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)

	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 150.50 200.25" width="150" height="200">`
	if !strings.Contains(out, want) {
		t.Errorf("normalized tag missing:\n%s", out)
	}
	if strings.Contains(out, `width="8pt"`) {
		t.Errorf("original svg tag survived:\n%s", out)
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	in := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Errorf("svg without viewBox must pass through unchanged, got:\n%s", got)
	}
}
