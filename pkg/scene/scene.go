// Package scene builds a renderer-agnostic 3D scene description from a
// model's spatial hierarchy. Nodes reference placement and representation
// instance ids instead of carrying geometry; a renderer resolves those
// against the STEP file.
package scene

import (
	"github.com/ifcwalk/ifcwalk/pkg/hierarchy"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
	"github.com/ifcwalk/ifcwalk/pkg/step"
)

// Style is an RGBA surface color with components in [0,1].
type Style struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Node describes one product in the scene. Parent is the GlobalId of the
// nearest product ancestor in the hierarchy, empty for top-level products.
type Node struct {
	GlobalID       string `json:"guid"`
	Name           string `json:"name,omitempty"`
	Class          string `json:"class"`
	Parent         string `json:"parent,omitempty"`
	Placement      int64  `json:"placement,omitempty"`
	Representation int64  `json:"representation,omitempty"`
	Style          Style  `json:"style"`
	Transparent    bool   `json:"transparent,omitempty"`
}

// Scene is the full scene description, nodes in hierarchy walk order.
type Scene struct {
	Source string `json:"source,omitempty"`
	Nodes  []Node `json:"nodes"`
}

// classStyles maps entity classes to surface colors, checked in order with
// subtype matching. Glazed classes carry alpha below one.
var classStyles = []struct {
	class string
	style Style
}{
	{"IfcWindow", Style{0.6, 0.8, 1.0, 0.3}},
	{"IfcCurtainWall", Style{0.5, 0.7, 0.9, 0.4}},
	{"IfcPlate", Style{0.5, 0.7, 0.9, 0.4}},
	{"IfcDoor", Style{0.8, 0.6, 0.4, 1}},
	{"IfcWall", Style{0.85, 0.85, 0.85, 1}},
	{"IfcSlab", Style{0.65, 0.65, 0.65, 1}},
	{"IfcRoof", Style{0.6, 0.35, 0.35, 1}},
	{"IfcStair", Style{0.7, 0.7, 0.7, 1}},
	{"IfcRailing", Style{0.55, 0.55, 0.6, 1}},
	{"IfcBeam", Style{0.7, 0.7, 0.75, 1}},
	{"IfcColumn", Style{0.7, 0.7, 0.75, 1}},
	{"IfcMember", Style{0.7, 0.7, 0.75, 1}},
	{"IfcCovering", Style{0.9, 0.9, 0.85, 1}},
	{"IfcFurnishingElement", Style{0.75, 0.6, 0.45, 1}},
}

// DefaultStyle is used for products without a class-specific color.
var DefaultStyle = Style{0.75, 0.75, 0.75, 1}

// StyleFor returns the surface style for an entity's class.
func StyleFor(e ifc.Entity) Style {
	for _, cs := range classStyles {
		if e.IsA(cs.class) {
			return cs.style
		}
	}
	return DefaultStyle
}

// Build walks the model's hierarchy and emits one node per product.
// IfcOpeningElement and IfcSpace products are left out, matching what a
// building viewer shows; their hierarchy children still appear, attached to
// the nearest kept ancestor.
func Build(m *ifc.Model) (*Scene, error) {
	tree, err := hierarchy.Build(m)
	if err != nil {
		return nil, err
	}

	s := &Scene{Source: m.Path(), Nodes: []Node{}}
	for _, root := range tree.Roots {
		s.addNode(root, "")
	}
	return s, nil
}

func (s *Scene) addNode(n *hierarchy.Node, parent string) {
	e := n.Entity
	keep := e.IsA("IfcProduct") && !e.IsA("IfcOpeningElement") && !e.IsA("IfcSpace")
	childParent := parent
	if keep {
		style := StyleFor(e)
		s.Nodes = append(s.Nodes, Node{
			GlobalID:       e.GlobalID(),
			Name:           e.Name(),
			Class:          e.Class(),
			Parent:         parent,
			Placement:      refArg(e, "ObjectPlacement"),
			Representation: refArg(e, "Representation"),
			Style:          style,
			Transparent:    style.A < 1,
		})
		childParent = e.GlobalID()
	}
	for _, child := range n.Children {
		s.addNode(child, childParent)
	}
}

func refArg(e ifc.Entity, attr string) int64 {
	v, ok := e.Attr(attr)
	if !ok || v.Kind != step.Ref {
		return 0
	}
	return v.RefID
}
