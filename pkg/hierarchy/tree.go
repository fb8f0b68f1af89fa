package hierarchy

import "github.com/ifcwalk/ifcwalk/pkg/ifc"

// Node is one materialized entity of the spatial tree.
type Node struct {
	Entity   ifc.Entity
	Depth    int
	Children []*Node
}

// Tree is the materialized spatial hierarchy of a model: one root per
// IfcProject, in declared file order.
type Tree struct {
	Roots []*Node
}

// Build materializes the walk from every IfcProject of the model. A
// model without projects yields an empty tree, not an error.
func Build(m *ifc.Model) (*Tree, error) {
	t := &Tree{}
	for _, project := range m.Projects() {
		t.Roots = append(t.Roots, buildNode(project, 0))
	}
	return t, nil
}

func buildNode(e ifc.Entity, depth int) *Node {
	n := &Node{Entity: e, Depth: depth}
	for _, child := range e.DecomposedChildren() {
		n.Children = append(n.Children, buildNode(child, depth+1))
	}
	for _, child := range e.ContainedChildren() {
		n.Children = append(n.Children, buildNode(child, depth+1))
	}
	return n
}

// Walk visits every node of the tree in the same preorder the builder
// used.
func (t *Tree) Walk(visit Visitor) {
	for _, root := range t.Roots {
		root.walk(visit)
	}
}

func (n *Node) walk(visit Visitor) {
	visit(n.Entity, n.Depth)
	for _, child := range n.Children {
		child.walk(visit)
	}
}

// Count returns the number of nodes in the tree.
func (t *Tree) Count() int {
	total := 0
	t.Walk(func(ifc.Entity, int) { total++ })
	return total
}

// MaxDepth returns the deepest level of the tree, or -1 for an empty
// tree.
func (t *Tree) MaxDepth() int {
	max := -1
	t.Walk(func(_ ifc.Entity, depth int) {
		if depth > max {
			max = depth
		}
	})
	return max
}

// Find returns the first node whose entity has the given STEP id.
func (t *Tree) Find(id int64) *Node {
	for _, root := range t.Roots {
		if found := root.find(id); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) find(id int64) *Node {
	if n.Entity.ID() == id {
		return n
	}
	for _, child := range n.Children {
		if found := child.find(id); found != nil {
			return found
		}
	}
	return nil
}
