// Package hierarchy builds the spatial tree of an IFC model by walking
// exactly two relationship kinds: decomposition (IfcRelAggregates) and
// spatial containment (IfcRelContainedInSpatialStructure).
package hierarchy

import "github.com/ifcwalk/ifcwalk/pkg/ifc"

// Visitor receives each entity of a walk together with its distance in
// relation hops from the walk's starting entity.
type Visitor func(e ifc.Entity, depth int)

// Walk emits e at the given depth, then recurses over its decomposition
// children followed by its containment children at depth+1. Child order
// follows declared file order of the relation records and of the entries
// inside each record; nothing is sorted. The walk carries no cycle
// detection and no depth limit, conformant IFC input is acyclic.
func Walk(e ifc.Entity, depth int, visit Visitor) {
	visit(e, depth)
	for _, child := range e.DecomposedChildren() {
		Walk(child, depth+1, visit)
	}
	for _, child := range e.ContainedChildren() {
		Walk(child, depth+1, visit)
	}
}
