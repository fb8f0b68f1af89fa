package ifc

import (
	"fmt"

	"github.com/ifcwalk/ifcwalk/pkg/step"
)

// Entity is a lightweight handle on one instance of a model. The zero
// Entity is invalid; accessors on it return zero values.
type Entity struct {
	model *Model
	inst  *step.Instance
}

// Valid reports whether the entity points at an instance.
func (e Entity) Valid() bool { return e.inst != nil }

// Model returns the owning model.
func (e Entity) Model() *Model { return e.model }

// ID returns the STEP instance id.
func (e Entity) ID() int64 {
	if e.inst == nil {
		return 0
	}
	return e.inst.ID
}

// Class returns the entity type in canonical spelling when the schema
// knows it (IfcWallStandardCase), the raw uppercase keyword otherwise.
func (e Entity) Class() string {
	if e.inst == nil {
		return ""
	}
	return e.model.schema.Canonical(e.inst.Type)
}

// RawType returns the uppercase keyword as declared in the file.
func (e Entity) RawType() string {
	if e.inst == nil {
		return ""
	}
	return e.inst.Type
}

// IsA reports whether the entity's class equals name or descends from
// it. Matching is case-insensitive.
func (e Entity) IsA(name string) bool {
	if e.inst == nil {
		return false
	}
	return e.model.schema.IsSubtypeOf(e.inst.Type, name)
}

// GlobalID returns the 22 character GlobalId, or "" for entities that
// carry none.
func (e Entity) GlobalID() string {
	s, _ := e.attrString("GlobalId")
	return s
}

// Name returns the Name attribute, or "" when absent.
func (e Entity) Name() string {
	s, _ := e.attrString("Name")
	return s
}

// Description returns the Description attribute, or "" when absent.
func (e Entity) Description() string {
	s, _ := e.attrString("Description")
	return s
}

// ObjectType returns the ObjectType attribute, or "" when absent.
func (e Entity) ObjectType() string {
	s, _ := e.attrString("ObjectType")
	return s
}

func (e Entity) attrString(name string) (string, bool) {
	v, ok := e.Attr(name)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Attr resolves an attribute by case-insensitive name using the schema
// tables. The second result is false when the entity's class is not in
// the tables or declares no such attribute.
func (e Entity) Attr(name string) (step.Value, bool) {
	if e.inst == nil {
		return step.Value{}, false
	}
	i, _, ok := e.model.schema.AttrIndex(e.inst.Type, name)
	if !ok {
		return step.Value{}, false
	}
	return e.inst.Arg(i), true
}

// NamedAttr pairs an attribute definition with its value on one entity.
type NamedAttr struct {
	Def   AttrDef
	Value step.Value
}

// Attrs returns all attributes of the entity in argument order. For
// classes outside the schema tables the definitions carry positional
// names (Arg0, Arg1, ...).
func (e Entity) Attrs() []NamedAttr {
	if e.inst == nil {
		return nil
	}
	defs := e.model.schema.AllAttrs(e.inst.Type)
	if defs == nil {
		out := make([]NamedAttr, len(e.inst.Args))
		for i, arg := range e.inst.Args {
			out[i] = NamedAttr{
				Def:   AttrDef{Name: fmt.Sprintf("Arg%d", i), Type: AttrSelect, Optional: true},
				Value: arg,
			}
		}
		return out
	}
	out := make([]NamedAttr, len(defs))
	for i, def := range defs {
		out[i] = NamedAttr{Def: def, Value: e.inst.Arg(i)}
	}
	return out
}

// Instance exposes the raw STEP record.
func (e Entity) Instance() *step.Instance { return e.inst }

// relTargets expands the instances referenced by one argument of each
// relation record in rels, preserving record order and argument order.
func (e Entity) relTargets(rels []int64, arg int) []Entity {
	var out []Entity
	for _, relID := range rels {
		rel := e.model.file.Get(relID)
		if rel == nil {
			continue
		}
		v := rel.Arg(arg)
		switch v.Kind {
		case step.Ref:
			if ent, ok := e.model.Get(v.RefID); ok {
				out = append(out, ent)
			}
		case step.List:
			for _, item := range v.Items {
				if item.Kind != step.Ref {
					continue
				}
				if ent, ok := e.model.Get(item.RefID); ok {
					out = append(out, ent)
				}
			}
		}
	}
	return out
}

func (e Entity) inverse() *inverseIndex {
	if e.inst == nil {
		return nil
	}
	return e.model.inverse[e.inst.ID]
}

// DecomposedChildren returns the entities aggregated under this one
// through IfcRelAggregates, in declared order.
func (e Entity) DecomposedChildren() []Entity {
	idx := e.inverse()
	if idx == nil {
		return nil
	}
	return e.relTargets(idx.decomposedBy, 5)
}

// ContainedChildren returns the elements placed in this spatial
// structure through IfcRelContainedInSpatialStructure, in declared
// order.
func (e Entity) ContainedChildren() []Entity {
	idx := e.inverse()
	if idx == nil {
		return nil
	}
	return e.relTargets(idx.contains, 4)
}

// Parent returns the entity this one is aggregated under, if any.
func (e Entity) Parent() (Entity, bool) {
	idx := e.inverse()
	if idx == nil {
		return Entity{}, false
	}
	if ents := e.relTargets(idx.decomposes, 4); len(ents) > 0 {
		return ents[0], true
	}
	return Entity{}, false
}

// Container returns the spatial structure this element is contained
// in, if any.
func (e Entity) Container() (Entity, bool) {
	idx := e.inverse()
	if idx == nil {
		return Entity{}, false
	}
	if ents := e.relTargets(idx.containedIn, 5); len(ents) > 0 {
		return ents[0], true
	}
	return Entity{}, false
}

// TypeObject returns the IfcTypeObject bound to this entity through
// IfcRelDefinesByType, if any.
func (e Entity) TypeObject() (Entity, bool) {
	idx := e.inverse()
	if idx == nil {
		return Entity{}, false
	}
	for _, relID := range idx.definedBy {
		rel := e.model.file.Get(relID)
		if rel == nil || rel.Type != "IFCRELDEFINESBYTYPE" {
			continue
		}
		if v := rel.Arg(5); v.Kind == step.Ref {
			if ent, ok := e.model.Get(v.RefID); ok {
				return ent, true
			}
		}
	}
	return Entity{}, false
}

// VoidedBy returns the opening elements cut into this element, in
// declared order.
func (e Entity) VoidedBy() []Entity {
	idx := e.inverse()
	if idx == nil {
		return nil
	}
	return e.relTargets(idx.voidedBy, 5)
}

// FillsOpening returns the opening this element (a door or window)
// fills, if any.
func (e Entity) FillsOpening() (Entity, bool) {
	idx := e.inverse()
	if idx == nil {
		return Entity{}, false
	}
	if ents := e.relTargets(idx.fills, 4); len(ents) > 0 {
		return ents[0], true
	}
	return Entity{}, false
}
