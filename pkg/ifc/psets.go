package ifc

import (
	"strings"

	"github.com/ifcwalk/ifcwalk/pkg/step"
)

// Property is one entry of a property set. Value holds the unwrapped
// nominal value for single value properties; other property flavors
// keep their raw argument so they still display as STEP text.
type Property struct {
	Name  string
	Value step.Value
}

// Text renders the property value for display.
func (p Property) Text() string {
	if s, ok := p.Value.AsString(); ok {
		return s
	}
	return p.Value.String()
}

// PropertySet is a named group of properties attached to an entity,
// either directly or through its type object.
type PropertySet struct {
	ID       int64
	Name     string
	FromType bool
	Props    []Property
}

// PropertySets collects the property sets attached to the entity:
// direct IfcRelDefinesByProperties bindings first, then sets inherited
// from the type object, each group in declared order.
func (e Entity) PropertySets() []PropertySet {
	var out []PropertySet
	idx := e.inverse()
	if idx != nil {
		for _, relID := range idx.definedBy {
			rel := e.model.file.Get(relID)
			if rel == nil || rel.Type != "IFCRELDEFINESBYPROPERTIES" {
				continue
			}
			v := rel.Arg(5)
			if v.Kind != step.Ref {
				continue
			}
			if ps, ok := e.model.propertySet(v.RefID, false); ok {
				out = append(out, ps)
			}
		}
	}
	if typ, ok := e.TypeObject(); ok {
		if sets, ok := typ.Attr("HasPropertySets"); ok && sets.Kind == step.List {
			for _, item := range sets.Items {
				if item.Kind != step.Ref {
					continue
				}
				if ps, ok := e.model.propertySet(item.RefID, true); ok {
					out = append(out, ps)
				}
			}
		}
	}
	return out
}

// PropertyValue looks up a single property across all property sets of
// the entity by case-insensitive name. Direct sets win over type sets.
func (e Entity) PropertyValue(name string) (step.Value, bool) {
	for _, ps := range e.PropertySets() {
		for _, p := range ps.Props {
			if strings.EqualFold(p.Name, name) {
				return p.Value, true
			}
		}
	}
	return step.Value{}, false
}

// propertySet materializes an IfcPropertySet instance. Instances of
// other property set definition types report not-ok.
func (m *Model) propertySet(id int64, fromType bool) (PropertySet, bool) {
	inst := m.file.Get(id)
	if inst == nil || inst.Type != "IFCPROPERTYSET" {
		return PropertySet{}, false
	}
	ps := PropertySet{
		ID:       inst.ID,
		FromType: fromType,
	}
	if name, ok := inst.Arg(2).AsString(); ok {
		ps.Name = name
	}
	for _, item := range inst.Arg(4).Items {
		if item.Kind != step.Ref {
			continue
		}
		prop := m.file.Get(item.RefID)
		if prop == nil {
			continue
		}
		name, _ := prop.Arg(0).AsString()
		p := Property{Name: name}
		if prop.Type == "IFCPROPERTYSINGLEVALUE" {
			p.Value = prop.Arg(2).Unwrap()
		} else if len(prop.Args) > 2 {
			p.Value = prop.Arg(2)
		}
		ps.Props = append(ps.Props, p)
	}
	return ps, true
}
