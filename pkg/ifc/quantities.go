package ifc

import (
	"strings"

	"github.com/ifcwalk/ifcwalk/pkg/step"
)

// Quantity is one physical quantity of an element quantity set.
type Quantity struct {
	Name  string
	Kind  string // Length, Area, Volume, Count, Weight or Time
	Value float64
}

// QuantitySet is an IfcElementQuantity attached to an entity.
type QuantitySet struct {
	ID         int64
	Name       string
	Method     string
	Quantities []Quantity
}

// quantityKinds maps STEP keywords to quantity kind labels. All simple
// quantities carry their value at argument position 3.
var quantityKinds = map[string]string{
	"IFCQUANTITYLENGTH": "Length",
	"IFCQUANTITYAREA":   "Area",
	"IFCQUANTITYVOLUME": "Volume",
	"IFCQUANTITYCOUNT":  "Count",
	"IFCQUANTITYWEIGHT": "Weight",
	"IFCQUANTITYTIME":   "Time",
}

// QuantitySets collects the element quantities bound to the entity
// through IfcRelDefinesByProperties, in declared order.
func (e Entity) QuantitySets() []QuantitySet {
	idx := e.inverse()
	if idx == nil {
		return nil
	}
	var out []QuantitySet
	for _, relID := range idx.definedBy {
		rel := e.model.file.Get(relID)
		if rel == nil || rel.Type != "IFCRELDEFINESBYPROPERTIES" {
			continue
		}
		v := rel.Arg(5)
		if v.Kind != step.Ref {
			continue
		}
		inst := e.model.file.Get(v.RefID)
		if inst == nil || inst.Type != "IFCELEMENTQUANTITY" {
			continue
		}
		qs := QuantitySet{ID: inst.ID}
		qs.Name, _ = inst.Arg(2).AsString()
		qs.Method, _ = inst.Arg(4).AsString()
		for _, item := range inst.Arg(5).Items {
			if item.Kind != step.Ref {
				continue
			}
			q := e.model.file.Get(item.RefID)
			if q == nil {
				continue
			}
			kind, ok := quantityKinds[q.Type]
			if !ok {
				continue
			}
			name, _ := q.Arg(0).AsString()
			val, _ := q.Arg(3).AsFloat()
			qs.Quantities = append(qs.Quantities, Quantity{Name: name, Kind: kind, Value: val})
		}
		out = append(out, qs)
	}
	return out
}

// QuantityValue looks up a quantity across all quantity sets of the
// entity by case-insensitive name.
func (e Entity) QuantityValue(name string) (float64, bool) {
	for _, qs := range e.QuantitySets() {
		for _, q := range qs.Quantities {
			if strings.EqualFold(q.Name, name) {
				return q.Value, true
			}
		}
	}
	return 0, false
}
