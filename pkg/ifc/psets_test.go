package ifc

import "testing"

func TestPropertySets(t *testing.T) {
	m := loadTestModel(t)
	wall, _ := m.Get(5)

	sets := wall.PropertySets()
	if len(sets) != 2 {
		t.Fatalf("wall has %d property sets, want direct + type", len(sets))
	}

	direct := sets[0]
	if direct.Name != "Pset_WallCommon" || direct.FromType {
		t.Errorf("first set = %q fromType=%v, want direct Pset_WallCommon", direct.Name, direct.FromType)
	}
	if len(direct.Props) != 2 {
		t.Fatalf("Pset_WallCommon has %d properties, want 2", len(direct.Props))
	}
	if direct.Props[0].Name != "IsExternal" {
		t.Errorf("first property = %q", direct.Props[0].Name)
	}
	if b, ok := direct.Props[0].Value.AsBool(); !ok || !b {
		t.Error("IsExternal should unwrap to true")
	}
	if direct.Props[1].Text() != "F30" {
		t.Errorf("FireRating text = %q", direct.Props[1].Text())
	}

	typeSet := sets[1]
	if typeSet.Name != "Pset_WallTypeCommon" || !typeSet.FromType {
		t.Errorf("second set = %q fromType=%v, want type set", typeSet.Name, typeSet.FromType)
	}
	if len(typeSet.Props) != 1 || typeSet.Props[0].Name != "LoadBearing" {
		t.Errorf("type set properties = %+v", typeSet.Props)
	}
}

func TestPropertySetsAbsent(t *testing.T) {
	m := loadTestModel(t)
	door, _ := m.Get(6)
	if sets := door.PropertySets(); len(sets) != 0 {
		t.Errorf("door should have no property sets, got %d", len(sets))
	}
}

func TestPropertyValue(t *testing.T) {
	m := loadTestModel(t)
	wall, _ := m.Get(5)

	v, ok := wall.PropertyValue("FireRating")
	if !ok {
		t.Fatal("FireRating not found")
	}
	if s, _ := v.AsString(); s != "F30" {
		t.Errorf("FireRating = %q", s)
	}

	// Lookup is case-insensitive and reaches type sets.
	if _, ok := wall.PropertyValue("loadbearing"); !ok {
		t.Error("LoadBearing should be found through the type object")
	}

	if _, ok := wall.PropertyValue("NoSuchProperty"); ok {
		t.Error("unknown property should not resolve")
	}
}
