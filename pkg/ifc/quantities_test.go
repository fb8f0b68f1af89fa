package ifc

import "testing"

func TestQuantitySets(t *testing.T) {
	m := loadTestModel(t)
	wall, _ := m.Get(5)

	sets := wall.QuantitySets()
	if len(sets) != 1 {
		t.Fatalf("wall has %d quantity sets, want 1", len(sets))
	}

	qs := sets[0]
	if qs.Name != "Qto_WallBaseQuantities" {
		t.Errorf("quantity set name = %q", qs.Name)
	}
	if len(qs.Quantities) != 2 {
		t.Fatalf("quantity set has %d entries, want 2", len(qs.Quantities))
	}
	if qs.Quantities[0].Name != "Width" || qs.Quantities[0].Kind != "Length" || qs.Quantities[0].Value != 0.3 {
		t.Errorf("first quantity = %+v", qs.Quantities[0])
	}
	if qs.Quantities[1].Kind != "Area" || qs.Quantities[1].Value != 12.5 {
		t.Errorf("second quantity = %+v", qs.Quantities[1])
	}
}

func TestQuantityValue(t *testing.T) {
	m := loadTestModel(t)
	wall, _ := m.Get(5)

	v, ok := wall.QuantityValue("netsidearea")
	if !ok || v != 12.5 {
		t.Errorf("NetSideArea = %v, ok=%v", v, ok)
	}
	if _, ok := wall.QuantityValue("GrossVolume"); ok {
		t.Error("absent quantity should not resolve")
	}

	door, _ := m.Get(6)
	if sets := door.QuantitySets(); len(sets) != 0 {
		t.Errorf("door should have no quantity sets, got %d", len(sets))
	}
}
