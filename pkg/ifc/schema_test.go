package ifc

import (
	"strings"
	"testing"
)

func TestSchemaAttrPositions(t *testing.T) {
	s := DefaultSchema()

	tests := []struct {
		entity string
		attr   string
		index  int
	}{
		{"IfcRoot", "GlobalId", 0},
		{"IfcWall", "Name", 2},
		{"IfcWall", "ObjectType", 4},
		{"IfcWall", "Tag", 7},
		{"IfcWall", "PredefinedType", 8},
		{"IfcSite", "RefElevation", 11},
		{"IfcBuildingStorey", "Elevation", 9},
		{"IfcDoor", "OverallHeight", 8},
		{"IfcDoor", "OverallWidth", 9},
		{"IfcRelAggregates", "RelatingObject", 4},
		{"IfcRelAggregates", "RelatedObjects", 5},
		{"IfcRelContainedInSpatialStructure", "RelatedElements", 4},
		{"IfcRelContainedInSpatialStructure", "RelatingStructure", 5},
		{"IfcPropertySet", "HasProperties", 4},
		{"IfcPropertySingleValue", "NominalValue", 2},
		{"IfcQuantityLength", "LengthValue", 3},
		{"IfcWallType", "PredefinedType", 9},
	}
	for _, tt := range tests {
		i, _, ok := s.AttrIndex(tt.entity, tt.attr)
		if !ok {
			t.Errorf("AttrIndex(%s, %s): not found", tt.entity, tt.attr)
			continue
		}
		if i != tt.index {
			t.Errorf("AttrIndex(%s, %s) = %d, want %d", tt.entity, tt.attr, i, tt.index)
		}
	}
}

func TestSchemaAttrCounts(t *testing.T) {
	s := DefaultSchema()

	tests := []struct {
		entity string
		count  int
	}{
		{"IfcProject", 9},
		{"IfcSite", 14},
		{"IfcBuilding", 12},
		{"IfcBuildingStorey", 10},
		{"IfcSpace", 11},
		{"IfcWall", 9},
		{"IfcDoor", 13},
		{"IfcOpeningElement", 9},
		{"IfcRelAggregates", 6},
		{"IfcPropertySet", 5},
		{"IfcPropertySingleValue", 4},
		{"IfcElementQuantity", 6},
		{"IfcQuantityLength", 5},
		{"IfcWallType", 10},
		{"IfcOwnerHistory", 8},
	}
	for _, tt := range tests {
		if got := len(s.AllAttrs(tt.entity)); got != tt.count {
			t.Errorf("AllAttrs(%s): %d attributes, want %d", tt.entity, got, tt.count)
		}
	}
}

func TestSchemaSubtypes(t *testing.T) {
	s := DefaultSchema()

	if !s.IsSubtypeOf("IfcWallStandardCase", "IfcWall") {
		t.Error("IfcWallStandardCase should be a subtype of IfcWall")
	}
	if !s.IsSubtypeOf("IFCWALLSTANDARDCASE", "ifcelement") {
		t.Error("subtype matching should be case-insensitive")
	}
	if !s.IsSubtypeOf("IfcDoor", "IfcProduct") {
		t.Error("IfcDoor should descend from IfcProduct")
	}
	if !s.IsSubtypeOf("IfcBuildingStorey", "IfcSpatialStructureElement") {
		t.Error("IfcBuildingStorey should descend from IfcSpatialStructureElement")
	}
	if s.IsSubtypeOf("IfcWall", "IfcWallStandardCase") {
		t.Error("supertype must not count as subtype")
	}
	if s.IsSubtypeOf("IfcSite", "IfcElement") {
		t.Error("IfcSite is not an element")
	}
	if !s.IsSubtypeOf("IfcMystery", "IfcMystery") {
		t.Error("unknown names should match themselves")
	}
}

func TestSchemaWithSubtypes(t *testing.T) {
	s := DefaultSchema()

	walls := s.WithSubtypes("ifcwall")
	if len(walls) != 2 || walls[0] != "IfcWall" || walls[1] != "IfcWallStandardCase" {
		t.Errorf("WithSubtypes(ifcwall) = %v", walls)
	}

	elements := s.WithSubtypes("IfcElement")
	found := make(map[string]bool, len(elements))
	for _, name := range elements {
		found[name] = true
	}
	for _, want := range []string{"IfcElement", "IfcWall", "IfcWallStandardCase", "IfcDoor", "IfcOpeningElement", "IfcFlowTerminal"} {
		if !found[want] {
			t.Errorf("WithSubtypes(IfcElement) missing %s", want)
		}
	}
	if found["IfcSpace"] {
		t.Error("WithSubtypes(IfcElement) must not include spatial elements")
	}

	unknown := s.WithSubtypes("IfcMystery")
	if len(unknown) != 1 || unknown[0] != "IfcMystery" {
		t.Errorf("WithSubtypes(IfcMystery) = %v", unknown)
	}
}

func TestSchemaCanonical(t *testing.T) {
	s := DefaultSchema()

	if got := s.Canonical("IFCWALLSTANDARDCASE"); got != "IfcWallStandardCase" {
		t.Errorf("Canonical(IFCWALLSTANDARDCASE) = %q", got)
	}
	if got := s.Canonical("IFCMYSTERY"); got != "IFCMYSTERY" {
		t.Errorf("Canonical should pass unknown names through, got %q", got)
	}
}

func TestSchemaEntitiesSorted(t *testing.T) {
	s := DefaultSchema()
	names := s.Entities()
	if len(names) < 50 {
		t.Fatalf("expected a substantial table, got %d entities", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Entities() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestSchemaEnumDomains(t *testing.T) {
	s := DefaultSchema()

	_, def, ok := s.AttrIndex("IfcWall", "PredefinedType")
	if !ok || def.Type != AttrEnum {
		t.Fatal("IfcWall.PredefinedType should be an enum attribute")
	}
	joined := strings.Join(def.Enum, ",")
	for _, want := range []string{"SOLIDWALL", "PARTITIONING", "NOTDEFINED"} {
		if !strings.Contains(joined, want) {
			t.Errorf("wall enum missing %s", want)
		}
	}
}
