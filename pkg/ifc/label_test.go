package ifc

import "testing"

func TestSplitCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Wall", "Wall"},
		{"WallStandardCase", "Wall Standard Case"},
		{"BuildingStorey", "Building Storey"},
		{"OverallHeight", "Overall Height"},
		{"GFAArea", "GFA Area"},
		{"ID", "ID"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SplitCamel(tt.in); got != tt.want {
			t.Errorf("SplitCamel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFriendlyClass(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"IfcWallStandardCase", "Wall Standard Case"},
		{"IfcBuildingStorey", "Building Storey"},
		{"IfcSite", "Site"},
		{"Widget", "Widget"},
	}
	for _, tt := range tests {
		if got := FriendlyClass(tt.in); got != tt.want {
			t.Errorf("FriendlyClass(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	m := loadTestModel(t)

	wall, _ := m.Get(5)
	if got := DisplayName(wall); got != "South Wall" {
		t.Errorf("DisplayName = %q", got)
	}

	// The project in the fixture has a Name; clear it to exercise the
	// LongName fallback.
	project, _ := m.Get(1)
	if err := project.SetAttr("Name", "$"); err != nil {
		t.Fatal(err)
	}
	if got := DisplayName(project); got != "Demo Long Name" {
		t.Errorf("DisplayName with LongName fallback = %q", got)
	}

	rel, _ := m.Get(8)
	if got := DisplayName(rel); got != "Unnamed" {
		t.Errorf("DisplayName without names = %q", got)
	}
}
