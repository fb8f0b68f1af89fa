package takeoff

import (
	"strings"
	"testing"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
)

const wallModel = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION((''),'2;1');
FILE_NAME('walls.ifc','2024-05-02T10:00:00',('Author'),('Org'),'proc','sys','');
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCPROJECT('0YvctVUKr0kugbFTf53O9L',$,'Demo Project',$,$,$,$,$,$);
#5=IFCWALLSTANDARDCASE('0wvctVUKr0kugbFTf53O9A',$,'South Wall',$,$,$,$,'W-01',.SOLIDWALL.);
#6=IFCDOOR('0xvctVUKr0kugbFTf53O9B',$,'Front Door',$,$,$,$,'D-01',2.1,0.9,.DOOR.,.SINGLE_SWING_LEFT.,$);
#14=IFCPROPERTYSINGLEVALUE('IsExternal',$,IFCBOOLEAN(.T.),$);
#16=IFCPROPERTYSET('3zvctVUKr0kugbFTf53O9J',$,'Pset_WallCommon',$,(#14));
#17=IFCRELDEFINESBYPROPERTIES('3zvctVUKr0kugbFTf53O9K',$,$,$,(#5),#16);
#18=IFCQUANTITYLENGTH('Width',$,$,0.3,$);
#20=IFCELEMENTQUANTITY('0AvctVUKr0kugbFTf53O9L',$,'Qto_WallBaseQuantities',$,$,(#18));
#21=IFCRELDEFINESBYPROPERTIES('0BvctVUKr0kugbFTf53O9M',$,$,$,(#5),#20);
#22=IFCWALLTYPE('0CvctVUKr0kugbFTf53O9N',$,'Basic Wall',$,$,$,$,$,$,.STANDARD.);
#23=IFCRELDEFINESBYTYPE('0DvctVUKr0kugbFTf53O9P',$,$,$,(#5),#22);
ENDSEC;
END-ISO-10303-21;
`

func loadWalls(t *testing.T) *ifc.Model {
	t.Helper()
	m, err := ifc.Read(strings.NewReader(wallModel))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return m
}

func colIndex(cols []string, name string) int {
	for i, c := range cols {
		if c == name {
			return i
		}
	}
	return -1
}

func TestRunDefaults(t *testing.T) {
	m := loadWalls(t)

	table, err := Run(m, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if table.Class != "IfcElement" {
		t.Errorf("Class = %q, want IfcElement", table.Class)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 (wall, door)", len(table.Rows))
	}

	wall, door := table.Rows[0], table.Rows[1]
	checks := []struct {
		col  string
		want string
	}{
		{"id", "#5"},
		{"GlobalId", "0wvctVUKr0kugbFTf53O9A"},
		{"class", "IfcWallStandardCase"},
		{"type", "Basic Wall"},
		{"Name", "South Wall"},
		{"IsExternal", "T"},
		{"Width", "0.3"},
		{"PredefinedType", "SOLIDWALL"},
	}
	for _, c := range checks {
		i := colIndex(table.Columns, c.col)
		if i < 0 {
			t.Fatalf("default columns miss %q", c.col)
		}
		if wall[i] != c.want {
			t.Errorf("wall[%s] = %q, want %q", c.col, wall[i], c.want)
		}
	}

	// The door has no wall psets or quantities; those cells stay blank.
	if i := colIndex(table.Columns, "IsExternal"); door[i] != "" {
		t.Errorf("door[IsExternal] = %q, want empty", door[i])
	}
	if i := colIndex(table.Columns, "id"); door[i] != "#6" {
		t.Errorf("door[id] = %q, want #6", door[i])
	}
	// OverallHeight is a door attribute but not a default column; Height is
	// resolved as a quantity and the door has none.
	if i := colIndex(table.Columns, "Height"); door[i] != "" {
		t.Errorf("door[Height] = %q, want empty", door[i])
	}
}

func TestRunClassFilter(t *testing.T) {
	m := loadWalls(t)

	table, err := Run(m, Options{Class: "IfcWall", Columns: []string{"id", "Name"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	if got := table.Rows[0]; got[0] != "#5" || got[1] != "South Wall" {
		t.Errorf("row = %v", got)
	}
}

func TestRunUnknownColumn(t *testing.T) {
	m := loadWalls(t)

	table, err := Run(m, Options{Class: "IfcDoor", Columns: []string{"id", "Banana"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := table.Rows[0][1]; got != "" {
		t.Errorf("unknown column cell = %q, want empty", got)
	}
}

func TestRunInvalidClass(t *testing.T) {
	m := loadWalls(t)

	if _, err := Run(m, Options{Class: "Wall"}); !errors.Is(err, errors.ErrCodeInvalidClass) {
		t.Errorf("err = %v, want INVALID_CLASS", err)
	}
	if _, err := Run(m, Options{Class: "Ifc Wall"}); !errors.Is(err, errors.ErrCodeInvalidClass) {
		t.Errorf("err = %v, want INVALID_CLASS", err)
	}
}

func TestWriteCSV(t *testing.T) {
	table := &Table{
		Class:   "IfcWall",
		Columns: []string{"id", "Name"},
		Rows: [][]string{
			{"#5", "South Wall"},
			{"#9", "A;B"},
		},
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "id;Name\n#5;South Wall\n#9;\"A;B\"\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

func TestMongoOptionsDefaults(t *testing.T) {
	opts := MongoOptions{URI: "mongodb://localhost:27017"}
	if err := opts.setDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Database != "ifcwalk" || opts.Collection != "takeoff" {
		t.Errorf("defaults = %q/%q", opts.Database, opts.Collection)
	}

	var empty MongoOptions
	if err := empty.setDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("missing URI err = %v, want INVALID_INPUT", err)
	}
}
