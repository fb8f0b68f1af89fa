package scene

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ifcwalk/ifcwalk/pkg/ifc"
)

const sceneModel = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION((''),'2;1');
FILE_NAME('scene.ifc','2024-05-02T10:00:00',('Author'),('Org'),'proc','sys','');
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCPROJECT('0AvctVUKr0kugbFTf53O91',$,'Project',$,$,$,$,$,$);
#2=IFCSITE('0BvctVUKr0kugbFTf53O92',$,'Site',$,$,$,$,$,.ELEMENT.,$,$,0.,$,$);
#3=IFCBUILDING('0CvctVUKr0kugbFTf53O93',$,'House',$,$,$,$,$,.ELEMENT.,$,$,$);
#4=IFCBUILDINGSTOREY('0DvctVUKr0kugbFTf53O94',$,'Ground Floor',$,$,$,$,$,.ELEMENT.,0.);
#5=IFCWALLSTANDARDCASE('0EvctVUKr0kugbFTf53O95',$,'South Wall',$,$,#40,#41,'W-01',.SOLIDWALL.);
#8=IFCSPACE('0FvctVUKr0kugbFTf53O96',$,'Kitchen',$,$,$,$,$,.ELEMENT.,.SPACE.,$);
#30=IFCWINDOW('0GvctVUKr0kugbFTf53O97',$,'Kitchen Window',$,$,$,$,'WIN-01',1.2,0.8,.WINDOW.,.SINGLE_PANEL.,$);
#31=IFCFURNISHINGELEMENT('0HvctVUKr0kugbFTf53O98',$,'Counter',$,$,$,$,$);
#40=IFCLOCALPLACEMENT($,$);
#41=IFCPRODUCTDEFINITIONSHAPE($,$,());
#9=IFCRELAGGREGATES('1AvctVUKr0kugbFTf53O91',$,$,$,#1,(#2));
#10=IFCRELAGGREGATES('1BvctVUKr0kugbFTf53O92',$,$,$,#2,(#3));
#11=IFCRELAGGREGATES('1CvctVUKr0kugbFTf53O93',$,$,$,#3,(#4));
#12=IFCRELAGGREGATES('1DvctVUKr0kugbFTf53O94',$,$,$,#4,(#8));
#13=IFCRELCONTAINEDINSPATIALSTRUCTURE('1EvctVUKr0kugbFTf53O95',$,$,$,(#5,#30),#4);
#14=IFCRELCONTAINEDINSPATIALSTRUCTURE('1FvctVUKr0kugbFTf53O96',$,$,$,(#31),#8);
ENDSEC;
END-ISO-10303-21;
`

func loadScene(t *testing.T) *Scene {
	t.Helper()
	m, err := ifc.Read(strings.NewReader(sceneModel))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	s, err := Build(m)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestBuildNodes(t *testing.T) {
	s := loadScene(t)

	// Project is no product, the space and nothing else is skipped.
	wantOrder := []string{"IfcSite", "IfcBuilding", "IfcBuildingStorey",
		"IfcFurnishingElement", "IfcWallStandardCase", "IfcWindow"}
	if len(s.Nodes) != len(wantOrder) {
		t.Fatalf("nodes = %d, want %d", len(s.Nodes), len(wantOrder))
	}
	for i, class := range wantOrder {
		if s.Nodes[i].Class != class {
			t.Errorf("node[%d].Class = %s, want %s", i, s.Nodes[i].Class, class)
		}
	}
}

func TestBuildParents(t *testing.T) {
	s := loadScene(t)

	byClass := map[string]Node{}
	for _, n := range s.Nodes {
		byClass[n.Class] = n
	}

	if p := byClass["IfcSite"].Parent; p != "" {
		t.Errorf("site parent = %q, want empty", p)
	}
	storey := byClass["IfcBuildingStorey"]
	if p := byClass["IfcWallStandardCase"].Parent; p != storey.GlobalID {
		t.Errorf("wall parent = %q, want storey %q", p, storey.GlobalID)
	}
	// The counter sits in a space; the skipped space hands its children to
	// the storey.
	if p := byClass["IfcFurnishingElement"].Parent; p != storey.GlobalID {
		t.Errorf("furniture parent = %q, want storey %q", p, storey.GlobalID)
	}
}

func TestBuildPlacementRefs(t *testing.T) {
	s := loadScene(t)

	for _, n := range s.Nodes {
		if n.Class != "IfcWallStandardCase" {
			continue
		}
		if n.Placement != 40 || n.Representation != 41 {
			t.Errorf("wall refs = #%d/#%d, want #40/#41", n.Placement, n.Representation)
		}
		return
	}
	t.Fatal("wall node missing")
}

func TestBuildTransparency(t *testing.T) {
	s := loadScene(t)

	for _, n := range s.Nodes {
		switch n.Class {
		case "IfcWindow":
			if !n.Transparent || n.Style.A >= 1 {
				t.Errorf("window style = %+v, want translucent", n)
			}
		case "IfcWallStandardCase":
			if n.Transparent {
				t.Errorf("wall flagged transparent: %+v", n)
			}
		}
	}
}

func TestSceneJSON(t *testing.T) {
	s := loadScene(t)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, `"guid":"0EvctVUKr0kugbFTf53O95"`) {
		t.Errorf("wall guid missing:\n%s", out)
	}
	if strings.Contains(out, `"0FvctVUKr0kugbFTf53O96"`) {
		t.Errorf("space guid must not appear:\n%s", out)
	}
	if !strings.Contains(out, `"transparent":true`) {
		t.Errorf("window transparency missing:\n%s", out)
	}
}

func TestStyleForSubtype(t *testing.T) {
	m, err := ifc.Read(strings.NewReader(sceneModel))
	if err != nil {
		t.Fatal(err)
	}
	wall, _ := m.Get(5)
	if got := StyleFor(wall); got != (Style{0.85, 0.85, 0.85, 1}) {
		t.Errorf("wall style = %+v", got)
	}
	project, _ := m.Get(1)
	if got := StyleFor(project); got != DefaultStyle {
		t.Errorf("fallback style = %+v", got)
	}
}
