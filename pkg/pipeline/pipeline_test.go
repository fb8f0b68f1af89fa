package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ifcwalk/ifcwalk/pkg/cache"
	"github.com/ifcwalk/ifcwalk/pkg/errors"
)

const testModel = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION((''),'2;1');
FILE_NAME('house.ifc','2024-05-02T10:00:00',('Author'),('Org'),'proc','sys','');
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCPROJECT('0YvctVUKr0kugbFTf53O9L',$,'Demo Project',$,$,$,$,$,$);
#2=IFCSITE('1YvctVUKr0kugbFTf53O9L',$,'Site',$,$,$,$,$,.ELEMENT.,$,$,0.,$,$);
#3=IFCBUILDING('2YvctVUKr0kugbFTf53O9L',$,'House',$,$,$,$,$,.ELEMENT.,$,$,$);
#4=IFCBUILDINGSTOREY('3YvctVUKr0kugbFTf53O9M',$,'Ground Floor',$,$,$,$,$,.ELEMENT.,0.);
#5=IFCWALLSTANDARDCASE('0wvctVUKr0kugbFTf53O9A',$,'South Wall',$,$,$,$,'W-01',.SOLIDWALL.);
#8=IFCRELAGGREGATES('1zvctVUKr0kugbFTf53O9D',$,$,$,#1,(#2));
#9=IFCRELAGGREGATES('1zvctVUKr0kugbFTf53O9E',$,$,$,#2,(#3));
#10=IFCRELAGGREGATES('1zvctVUKr0kugbFTf53O9F',$,$,$,#3,(#4));
#11=IFCRELCONTAINEDINSPATIALSTRUCTURE('2zvctVUKr0kugbFTf53O9G',$,$,$,(#5),#4);
ENDSEC;
END-ISO-10303-21;
`

func writeTestModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "house.ifc")
	if err := os.WriteFile(path, []byte(testModel), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Path: "house.ifc"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("Valid options should pass: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatText {
		t.Errorf("Formats should be [text], got %v", opts.Formats)
	}
}

func TestOptionsTakeoffDefaults(t *testing.T) {
	opts := Options{Path: "house.ifc", Takeoff: true}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.TakeoffClass != "IfcElement" {
		t.Errorf("TakeoffClass = %q, want IfcElement", opts.TakeoffClass)
	}
	if len(opts.TakeoffColumns) == 0 {
		t.Error("TakeoffColumns should default to the built-in list")
	}
}

func TestOptionsRequirePath(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("err = %v, want INVALID_PATH", err)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Path: "house.ifc", Takeoff: true}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	originalFormats := len(opts.Formats)
	originalColumns := len(opts.TakeoffColumns)

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if len(opts.Formats) != originalFormats {
		t.Error("Formats changed on second call")
	}
	if len(opts.TakeoffColumns) != originalColumns {
		t.Error("TakeoffColumns changed on second call")
	}
}

func TestExecute(t *testing.T) {
	path := writeTestModel(t)
	runner := NewRunner(nil, nil, quietLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Path:    path,
		Formats: []string{"text", "json", "dot"},
		Takeoff: true,
		Scene:   true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.EntityCount != 9 {
		t.Errorf("EntityCount = %d, want 9", result.Stats.EntityCount)
	}
	if result.Stats.NodeCount != 5 {
		t.Errorf("NodeCount = %d, want 5", result.Stats.NodeCount)
	}
	if result.ModelHash == "" {
		t.Error("ModelHash missing")
	}

	text := string(result.Artifacts["text"])
	if !strings.Contains(text, "Demo Project [IfcProject]") {
		t.Errorf("text artifact:\n%s", text)
	}
	if !strings.Contains(string(result.Artifacts["json"]), `"class":"IfcProject"`) {
		t.Errorf("json artifact:\n%s", result.Artifacts["json"])
	}
	if !strings.Contains(string(result.Artifacts["dot"]), "digraph hierarchy") {
		t.Errorf("dot artifact:\n%s", result.Artifacts["dot"])
	}
	if !strings.Contains(string(result.Artifacts["takeoff"]), "South Wall") {
		t.Errorf("takeoff artifact:\n%s", result.Artifacts["takeoff"])
	}
	if !strings.Contains(string(result.Artifacts["scene"]), `"class":"IfcSite"`) {
		t.Errorf("scene artifact:\n%s", result.Artifacts["scene"])
	}
}

func TestExecuteCacheHits(t *testing.T) {
	path := writeTestModel(t)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil, quietLogger())
	defer runner.Close()

	opts := Options{Path: path, Formats: []string{"text", "dot"}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LoadHit || first.CacheInfo.TreeHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss everywhere: %+v", first.CacheInfo)
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LoadHit || !second.CacheInfo.TreeHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit everywhere: %+v", second.CacheInfo)
	}
	if string(first.Artifacts["text"]) != string(second.Artifacts["text"]) {
		t.Error("cached artifact differs from rendered one")
	}

	// Refresh bypasses all stages.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.LoadHit || third.CacheInfo.RenderHit {
		t.Errorf("refresh run should miss: %+v", third.CacheInfo)
	}
}

func TestExecuteMissingFile(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	_, err := runner.Execute(context.Background(), Options{Path: filepath.Join(t.TempDir(), "gone.ifc")})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}
