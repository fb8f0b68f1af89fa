package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
)

const minimalModel = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION((''),'2;1');
FILE_NAME('min.ifc','2024-05-02T10:00:00',('Author'),('Org'),'proc','sys','');
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCPROJECT('0YvctVUKr0kugbFTf53O9L',$,'Demo',$,$,$,$,$,$);
ENDSEC;
END-ISO-10303-21;
`

func writeModel(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(minimalModel), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := writeModel(t, dir, "house.ifc")

	s := New()
	d1, err := s.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	d2, err := s.Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	if d1 != d2 {
		t.Error("same path must return the same document")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if d1.ID() != "house" {
		t.Errorf("ID = %q, want house", d1.ID())
	}
}

func TestOpenIDCollision(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	a := writeModel(t, dir, "house.ifc")
	b := writeModel(t, sub, "house.ifc")

	s := New()
	da, _ := s.Open(a)
	db, err := s.Open(b)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if da.ID() != "house" || db.ID() != "house-2" {
		t.Errorf("ids = %q, %q", da.ID(), db.ID())
	}
}

func TestCloseAndGet(t *testing.T) {
	dir := t.TempDir()
	path := writeModel(t, dir, "house.ifc")

	s := New()
	d, _ := s.Open(path)

	if got, ok := s.Get(d.ID()); !ok || got != d {
		t.Fatal("Get must find the open document")
	}
	if err := s.Close(d.ID()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := s.Get(d.ID()); ok {
		t.Error("document still present after Close")
	}
	if err := s.Close(d.ID()); !errors.Is(err, errors.ErrCodeModelNotFound) {
		t.Errorf("second Close err = %v, want MODEL_NOT_FOUND", err)
	}
}

func TestDocumentsKeepOpeningOrder(t *testing.T) {
	dir := t.TempDir()
	s := New()
	for _, name := range []string{"c.ifc", "a.ifc", "b.ifc"} {
		if _, err := s.Open(writeModel(t, dir, name)); err != nil {
			t.Fatal(err)
		}
	}

	var names []string
	for _, d := range s.Documents() {
		names = append(names, d.Name())
	}
	want := []string{"c.ifc", "a.ifc", "b.ifc"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestModifiedAndSaveAll(t *testing.T) {
	dir := t.TempDir()
	path := writeModel(t, dir, "house.ifc")

	s := New()
	d, _ := s.Open(path)
	if s.Modified() {
		t.Fatal("fresh session must not be modified")
	}

	proj, _ := d.Model().Get(1)
	if err := proj.SetAttr("Name", "Renamed"); err != nil {
		t.Fatal(err)
	}
	if !d.Modified() || !s.Modified() {
		t.Fatal("edit must mark the document modified")
	}

	if err := s.SaveAll(); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	if s.Modified() {
		t.Error("SaveAll must clear the modified state")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "'Renamed'") {
		t.Error("saved file misses the edit")
	}
}

func TestReloadDropsEdits(t *testing.T) {
	dir := t.TempDir()
	path := writeModel(t, dir, "house.ifc")

	s := New()
	d, _ := s.Open(path)
	proj, _ := d.Model().Get(1)
	if err := proj.SetAttr("Name", "Scratch"); err != nil {
		t.Fatal(err)
	}

	if err := d.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	proj, _ = d.Model().Get(1)
	if proj.Name() != "Demo" {
		t.Errorf("Name after reload = %q, want Demo", proj.Name())
	}
	if d.Modified() {
		t.Error("reloaded document must be clean")
	}
}

func TestTitle(t *testing.T) {
	dir := t.TempDir()
	s := New()
	if s.Title() != "" {
		t.Errorf("empty session title = %q", s.Title())
	}

	s.Open(writeModel(t, dir, "house.ifc"))
	s.Open(writeModel(t, dir, "office.ifc"))
	if got := s.Title(); got != "house.ifc — office.ifc" {
		t.Errorf("Title = %q", got)
	}

	s.Open(writeModel(t, dir, strings.Repeat("x", 80)+".ifc"))
	if got := []rune(s.Title()); len(got) != TitleLimit {
		t.Errorf("title length = %d runes, want %d", len(got), TitleLimit)
	}
}
