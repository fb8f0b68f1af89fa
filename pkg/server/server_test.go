package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ifcwalk/ifcwalk/pkg/cache"
	"github.com/ifcwalk/ifcwalk/pkg/pipeline"
	"github.com/ifcwalk/ifcwalk/pkg/session"
)

const apiModel = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION((''),'2;1');
FILE_NAME('api.ifc','2024-05-14T09:30:00',('Architect'),('Studio'),'proc','sys','');
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCPROJECT('2O2Fr$t4X7Zf8NOew3FLOH',$,'Demo Project',$,$,$,$,$,$);
#2=IFCSITE('0wvctVUKr0kugbFTf53O9B',$,'Site',$,$,$,$,$,$,$,$,$,$,$);
#3=IFCBUILDING('0wvctVUKr0kugbFTf53O9C',$,'Office',$,$,$,$,$,$,$,$,$);
#4=IFCBUILDINGSTOREY('0wvctVUKr0kugbFTf53O9D',$,'Level 1',$,$,$,$,$,$,$);
#5=IFCWALLSTANDARDCASE('0wvctVUKr0kugbFTf53O9A',$,'South Wall',$,$,#40,$,$,.SOLIDWALL.);
#10=IFCRELAGGREGATES('1wvctVUKr0kugbFTf53O9E',$,$,$,#1,(#2));
#11=IFCRELAGGREGATES('1wvctVUKr0kugbFTf53O9F',$,$,$,#2,(#3));
#12=IFCRELAGGREGATES('1wvctVUKr0kugbFTf53O9G',$,$,$,#3,(#4));
#13=IFCRELCONTAINEDINSPATIALSTRUCTURE('1wvctVUKr0kugbFTf53O9H',$,$,$,(#5),#4);
#20=IFCPROPERTYSINGLEVALUE('IsExternal',$,IFCBOOLEAN(.T.),$);
#21=IFCPROPERTYSET('1wvctVUKr0kugbFTf53O9I',$,'Pset_WallCommon',$,(#20));
#22=IFCRELDEFINESBYPROPERTIES('1wvctVUKr0kugbFTf53O9J',$,$,$,(#5),#21);
#23=IFCQUANTITYLENGTH('Width',$,$,0.3,$);
#24=IFCELEMENTQUANTITY('1wvctVUKr0kugbFTf53O9K',$,'Qto_WallBaseQuantities',$,$,(#23));
#25=IFCRELDEFINESBYPROPERTIES('2wvctVUKr0kugbFTf53O9L',$,$,$,(#5),#24);
#40=IFCLOCALPLACEMENT($,$);
ENDSEC;
END-ISO-10303-21;
`

func newTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api.ifc")
	if err := os.WriteFile(path, []byte(apiModel), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
	srv := New(session.New(), runner, logger)
	return srv.Router(), path
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func openModel(t *testing.T, h http.Handler, path string) string {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, "/api/models", `{"path":`+jsonString(path)+`}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("open model: status %d, body %s", rec.Code, rec.Body.String())
	}
	var info struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode open response: %v", err)
	}
	return info.ID
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s, want ok status", rec.Body.String())
	}
}

func TestModelLifecycle(t *testing.T) {
	h, path := newTestServer(t)

	id := openModel(t, h, path)
	if id != "api" {
		t.Errorf("model id = %q, want api", id)
	}

	rec := doRequest(t, h, http.MethodGet, "/api/models", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if list[0]["name"] != "api.ifc" {
		t.Errorf("name = %v, want api.ifc", list[0]["name"])
	}

	rec = doRequest(t, h, http.MethodDelete, "/api/models/api", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("close status = %d, want 204", rec.Code)
	}

	rec = doRequest(t, h, http.MethodGet, "/api/models", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("len(list) after close = %d, want 0", len(list))
	}

	rec = doRequest(t, h, http.MethodDelete, "/api/models/api", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second close status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "MODEL_NOT_FOUND") {
		t.Errorf("second close body = %s, want MODEL_NOT_FOUND", rec.Body.String())
	}
}

func TestOpenModelErrors(t *testing.T) {
	h, path := newTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/models", "not json")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad body status = %d, want 422", rec.Code)
	}

	rec = doRequest(t, h, http.MethodPost, "/api/models", `{"path":""}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("empty path status = %d, want 422", rec.Code)
	}

	missing := filepath.Join(filepath.Dir(path), "missing.ifc")
	rec = doRequest(t, h, http.MethodPost, "/api/models", `{"path":`+jsonString(missing)+`}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing file status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "FILE_NOT_FOUND") {
		t.Errorf("missing file body = %s", rec.Body.String())
	}
}

func TestGetModelDetail(t *testing.T) {
	h, path := newTestServer(t)
	openModel(t, h, path)

	rec := doRequest(t, h, http.MethodGet, "/api/models/api", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var detail struct {
		Name     string `json:"name"`
		Schema   string `json:"schema"`
		Authors  []string
		Entities int `json:"entities"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if detail.Schema != "IFC4" {
		t.Errorf("schema = %q, want IFC4", detail.Schema)
	}
	if detail.Entities != 16 {
		t.Errorf("entities = %d, want 16", detail.Entities)
	}
	if !strings.Contains(rec.Body.String(), `"Architect"`) {
		t.Errorf("body missing author: %s", rec.Body.String())
	}
}

func TestHierarchy(t *testing.T) {
	h, path := newTestServer(t)
	openModel(t, h, path)

	rec := doRequest(t, h, http.MethodGet, "/api/models/api/hierarchy", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{`"class":"IfcProject"`, `"South Wall"`, `"Level 1"`} {
		if !strings.Contains(body, want) {
			t.Errorf("hierarchy missing %s", want)
		}
	}

	rec = doRequest(t, h, http.MethodGet, "/api/models/nope/hierarchy", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown model status = %d, want 404", rec.Code)
	}
}

func TestEntityByIDAndGUID(t *testing.T) {
	h, path := newTestServer(t)
	openModel(t, h, path)

	rec := doRequest(t, h, http.MethodGet, "/api/models/api/entities/5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{
		`"class":"IfcWallStandardCase"`,
		`"guid":"0wvctVUKr0kugbFTf53O9A"`,
		`"name":"PredefinedType"`,
		`"value":"SOLIDWALL"`,
		`"name":"Pset_WallCommon"`,
		`"name":"IsExternal","value":"T"`,
		`"name":"Qto_WallBaseQuantities"`,
		`"name":"Width","kind":"Length","value":0.3`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("entity detail missing %s in %s", want, body)
		}
	}

	rec = doRequest(t, h, http.MethodGet, "/api/models/api/entities/0wvctVUKr0kugbFTf53O9A", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("guid lookup status = %d", rec.Code)
	}
	var detail struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode entity: %v", err)
	}
	if detail.ID != 5 {
		t.Errorf("guid lookup id = %d, want 5", detail.ID)
	}

	for _, target := range []string{
		"/api/models/api/entities/999",
		"/api/models/api/entities/bogus",
	} {
		rec = doRequest(t, h, http.MethodGet, target, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s status = %d, want 404", target, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "ENTITY_NOT_FOUND") {
			t.Errorf("%s body = %s", target, rec.Body.String())
		}
	}
}

func TestTakeoffEndpoint(t *testing.T) {
	h, path := newTestServer(t)
	openModel(t, h, path)

	rec := doRequest(t, h, http.MethodGet, "/api/models/api/takeoff", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"class":"IfcElement"`) {
		t.Errorf("takeoff missing default class: %s", body)
	}
	if !strings.Contains(body, "South Wall") {
		t.Errorf("takeoff missing wall row: %s", body)
	}

	rec = doRequest(t, h, http.MethodGet, "/api/models/api/takeoff?format=csv", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("csv status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("csv content type = %q", ct)
	}
	csv := rec.Body.String()
	if !strings.HasPrefix(csv, "id;GlobalId;class;") {
		t.Errorf("csv header = %q", strings.SplitN(csv, "\n", 2)[0])
	}
	if !strings.Contains(csv, "#5;0wvctVUKr0kugbFTf53O9A;IfcWallStandardCase") {
		t.Errorf("csv missing wall row: %s", csv)
	}

	rec = doRequest(t, h, http.MethodGet, "/api/models/api/takeoff?format=xml", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad format status = %d, want 422", rec.Code)
	}

	rec = doRequest(t, h, http.MethodGet, "/api/models/api/takeoff?class=Wall", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad class status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "INVALID_CLASS") {
		t.Errorf("bad class body = %s", rec.Body.String())
	}
}

func TestSceneEndpoint(t *testing.T) {
	h, path := newTestServer(t)
	openModel(t, h, path)

	rec := doRequest(t, h, http.MethodGet, "/api/models/api/scene", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{
		`"guid":"0wvctVUKr0kugbFTf53O9A"`,
		`"class":"IfcWallStandardCase"`,
		`"placement":40`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scene missing %s in %s", want, body)
		}
	}
}
