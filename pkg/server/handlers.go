package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
	"github.com/ifcwalk/ifcwalk/pkg/pipeline"
	"github.com/ifcwalk/ifcwalk/pkg/render"
	"github.com/ifcwalk/ifcwalk/pkg/scene"
	"github.com/ifcwalk/ifcwalk/pkg/session"
	"github.com/ifcwalk/ifcwalk/pkg/takeoff"
)

// modelInfo is the list entry for an open document.
type modelInfo struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	Name     string `json:"name"`
	Modified bool   `json:"modified"`
}

// modelDetail adds header fields and the instance count.
type modelDetail struct {
	modelInfo
	Schema            string   `json:"schema"`
	Description       []string `json:"description,omitempty"`
	Timestamp         string   `json:"timestamp,omitempty"`
	Authors           []string `json:"authors,omitempty"`
	Organizations     []string `json:"organizations,omitempty"`
	Preprocessor      string   `json:"preprocessor,omitempty"`
	OriginatingSystem string   `json:"originating_system,omitempty"`
	Entities          int      `json:"entities"`
}

type attrJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type psetJSON struct {
	Name       string     `json:"name"`
	FromType   bool       `json:"from_type,omitempty"`
	Properties []attrJSON `json:"properties"`
}

type quantityJSON struct {
	Name  string  `json:"name"`
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

type qsetJSON struct {
	Name       string         `json:"name"`
	Quantities []quantityJSON `json:"quantities"`
}

// entityDetail is the full entity view: attributes, psets, quantities.
type entityDetail struct {
	ID           int64      `json:"id"`
	Class        string     `json:"class"`
	GlobalID     string     `json:"guid,omitempty"`
	Name         string     `json:"name,omitempty"`
	Attributes   []attrJSON `json:"attributes"`
	PropertySets []psetJSON `json:"property_sets,omitempty"`
	QuantitySets []qsetJSON `json:"quantity_sets,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	docs := s.session.Documents()
	infos := make([]modelInfo, 0, len(docs))
	for _, d := range docs {
		infos = append(infos, docInfo(d))
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleOpenModel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}
	if body.Path == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "path is required"))
		return
	}

	doc, err := s.session.Open(body.Path)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, docInfo(doc))
}

func (s *Server) handleGetModel(w http.ResponseWriter, r *http.Request) {
	doc, err := s.doc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	m := doc.Model()
	h := m.Header()
	writeJSON(w, http.StatusOK, modelDetail{
		modelInfo:         docInfo(doc),
		Schema:            h.Schema(),
		Description:       h.Description,
		Timestamp:         h.Timestamp,
		Authors:           h.Authors,
		Organizations:     h.Organizations,
		Preprocessor:      h.Preprocessor,
		OriginatingSystem: h.OriginatingSystem,
		Entities:          m.Len(),
	})
}

func (s *Server) handleCloseModel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "model")
	if err := s.session.Close(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHierarchy(w http.ResponseWriter, r *http.Request) {
	doc, err := s.doc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Path:    doc.Path(),
		Formats: []string{pipeline.FormatJSON},
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(result.Artifacts[pipeline.FormatJSON])
}

func (s *Server) handleHierarchySVG(w http.ResponseWriter, r *http.Request) {
	doc, err := s.doc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Path:    doc.Path(),
		Formats: []string{pipeline.FormatSVG},
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
}

func (s *Server) handleEntity(w http.ResponseWriter, r *http.Request) {
	doc, err := s.doc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	e, err := resolveEntity(doc.Model(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entityJSON(e))
}

func (s *Server) handleTakeoff(w http.ResponseWriter, r *http.Request) {
	doc, err := s.doc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "format must be json or csv, got %q", format))
		return
	}

	table, err := takeoff.Run(doc.Model(), takeoff.Options{Class: r.URL.Query().Get("class")})
	if err != nil {
		writeError(w, err)
		return
	}

	if format == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		_ = takeoff.WriteCSV(w, table)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	doc, err := s.doc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sc, err := scene.Build(doc.Model())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// doc resolves the {model} URL parameter against the session.
func (s *Server) doc(r *http.Request) (*session.Document, error) {
	id := chi.URLParam(r, "model")
	doc, ok := s.session.Get(id)
	if !ok {
		return nil, errors.New(errors.ErrCodeModelNotFound, "no open model %q", id)
	}
	return doc, nil
}

func docInfo(d *session.Document) modelInfo {
	return modelInfo{
		ID:       d.ID(),
		Path:     d.Path(),
		Name:     d.Name(),
		Modified: d.Modified(),
	}
}

// resolveEntity accepts a numeric instance id or a 22-character GlobalId.
func resolveEntity(m *ifc.Model, raw string) (ifc.Entity, error) {
	if len(raw) == 22 {
		if e, ok := m.ByGlobalID(raw); ok {
			return e, nil
		}
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if e, ok := m.Get(id); ok {
			return e, nil
		}
		return ifc.Entity{}, errors.New(errors.ErrCodeEntityNotFound, "no entity #%d", id)
	}
	return ifc.Entity{}, errors.New(errors.ErrCodeEntityNotFound, "no entity %q", raw)
}

func entityJSON(e ifc.Entity) entityDetail {
	detail := entityDetail{
		ID:       e.ID(),
		Class:    e.Class(),
		GlobalID: e.GlobalID(),
		Name:     e.Name(),
	}

	for _, a := range e.Attrs() {
		detail.Attributes = append(detail.Attributes, attrJSON{
			Name:  a.Def.Name,
			Value: render.FormatValue(a.Value),
		})
	}
	for _, ps := range e.PropertySets() {
		pj := psetJSON{Name: ps.Name, FromType: ps.FromType}
		for _, p := range ps.Props {
			pj.Properties = append(pj.Properties, attrJSON{
				Name:  p.Name,
				Value: render.FormatValue(p.Value),
			})
		}
		detail.PropertySets = append(detail.PropertySets, pj)
	}
	for _, qs := range e.QuantitySets() {
		qj := qsetJSON{Name: qs.Name}
		for _, q := range qs.Quantities {
			qj.Quantities = append(qj.Quantities, quantityJSON{
				Name:  q.Name,
				Kind:  q.Kind,
				Value: q.Value,
			})
		}
		detail.QuantitySets = append(detail.QuantitySets, qj)
	}
	return detail
}
