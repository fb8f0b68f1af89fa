package ifc

import (
	"io"
	"os"
	"strings"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/step"
)

// Inverse relation kinds tracked by the model index. Each holds the
// STEP ids of relationship records, in file order.
type inverseIndex struct {
	decomposedBy []int64 // IfcRelAggregates with this as RelatingObject
	decomposes   []int64 // IfcRelAggregates naming this in RelatedObjects
	contains     []int64 // IfcRelContainedInSpatialStructure with this as RelatingStructure
	containedIn  []int64 // IfcRelContainedInSpatialStructure naming this in RelatedElements
	definedBy    []int64 // IfcRelDefinesByProperties / IfcRelDefinesByType naming this
	voidedBy     []int64 // IfcRelVoidsElement with this as RelatingBuildingElement
	fills        []int64 // IfcRelFillsElement with this as RelatedBuildingElement
}

// Model is an in-memory IFC file: the underlying STEP data plus the
// schema tables and an inverse relation index built once at load time.
type Model struct {
	file     *step.File
	schema   *Schema
	path     string
	modified bool

	inverse map[int64]*inverseIndex
	byGUID  map[string]int64
}

// Open reads and indexes the IFC file at path.
func Open(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "model file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "failed to open model file")
	}
	defer f.Close()
	m, err := Read(f)
	if err != nil {
		return nil, err
	}
	m.path = path
	return m, nil
}

// Read decodes an IFC model from r without associating a path.
func Read(r io.Reader) (*Model, error) {
	file, err := step.Decode(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "failed to parse STEP data")
	}
	return NewModel(file), nil
}

// NewModel wraps an already decoded STEP file.
func NewModel(file *step.File) *Model {
	m := &Model{
		file:   file,
		schema: DefaultSchema(),
	}
	m.buildIndex()
	return m
}

// buildIndex walks all instances once and records inverse relation
// membership and GlobalId lookup entries. Relation ids are appended in
// file order so every inverse list preserves declared order.
func (m *Model) buildIndex() {
	m.inverse = make(map[int64]*inverseIndex)
	m.byGUID = make(map[string]int64)
	for _, inst := range m.file.Instances() {
		if guid := inst.Arg(0); guid.Kind == step.String && len(guid.Str) == 22 {
			if _, taken := m.byGUID[guid.Str]; !taken {
				m.byGUID[guid.Str] = inst.ID
			}
		}
		switch inst.Type {
		case "IFCRELAGGREGATES":
			if rel := inst.Arg(4); rel.Kind == step.Ref {
				s := m.slot(rel.RefID)
				s.decomposedBy = append(s.decomposedBy, inst.ID)
			}
			for _, item := range inst.Arg(5).Items {
				if item.Kind == step.Ref {
					s := m.slot(item.RefID)
					s.decomposes = append(s.decomposes, inst.ID)
				}
			}
		case "IFCRELCONTAINEDINSPATIALSTRUCTURE":
			for _, item := range inst.Arg(4).Items {
				if item.Kind == step.Ref {
					s := m.slot(item.RefID)
					s.containedIn = append(s.containedIn, inst.ID)
				}
			}
			if rel := inst.Arg(5); rel.Kind == step.Ref {
				s := m.slot(rel.RefID)
				s.contains = append(s.contains, inst.ID)
			}
		case "IFCRELDEFINESBYPROPERTIES", "IFCRELDEFINESBYTYPE":
			for _, item := range inst.Arg(4).Items {
				if item.Kind == step.Ref {
					s := m.slot(item.RefID)
					s.definedBy = append(s.definedBy, inst.ID)
				}
			}
		case "IFCRELVOIDSELEMENT":
			if rel := inst.Arg(4); rel.Kind == step.Ref {
				s := m.slot(rel.RefID)
				s.voidedBy = append(s.voidedBy, inst.ID)
			}
		case "IFCRELFILLSELEMENT":
			if rel := inst.Arg(5); rel.Kind == step.Ref {
				s := m.slot(rel.RefID)
				s.fills = append(s.fills, inst.ID)
			}
		}
	}
}

func (m *Model) slot(id int64) *inverseIndex {
	idx := m.inverse[id]
	if idx == nil {
		idx = &inverseIndex{}
		m.inverse[id] = idx
	}
	return idx
}

// File exposes the underlying STEP file.
func (m *Model) File() *step.File { return m.file }

// Header exposes the STEP header of the model.
func (m *Model) Header() *step.Header { return &m.file.Header }

// Schema returns the entity definition tables used by this model.
func (m *Model) Schema() *Schema { return m.schema }

// Path returns the file the model was opened from, or "" for models
// read from a stream.
func (m *Model) Path() string { return m.path }

// SetPath rebinds the model to a file path, for save-as flows.
func (m *Model) SetPath(path string) { m.path = path }

// Modified reports whether any attribute was edited since load or the
// last save.
func (m *Model) Modified() bool { return m.modified }

// Len returns the number of instances in the model.
func (m *Model) Len() int { return m.file.Len() }

// Save writes the model back to its path in canonical STEP form.
func (m *Model) Save() error {
	if m.path == "" {
		return errors.New(errors.ErrCodeInvalidPath, "model has no file path")
	}
	return m.SaveAs(m.path)
}

// SaveAs writes the model to path and rebinds it there.
func (m *Model) SaveAs(path string) error {
	if err := step.EncodeFile(path, m.file); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to write model file")
	}
	m.path = path
	m.modified = false
	return nil
}

// Write encodes the model to w in canonical STEP form.
func (m *Model) Write(w io.Writer) error {
	return step.Encode(w, m.file)
}

// Get resolves a STEP id to an entity.
func (m *Model) Get(id int64) (Entity, bool) {
	inst := m.file.Get(id)
	if inst == nil {
		return Entity{}, false
	}
	return Entity{model: m, inst: inst}, true
}

// ByGlobalID resolves a 22 character GlobalId to its entity.
func (m *Model) ByGlobalID(guid string) (Entity, bool) {
	id, ok := m.byGUID[guid]
	if !ok {
		return Entity{}, false
	}
	return m.Get(id)
}

// Entities returns every instance as an entity, in file order.
func (m *Model) Entities() []Entity {
	insts := m.file.Instances()
	out := make([]Entity, len(insts))
	for i, inst := range insts {
		out[i] = Entity{model: m, inst: inst}
	}
	return out
}

// ByType returns all instances of class or any of its subtypes, in
// file order. Matching is case-insensitive; unknown classes match by
// exact type name only.
func (m *Model) ByType(class string) []Entity {
	want := make(map[string]bool)
	for _, name := range m.schema.WithSubtypes(class) {
		want[strings.ToUpper(name)] = true
	}
	var out []Entity
	for _, inst := range m.file.Instances() {
		if want[inst.Type] {
			out = append(out, Entity{model: m, inst: inst})
		}
	}
	return out
}

// Projects returns the IfcProject entities of the model, in file
// order. Well-formed files carry exactly one.
func (m *Model) Projects() []Entity {
	return m.ByType("IfcProject")
}

// CountByType tallies instances per canonical class name.
func (m *Model) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, inst := range m.file.Instances() {
		counts[m.schema.Canonical(inst.Type)]++
	}
	return counts
}
