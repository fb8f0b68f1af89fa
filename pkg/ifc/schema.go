package ifc

import (
	"sort"
	"strings"
	"sync"
)

// AttrType classifies how an attribute value is interpreted and edited.
type AttrType int

const (
	AttrString AttrType = iota
	AttrInt
	AttrReal
	AttrBool
	AttrLogical
	AttrEnum
	AttrSelect
	AttrRef
	AttrList
)

// String returns a lowercase label used in schema listings and messages.
func (t AttrType) String() string {
	switch t {
	case AttrString:
		return "string"
	case AttrInt:
		return "integer"
	case AttrReal:
		return "real"
	case AttrBool:
		return "boolean"
	case AttrLogical:
		return "logical"
	case AttrEnum:
		return "enum"
	case AttrSelect:
		return "select"
	case AttrRef:
		return "reference"
	case AttrList:
		return "list"
	default:
		return "unknown"
	}
}

// Scalar reports whether values of this type can be edited from text.
func (t AttrType) Scalar() bool {
	switch t {
	case AttrString, AttrInt, AttrReal, AttrBool, AttrLogical, AttrEnum, AttrSelect:
		return true
	default:
		return false
	}
}

// AttrDef describes one explicit attribute of an entity definition.
type AttrDef struct {
	Name     string
	Type     AttrType
	Optional bool
	Enum     []string // allowed values when Type is AttrEnum
}

// EntityDef describes one entity type: its supertype link and the
// attributes it declares itself. Inherited attributes are resolved
// through the supertype chain.
type EntityDef struct {
	Name      string
	Supertype string
	Abstract  bool
	Attrs     []AttrDef
}

// Schema is an immutable registry of entity definitions keyed by
// case-insensitive name.
type Schema struct {
	byName   map[string]*EntityDef
	subtypes map[string][]string // direct subtypes in table order
	flat     map[string][]AttrDef
}

var (
	defaultSchemaOnce sync.Once
	defaultSchema     *Schema
)

// DefaultSchema returns the built-in IFC4 subset shared by all models.
func DefaultSchema() *Schema {
	defaultSchemaOnce.Do(func() {
		defaultSchema = newSchema(schemaDefs)
	})
	return defaultSchema
}

func newSchema(defs []EntityDef) *Schema {
	s := &Schema{
		byName:   make(map[string]*EntityDef, len(defs)),
		subtypes: make(map[string][]string),
		flat:     make(map[string][]AttrDef, len(defs)),
	}
	for i := range defs {
		def := &defs[i]
		s.byName[strings.ToUpper(def.Name)] = def
	}
	for i := range defs {
		def := &defs[i]
		if def.Supertype != "" {
			key := strings.ToUpper(def.Supertype)
			s.subtypes[key] = append(s.subtypes[key], def.Name)
		}
		s.flat[strings.ToUpper(def.Name)] = s.flatten(def)
	}
	return s
}

// flatten lists all explicit attributes of def, supertypes first. This
// matches the positional argument order of STEP instance records.
func (s *Schema) flatten(def *EntityDef) []AttrDef {
	var chain []*EntityDef
	for d := def; d != nil; d = s.byName[strings.ToUpper(d.Supertype)] {
		chain = append(chain, d)
		if d.Supertype == "" {
			break
		}
	}
	var out []AttrDef
	for i := len(chain) - 1; i >= 0; i-- {
		out = append(out, chain[i].Attrs...)
	}
	return out
}

// Lookup returns the definition for name, or nil when the type is not
// in the tables. Matching is case-insensitive.
func (s *Schema) Lookup(name string) *EntityDef {
	return s.byName[strings.ToUpper(name)]
}

// Known reports whether name is covered by the tables.
func (s *Schema) Known(name string) bool {
	return s.Lookup(name) != nil
}

// AllAttrs returns the flattened attribute list of name, inherited
// attributes first, matching STEP argument positions. Nil for unknown
// types.
func (s *Schema) AllAttrs(name string) []AttrDef {
	return s.flat[strings.ToUpper(name)]
}

// AttrIndex resolves an attribute by case-insensitive name to its
// argument position within instances of the entity.
func (s *Schema) AttrIndex(entity, attr string) (int, AttrDef, bool) {
	for i, def := range s.AllAttrs(entity) {
		if strings.EqualFold(def.Name, attr) {
			return i, def, true
		}
	}
	return 0, AttrDef{}, false
}

// IsSubtypeOf reports whether name equals ancestor or descends from it.
// Unknown names only match themselves.
func (s *Schema) IsSubtypeOf(name, ancestor string) bool {
	if strings.EqualFold(name, ancestor) {
		return true
	}
	d := s.Lookup(name)
	for d != nil && d.Supertype != "" {
		if strings.EqualFold(d.Supertype, ancestor) {
			return true
		}
		d = s.Lookup(d.Supertype)
	}
	return false
}

// Subtypes returns the direct subtypes of name in table order.
func (s *Schema) Subtypes(name string) []string {
	return s.subtypes[strings.ToUpper(name)]
}

// WithSubtypes returns the canonical names of name and all its
// transitive subtypes. When name is unknown the input is returned as
// the only member.
func (s *Schema) WithSubtypes(name string) []string {
	def := s.Lookup(name)
	if def == nil {
		return []string{name}
	}
	var out []string
	var visit func(n string)
	visit = func(n string) {
		out = append(out, n)
		for _, sub := range s.subtypes[strings.ToUpper(n)] {
			visit(sub)
		}
	}
	visit(def.Name)
	return out
}

// Entities returns all known entity names sorted alphabetically.
func (s *Schema) Entities() []string {
	out := make([]string, 0, len(s.byName))
	for _, def := range s.byName {
		out = append(out, def.Name)
	}
	sort.Strings(out)
	return out
}

// Canonical returns the table spelling of name (IfcWallStandardCase for
// IFCWALLSTANDARDCASE). Unknown names are returned unchanged.
func (s *Schema) Canonical(name string) string {
	if def := s.Lookup(name); def != nil {
		return def.Name
	}
	return name
}
