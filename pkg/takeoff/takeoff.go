// Package takeoff builds quantity-takeoff tables from a model: one row per
// instance of a root class (subtypes included), one column per requested
// attribute, property or quantity name. Cells a row cannot answer stay empty.
package takeoff

import (
	"strconv"
	"strings"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
	"github.com/ifcwalk/ifcwalk/pkg/step"
)

// DefaultClass is the root class used when none is given.
const DefaultClass = "IfcElement"

// DefaultColumns returns the standard column list: identity, classification
// and the common Pset/Qto names found on building elements.
func DefaultColumns() []string {
	return []string{
		"id", "GlobalId", "class", "PredefinedType", "ObjectType", "type",
		"Name", "LoadBearing", "IsExternal", "Reference",
		"Length", "Height", "Width", "Perimeter", "Area", "Volume", "Depth",
		"NetSideArea", "GrossArea", "NetArea", "GrossVolume", "NetVolume",
	}
}

// Options configures a takeoff run.
type Options struct {
	// Class is the root entity class; rows are all its instances including
	// subtype instances, in declared file order.
	Class string

	// Columns lists the table columns. Besides attribute, property and
	// quantity names the pseudo-columns "id", "class" and "type" are
	// recognized.
	Columns []string
}

// ValidateAndSetDefaults fills zero fields with defaults and validates the
// class name. Safe to call more than once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Class == "" {
		o.Class = DefaultClass
	}
	if err := errors.ValidateClassName(o.Class); err != nil {
		return err
	}
	if len(o.Columns) == 0 {
		o.Columns = DefaultColumns()
	}
	return nil
}

// Table is the result of a takeoff run.
type Table struct {
	Class   string     `json:"class"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Run builds the takeoff table for m.
func Run(m *ifc.Model, opts Options) (*Table, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	t := &Table{Class: opts.Class, Columns: opts.Columns}
	for _, e := range m.ByType(opts.Class) {
		row := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			row[i] = cell(e, col)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// cell resolves a column for one entity. Pseudo-columns win, then direct
// attributes, then property values, then quantity values.
func cell(e ifc.Entity, col string) string {
	switch {
	case strings.EqualFold(col, "id"):
		return "#" + strconv.FormatInt(e.ID(), 10)
	case strings.EqualFold(col, "class"):
		return e.Class()
	case strings.EqualFold(col, "type"):
		if typ, ok := e.TypeObject(); ok {
			return typ.Name()
		}
		return ""
	}
	if v, ok := e.Attr(col); ok {
		return cellText(v)
	}
	if v, ok := e.PropertyValue(col); ok {
		return cellText(v)
	}
	if v, ok := e.QuantityValue(col); ok {
		return formatReal(v)
	}
	return ""
}

func cellText(v step.Value) string {
	switch v.Kind {
	case step.Omitted, step.Derived:
		return ""
	case step.String, step.Enum:
		return v.Str
	case step.Int:
		return strconv.FormatInt(v.IntVal, 10)
	case step.Real:
		return formatReal(v.RealVal)
	case step.Ref:
		return "#" + strconv.FormatInt(v.RefID, 10)
	case step.Typed:
		return cellText(v.Unwrap())
	default:
		return v.String()
	}
}

func formatReal(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
