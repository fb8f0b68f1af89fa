package step

import "time"

// Header holds the three mandatory HEADER section records. Records beyond
// FILE_DESCRIPTION, FILE_NAME and FILE_SCHEMA are preserved verbatim in
// Extras and re-emitted on encode.
type Header struct {
	// FILE_DESCRIPTION
	Description         []string
	ImplementationLevel string

	// FILE_NAME
	Name              string
	Timestamp         string
	Authors           []string
	Organizations     []string
	Preprocessor      string
	OriginatingSystem string
	Authorization     string

	// FILE_SCHEMA
	Schemas []string

	Extras []HeaderRecord
}

// HeaderRecord is a raw header entry kept for round-trip fidelity.
type HeaderRecord struct {
	Name string
	Args []Value
}

// Schema returns the first declared schema identifier, e.g. "IFC4".
func (h *Header) Schema() string {
	if len(h.Schemas) == 0 {
		return ""
	}
	return h.Schemas[0]
}

func defaultHeader() Header {
	return Header{
		Description:         []string{""},
		ImplementationLevel: "2;1",
		Timestamp:           time.Now().Format("2006-01-02T15:04:05"),
		Authors:             []string{""},
		Organizations:       []string{""},
		Preprocessor:        "ifcwalk",
		OriginatingSystem:   "ifcwalk",
		Schemas:             []string{"IFC4"},
	}
}

// apply fills header fields from a parsed header record.
func (h *Header) apply(name string, args []Value) {
	switch name {
	case "FILE_DESCRIPTION":
		h.Description = stringList(valueAt(args, 0))
		h.ImplementationLevel = stringAt(args, 1)
	case "FILE_NAME":
		h.Name = stringAt(args, 0)
		h.Timestamp = stringAt(args, 1)
		h.Authors = stringList(valueAt(args, 2))
		h.Organizations = stringList(valueAt(args, 3))
		h.Preprocessor = stringAt(args, 4)
		h.OriginatingSystem = stringAt(args, 5)
		h.Authorization = stringAt(args, 6)
	case "FILE_SCHEMA":
		h.Schemas = stringList(valueAt(args, 0))
	default:
		h.Extras = append(h.Extras, HeaderRecord{Name: name, Args: args})
	}
}

// records renders the header back into its record form for encoding.
func (h *Header) records() []HeaderRecord {
	recs := []HeaderRecord{
		{Name: "FILE_DESCRIPTION", Args: []Value{
			stringListValue(h.Description),
			NewString(h.ImplementationLevel),
		}},
		{Name: "FILE_NAME", Args: []Value{
			NewString(h.Name),
			NewString(h.Timestamp),
			stringListValue(h.Authors),
			stringListValue(h.Organizations),
			NewString(h.Preprocessor),
			NewString(h.OriginatingSystem),
			NewString(h.Authorization),
		}},
		{Name: "FILE_SCHEMA", Args: []Value{
			stringListValue(h.Schemas),
		}},
	}
	return append(recs, h.Extras...)
}

func valueAt(args []Value, i int) Value {
	if i < 0 || i >= len(args) {
		return Value{}
	}
	return args[i]
}

func stringAt(args []Value, i int) string {
	s, _ := valueAt(args, i).AsString()
	return s
}

func stringList(v Value) []string {
	if v.Kind != List {
		return nil
	}
	out := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		s, _ := item.AsString()
		out = append(out, s)
	}
	return out
}

func stringListValue(items []string) Value {
	values := make([]Value, len(items))
	for i, s := range items {
		values[i] = NewString(s)
	}
	return NewList(values...)
}
