package step

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the concrete type held by a Value.
type Kind int

// Value kinds, covering every token shape ISO 10303-21 allows in an
// argument position.
const (
	Omitted Kind = iota // $ (attribute not provided)
	Derived             // * (attribute derived in a subtype)
	Int                 // 42
	Real                // 42.5, 1.E-5
	String              // 'text'
	Enum                // .ELEMENT.  (booleans arrive as .T. / .F. / .U.)
	Ref                 // #123
	List                // (a, b, c)
	Typed               // IFCLABEL('text')
	Binary              // "0FF"
)

// Value is one argument of a STEP instance record.
//
// Exactly one payload field is meaningful, selected by Kind: IntVal for
// Int, RealVal for Real, Str for String/Enum/Binary and the wrapped type
// name for Typed, RefID for Ref, Items for List and the single wrapped
// value for Typed.
type Value struct {
	Kind    Kind
	IntVal  int64
	RealVal float64
	Str     string
	RefID   int64
	Items   []Value
}

// Constructors for each kind. The zero Value is Omitted.

func NewInt(v int64) Value        { return Value{Kind: Int, IntVal: v} }
func NewReal(v float64) Value     { return Value{Kind: Real, RealVal: v} }
func NewString(s string) Value    { return Value{Kind: String, Str: s} }
func NewEnum(name string) Value   { return Value{Kind: Enum, Str: strings.ToUpper(name)} }
func NewRef(id int64) Value       { return Value{Kind: Ref, RefID: id} }
func NewList(items ...Value) Value {
	return Value{Kind: List, Items: items}
}
func NewTyped(typeName string, inner Value) Value {
	return Value{Kind: Typed, Str: strings.ToUpper(typeName), Items: []Value{inner}}
}
func NewBool(b bool) Value {
	if b {
		return NewEnum("T")
	}
	return NewEnum("F")
}

// IsNull reports whether the value is omitted ($) or derived (*).
func (v Value) IsNull() bool {
	return v.Kind == Omitted || v.Kind == Derived
}

// AsString returns the string payload of a String value, unwrapping one
// level of typed value (IFCLABEL('x') yields "x").
func (v Value) AsString() (string, bool) {
	switch v.Kind {
	case String:
		return v.Str, true
	case Typed:
		return v.Unwrap().AsString()
	}
	return "", false
}

// AsFloat returns a numeric payload as float64. Int values convert.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case Real:
		return v.RealVal, true
	case Int:
		return float64(v.IntVal), true
	case Typed:
		return v.Unwrap().AsFloat()
	}
	return 0, false
}

// AsInt returns an integer payload.
func (v Value) AsInt() (int64, bool) {
	switch v.Kind {
	case Int:
		return v.IntVal, true
	case Typed:
		return v.Unwrap().AsInt()
	}
	return 0, false
}

// AsBool interprets the boolean enumerations .T. and .F.; .U. (unknown)
// and everything else report not-ok.
func (v Value) AsBool() (bool, bool) {
	switch v.Kind {
	case Enum:
		switch v.Str {
		case "T", "TRUE":
			return true, true
		case "F", "FALSE":
			return false, true
		}
	case Typed:
		return v.Unwrap().AsBool()
	}
	return false, false
}

// Unwrap returns the inner value of a Typed value, or the value itself.
// Typed values carrying more than one argument unwrap to their first.
func (v Value) Unwrap() Value {
	if v.Kind == Typed && len(v.Items) > 0 {
		return v.Items[0]
	}
	return v
}

// String renders the value in canonical STEP text form. This is the form
// the encoder writes and is stable across round trips.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.Kind {
	case Omitted:
		b.WriteByte('$')
	case Derived:
		b.WriteByte('*')
	case Int:
		b.WriteString(strconv.FormatInt(v.IntVal, 10))
	case Real:
		b.WriteString(formatReal(v.RealVal))
	case String:
		b.WriteByte('\'')
		b.WriteString(escapeString(v.Str))
		b.WriteByte('\'')
	case Enum:
		b.WriteByte('.')
		b.WriteString(v.Str)
		b.WriteByte('.')
	case Ref:
		b.WriteByte('#')
		b.WriteString(strconv.FormatInt(v.RefID, 10))
	case List:
		b.WriteByte('(')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			item.write(b)
		}
		b.WriteByte(')')
	case Typed:
		b.WriteString(v.Str)
		b.WriteByte('(')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			item.write(b)
		}
		b.WriteByte(')')
	case Binary:
		b.WriteByte('"')
		b.WriteString(v.Str)
		b.WriteByte('"')
	default:
		fmt.Fprintf(b, "<kind %d>", v.Kind)
	}
}

// formatReal renders a float in STEP real syntax, which requires a decimal
// point even for integral values and exponent forms: 1 becomes "1.",
// 1e-05 becomes "1.E-05".
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'G', -1, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}
	if i := strings.IndexByte(s, 'E'); i >= 0 {
		return s[:i] + "." + s[i:]
	}
	return s + "."
}

// escapeString doubles embedded apostrophes per ISO 10303-21. Backslash
// escape sequences (\X2\ and friends) pass through untouched in both
// directions, so pre-encoded text survives round trips.
func escapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func unescapeString(s string) string {
	return strings.ReplaceAll(s, "''", "'")
}
