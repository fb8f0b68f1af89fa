package ifc

import (
	"strconv"
	"strings"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/step"
)

// ParseBool interprets user-facing boolean text. Accepted true forms
// are yes, y, true, t, .t. and 1; false forms are their counterparts.
// The second result is false for unrecognized text.
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "t", ".t.", "1":
		return true, true
	case "no", "n", "false", "f", ".f.", "0":
		return false, true
	}
	return false, false
}

// SetAttr parses raw according to the schema definition of the named
// attribute and stores the result. The literal "$" clears an optional
// attribute. Reference and list attributes cannot be edited from text.
func (e Entity) SetAttr(name, raw string) error {
	if e.inst == nil {
		return errors.New(errors.ErrCodeInvalidInput, "cannot edit an invalid entity")
	}
	if !e.model.schema.Known(e.inst.Type) {
		return errors.New(errors.ErrCodeInvalidClass, "no schema definition for %s", e.inst.Type)
	}
	i, def, ok := e.model.schema.AttrIndex(e.inst.Type, name)
	if !ok {
		return errors.New(errors.ErrCodeInvalidAttr, "%s has no attribute %q", e.Class(), name)
	}

	if strings.TrimSpace(raw) == "$" {
		if !def.Optional {
			return errors.New(errors.ErrCodeInvalidValue, "attribute %s is required and cannot be cleared", def.Name)
		}
		e.setArg(i, step.Value{})
		return nil
	}

	v, err := parseAttrValue(def, e.inst.Arg(i), raw)
	if err != nil {
		return err
	}
	e.setArg(i, v)
	return nil
}

func parseAttrValue(def AttrDef, current step.Value, raw string) (step.Value, error) {
	switch def.Type {
	case AttrString:
		if def.Name == "GlobalId" {
			if err := errors.ValidateGlobalID(raw); err != nil {
				return step.Value{}, err
			}
		}
		return step.NewString(raw), nil

	case AttrInt:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return step.Value{}, errors.New(errors.ErrCodeInvalidValue, "attribute %s expects an integer, got %q", def.Name, raw)
		}
		return step.NewInt(n), nil

	case AttrReal:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return step.Value{}, errors.New(errors.ErrCodeInvalidValue, "attribute %s expects a number, got %q", def.Name, raw)
		}
		return step.NewReal(f), nil

	case AttrBool:
		b, ok := ParseBool(raw)
		if !ok {
			return step.Value{}, errors.New(errors.ErrCodeInvalidValue, "attribute %s expects a boolean, got %q", def.Name, raw)
		}
		return step.NewBool(b), nil

	case AttrLogical:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "u", "unknown", ".u.":
			return step.NewEnum("U"), nil
		}
		b, ok := ParseBool(raw)
		if !ok {
			return step.Value{}, errors.New(errors.ErrCodeInvalidValue, "attribute %s expects true, false or unknown, got %q", def.Name, raw)
		}
		return step.NewBool(b), nil

	case AttrEnum:
		name := strings.ToUpper(strings.Trim(strings.TrimSpace(raw), "."))
		for _, allowed := range def.Enum {
			if name == allowed {
				return step.NewEnum(name), nil
			}
		}
		return step.Value{}, errors.New(errors.ErrCodeInvalidValue,
			"%q is not a valid %s; allowed: %s", raw, def.Name, strings.Join(def.Enum, ", "))

	case AttrSelect:
		return parseSelectValue(def, current, raw)

	default:
		return step.Value{}, errors.New(errors.ErrCodeUnsupported,
			"attribute %s is a %s and cannot be edited from text", def.Name, def.Type)
	}
}

// parseSelectValue edits a select-typed attribute such as a property
// NominalValue. The replacement keeps the wrapped type of the current
// value so the file stays consistent with its declared measure types.
func parseSelectValue(def AttrDef, current step.Value, raw string) (step.Value, error) {
	inner := current.Unwrap()
	parsed, err := parseLiteral(def, inner.Kind, raw)
	if err != nil {
		return step.Value{}, err
	}
	if current.Kind == step.Typed {
		return step.NewTyped(current.Str, parsed), nil
	}
	return parsed, nil
}

func parseLiteral(def AttrDef, kind step.Kind, raw string) (step.Value, error) {
	switch kind {
	case step.String:
		return step.NewString(raw), nil
	case step.Int:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return step.Value{}, errors.New(errors.ErrCodeInvalidValue, "attribute %s expects an integer, got %q", def.Name, raw)
		}
		return step.NewInt(n), nil
	case step.Real:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return step.Value{}, errors.New(errors.ErrCodeInvalidValue, "attribute %s expects a number, got %q", def.Name, raw)
		}
		return step.NewReal(f), nil
	case step.Enum:
		if b, ok := ParseBool(raw); ok {
			return step.NewBool(b), nil
		}
		return step.NewEnum(strings.Trim(strings.TrimSpace(raw), ".")), nil
	default:
		return step.Value{}, errors.New(errors.ErrCodeUnsupported,
			"attribute %s holds no scalar value to replace", def.Name)
	}
}

// setArg stores a value at argument position i, growing the record when
// the file declared fewer arguments than the schema lists.
func (e Entity) setArg(i int, v step.Value) {
	for len(e.inst.Args) <= i {
		e.inst.Args = append(e.inst.Args, step.Value{})
	}
	e.inst.Args[i] = v
	e.model.modified = true
}
