package ifc

import (
	"testing"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/step"
)

func TestSetAttrString(t *testing.T) {
	m := loadTestModel(t)
	wall, _ := m.Get(5)

	if err := wall.SetAttr("Name", "North Wall"); err != nil {
		t.Fatalf("SetAttr: %v", err)
	}
	if wall.Name() != "North Wall" {
		t.Errorf("Name after edit = %q", wall.Name())
	}
	if !m.Modified() {
		t.Error("model should be marked modified")
	}
}

func TestSetAttrNumbers(t *testing.T) {
	m := loadTestModel(t)
	storey, _ := m.Get(4)

	if err := storey.SetAttr("Elevation", "3.2"); err != nil {
		t.Fatalf("SetAttr real: %v", err)
	}
	v, _ := storey.Attr("Elevation")
	if f, _ := v.AsFloat(); f != 3.2 {
		t.Errorf("Elevation = %v", f)
	}

	if err := storey.SetAttr("Elevation", "not a number"); err == nil {
		t.Fatal("expected an error for non-numeric input")
	} else if !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("error code = %s", errors.GetCode(err))
	}
}

func TestSetAttrEnum(t *testing.T) {
	m := loadTestModel(t)
	wall, _ := m.Get(5)

	// Lowercase and dotted forms normalize to the canonical spelling.
	for _, input := range []string{"partitioning", ".PARTITIONING.", "Partitioning"} {
		if err := wall.SetAttr("PredefinedType", input); err != nil {
			t.Fatalf("SetAttr(%q): %v", input, err)
		}
		v, _ := wall.Attr("PredefinedType")
		if v.Kind != step.Enum || v.Str != "PARTITIONING" {
			t.Errorf("after %q: kind=%v value=%q", input, v.Kind, v.Str)
		}
	}

	err := wall.SetAttr("PredefinedType", "WOODEN")
	if err == nil {
		t.Fatal("expected rejection of a value outside the enum domain")
	}
	if !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("error code = %s", errors.GetCode(err))
	}
}

func TestSetAttrBool(t *testing.T) {
	m := loadTestModel(t)
	typ, _ := m.Get(26)

	// The door type record stops short of ParameterTakesPrecedence;
	// editing must grow the record.
	if err := typ.SetAttr("ParameterTakesPrecedence", "yes"); err != nil {
		t.Fatalf("SetAttr bool: %v", err)
	}
	v, _ := typ.Attr("ParameterTakesPrecedence")
	if b, ok := v.AsBool(); !ok || !b {
		t.Errorf("ParameterTakesPrecedence = %v", v)
	}

	if err := typ.SetAttr("ParameterTakesPrecedence", "maybe"); err == nil {
		t.Fatal("expected rejection of unrecognized boolean text")
	}
}

func TestSetAttrClear(t *testing.T) {
	m := loadTestModel(t)
	wall, _ := m.Get(5)

	if err := wall.SetAttr("Tag", "$"); err != nil {
		t.Fatalf("clear optional: %v", err)
	}
	v, _ := wall.Attr("Tag")
	if !v.IsNull() {
		t.Errorf("Tag after clear = %v", v)
	}

	err := wall.SetAttr("GlobalId", "$")
	if err == nil {
		t.Fatal("required attribute must not be cleared")
	}
	if !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("error code = %s", errors.GetCode(err))
	}
}

func TestSetAttrGlobalID(t *testing.T) {
	m := loadTestModel(t)
	wall, _ := m.Get(5)

	if err := wall.SetAttr("GlobalId", "2fffffffffffffffffffff"); err != nil {
		t.Fatalf("valid GlobalId rejected: %v", err)
	}
	if err := wall.SetAttr("GlobalId", "too-short"); err == nil {
		t.Fatal("malformed GlobalId accepted")
	}
}

func TestSetAttrUnknownAttr(t *testing.T) {
	m := loadTestModel(t)
	wall, _ := m.Get(5)

	err := wall.SetAttr("Wingspan", "12")
	if err == nil {
		t.Fatal("expected an error for an unknown attribute")
	}
	if !errors.Is(err, errors.ErrCodeInvalidAttr) {
		t.Errorf("error code = %s", errors.GetCode(err))
	}
}

func TestSetAttrRejectsReferences(t *testing.T) {
	m := loadTestModel(t)
	wall, _ := m.Get(5)

	err := wall.SetAttr("ObjectPlacement", "#99")
	if err == nil {
		t.Fatal("reference attributes must not be editable from text")
	}
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error code = %s", errors.GetCode(err))
	}
}

func TestSetAttrSelectKeepsWrapper(t *testing.T) {
	m := loadTestModel(t)
	prop, _ := m.Get(15) // FireRating, IFCLABEL('F30')

	if err := prop.SetAttr("NominalValue", "F60"); err != nil {
		t.Fatalf("SetAttr select: %v", err)
	}
	v, _ := prop.Attr("NominalValue")
	if v.Kind != step.Typed || v.Str != "IFCLABEL" {
		t.Fatalf("wrapper lost: %v", v)
	}
	if s, _ := v.AsString(); s != "F60" {
		t.Errorf("inner value = %q", s)
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"yes", "Y", "true", "T", ".t.", "1"}
	for _, s := range truthy {
		if v, ok := ParseBool(s); !ok || !v {
			t.Errorf("ParseBool(%q) = %v, %v", s, v, ok)
		}
	}
	falsy := []string{"no", "N", "false", "F", ".f.", "0"}
	for _, s := range falsy {
		if v, ok := ParseBool(s); !ok || v {
			t.Errorf("ParseBool(%q) = %v, %v", s, v, ok)
		}
	}
	if _, ok := ParseBool("maybe"); ok {
		t.Error("ParseBool should reject unrecognized text")
	}
}
