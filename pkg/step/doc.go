// Package step reads and writes STEP physical files (ISO 10303-21), the
// exchange format IFC building models are shipped in.
//
// The package is schema-independent: any well-formed instance record is
// parsed into an [Instance] with positional [Value] arguments, regardless
// of entity type. Schema knowledge (attribute names, types, inheritance)
// lives one layer up in package ifc.
//
// # Reading
//
//	f, err := step.DecodeFile("model.ifc")
//	if err != nil {
//	    return err
//	}
//	for _, inst := range f.Instances() {
//	    fmt.Println(inst.ID, inst.Type)
//	}
//
// Instances are kept in declared file order. Lookup by numeric id is O(1).
//
// # Writing
//
// [Encode] serializes a file back to STEP text, one instance per line, in
// declared order. Values are written in canonical form (reals always carry
// a decimal point, strings re-escaped), so a decode/encode round trip is
// stable: encoding a second time reproduces the first output byte for byte.
package step
