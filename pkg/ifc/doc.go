// Package ifc layers IFC semantics over STEP instance data: typed entity
// access, the inverse relation index, property and quantity sets, and
// validated attribute editing.
//
// Entity and attribute knowledge comes from a curated table of IFC4
// definitions covering the spatial structure, the common building
// elements, the relationship records, property/quantity sets and type
// objects. The tables are plain data, not a parsed EXPRESS schema.
// Instances of entity types outside the tables still load and traverse;
// they fall back to positional attribute display.
package ifc
