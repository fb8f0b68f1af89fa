package step

import (
	"errors"
	"fmt"
)

// Sentinel errors for file construction and reference checking.
var (
	// ErrDuplicateID is returned when two instances declare the same id.
	ErrDuplicateID = errors.New("duplicate instance id")

	// ErrDanglingRef is returned when an argument references an id that
	// no instance in the file declares.
	ErrDanglingRef = errors.New("reference to missing instance")
)

// Instance is one entity record from the DATA section: #ID=TYPE(Args).
type Instance struct {
	ID   int64
	Type string // upper-case entity keyword as declared
	Args []Value
}

// Ref returns the instance's id as a reference value.
func (inst *Instance) Ref() Value {
	return NewRef(inst.ID)
}

// Arg returns the i-th argument, or an Omitted value when the record has
// fewer arguments than the schema expects.
func (inst *Instance) Arg(i int) Value {
	if i < 0 || i >= len(inst.Args) {
		return Value{}
	}
	return inst.Args[i]
}

// File is a decoded STEP physical file: the header plus every instance in
// declared order.
type File struct {
	Header Header

	instances []*Instance
	byID      map[int64]*Instance
	maxID     int64
}

// NewFile creates an empty file with a default header.
func NewFile() *File {
	return &File{
		Header: defaultHeader(),
		byID:   make(map[int64]*Instance),
	}
}

// Append adds an instance, preserving insertion order.
func (f *File) Append(inst *Instance) error {
	if inst.ID <= 0 {
		return fmt.Errorf("instance id must be positive, got #%d", inst.ID)
	}
	if _, exists := f.byID[inst.ID]; exists {
		return fmt.Errorf("%w: #%d", ErrDuplicateID, inst.ID)
	}
	f.instances = append(f.instances, inst)
	f.byID[inst.ID] = inst
	if inst.ID > f.maxID {
		f.maxID = inst.ID
	}
	return nil
}

// Get returns the instance with the given id, or nil.
func (f *File) Get(id int64) *Instance {
	return f.byID[id]
}

// Instances returns all instances in declared file order. The slice is
// shared; callers must not reorder it.
func (f *File) Instances() []*Instance {
	return f.instances
}

// Len returns the number of instances.
func (f *File) Len() int {
	return len(f.instances)
}

// NextID returns an id one past the highest declared id.
func (f *File) NextID() int64 {
	return f.maxID + 1
}

// CheckRefs verifies that every reference argument resolves to a declared
// instance. Forward references are legal; missing targets are not.
func (f *File) CheckRefs() error {
	for _, inst := range f.instances {
		for _, arg := range inst.Args {
			if err := f.checkRef(inst.ID, arg); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *File) checkRef(from int64, v Value) error {
	switch v.Kind {
	case Ref:
		if f.byID[v.RefID] == nil {
			return fmt.Errorf("%w: #%d referenced from #%d", ErrDanglingRef, v.RefID, from)
		}
	case List, Typed:
		for _, item := range v.Items {
			if err := f.checkRef(from, item); err != nil {
				return err
			}
		}
	}
	return nil
}
