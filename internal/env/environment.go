// Package env implements the interpreter's variable environment: an
// ordered mapping from name to Value with release-on-overwrite
// semantics for sequence-valued slots.
package env

import "strand/internal/value"

// maxNameLen is the longest identifier the grammar admits (spec.md §4.4).
const maxNameLen = 20

// slot is one (name, value) record.
type slot struct {
	name  string
	value value.Value
}

// Environment is the process-lifetime mapping from identifier to
// current value. Names are inserted in first-use order and at most one
// slot exists per name; an unknown name reads as Int(0) rather than
// erroring (the language's "uninitialized variable" semantics).
type Environment struct {
	slots []slot
}

// New returns an empty Environment.
func New() *Environment {
	return &Environment{}
}

// Get looks up name by linear scan. A miss returns Int(0): this is not
// an error, it is the language's uninitialized-variable default.
func (e *Environment) Get(name string) value.Value {
	for i := range e.slots {
		if e.slots[i].name == name {
			return e.slots[i].value
		}
	}
	return value.Int64(0)
}

// Set binds name to v. If a slot for name already exists and currently
// holds a Seq, that handle is released before being overwritten. If v
// itself is a Seq, the caller is responsible for having already Grab-ed
// it — Set only ever takes ownership of a reference it's handed, it
// never grabs on the caller's behalf.
func (e *Environment) Set(name string, v value.Value) {
	for i := range e.slots {
		if e.slots[i].name == name {
			if e.slots[i].value.IsSeq() {
				value.Release(e.slots[i].value.Seq)
			}
			e.slots[i].value = v
			return
		}
	}
	e.slots = append(e.slots, slot{name: name, value: v})
}

// SetIndex overwrites the element at idx within the sequence bound to
// name, in place. The caller must have already verified name is bound
// to a Seq and idx is in bounds; SetIndex itself does no checking,
// since that diagnostic work (Type mismatch / Index out of bounds)
// belongs to the evaluator, not the environment.
func (e *Environment) SetIndex(name string, idx int, v int64) {
	for i := range e.slots {
		if e.slots[i].name == name {
			e.slots[i].value.Seq.Set(idx, v)
			return
		}
	}
}

// Destroy releases every Seq-valued slot exactly once and discards the
// slot array. Called once, when the driver's statement loop ends.
func (e *Environment) Destroy() {
	for i := range e.slots {
		if e.slots[i].value.IsSeq() {
			value.Release(e.slots[i].value.Seq)
		}
	}
	e.slots = nil
}

// MaxNameLen reports the longest identifier the grammar admits, so the
// parser can enforce it when it reads an identifier.
func MaxNameLen() int { return maxNameLen }
