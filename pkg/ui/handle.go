package ui

import "fmt"

// Handle is an opaque, stable reference to a widget in the Store. Handles
// compare by identity. The zero Handle is the "no widget" sentinel.
type Handle struct {
	index      uint32
	generation uint32
}

// IsNil reports whether the handle is the "no widget" sentinel.
func (h Handle) IsNil() bool {
	return h.generation == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "Handle(nil)"
	}
	return fmt.Sprintf("Handle(%d.%d)", h.index, h.generation)
}

// Identity is a human-readable widget name plus an application-chosen
// numeric id, used for name-based lookup. It is independent of Handle and
// not required to be unique.
type Identity struct {
	Name string
	ID   uint64
}

// NewIdentity constructs an Identity.
func NewIdentity(name string, id uint64) Identity {
	return Identity{Name: name, ID: id}
}
