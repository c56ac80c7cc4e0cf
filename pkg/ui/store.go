package ui

import "fmt"

// Store is the owning arena for all widgets of a UI instance. Handles are
// generational: removing a widget bumps its slot generation so retained
// handles can never alias a later widget.
type Store[Message any] struct {
	slots []slot[Message]
	free  []uint32
	count int
}

type slot[Message any] struct {
	widget     *Widget[Message]
	generation uint32
}

// Insert adds a widget to the arena and returns its handle. The widget's
// Handle field is set to the returned handle.
func (s *Store[Message]) Insert(w *Widget[Message]) Handle {
	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.slots))
		s.slots = append(s.slots, slot[Message]{})
	}

	sl := &s.slots[index]
	sl.generation++
	sl.widget = w

	h := Handle{index: index, generation: sl.generation}
	w.Handle = h
	s.count++
	return h
}

// Get resolves a handle to its widget. A nil or stale handle is an
// invariant violation and panics: the store never hands out a handle that
// can silently dangle.
func (s *Store[Message]) Get(h Handle) *Widget[Message] {
	if w, ok := s.Lookup(h); ok {
		return w
	}
	panic(fmt.Sprintf("ui: lookup of dead widget %v", h))
}

// Lookup resolves a handle without panicking on a dead one.
func (s *Store[Message]) Lookup(h Handle) (*Widget[Message], bool) {
	if h.IsNil() || int(h.index) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[h.index]
	if sl.widget == nil || sl.generation != h.generation {
		return nil, false
	}
	return sl.widget, true
}

// Remove deletes the widget behind the handle. Removing an already-dead
// handle panics like Get.
func (s *Store[Message]) Remove(h Handle) {
	w := s.Get(h)
	s.slots[h.index].widget = nil
	s.free = append(s.free, h.index)
	s.count--
	w.Handle = Handle{}
}

// Len returns the number of live widgets.
func (s *Store[Message]) Len() int {
	return s.count
}

// Clear removes every widget and invalidates all outstanding handles.
func (s *Store[Message]) Clear() {
	for i := range s.slots {
		if s.slots[i].widget != nil {
			s.slots[i].widget = nil
			s.slots[i].generation++
			s.free = append(s.free, uint32(i))
		}
	}
	s.count = 0
}
