package screens

// Selector is a cursor over an enum whose valid values lie strictly between
// two sentinels. Moving past either end snaps back to the nearest valid
// value; it never wraps around.
type Selector[T ~int] struct {
	value T
	first T // sentinel below the first valid value
	last  T // sentinel above the last valid value
}

// NewSelector creates a selector positioned on the first valid value.
func NewSelector[T ~int](first, last T) Selector[T] {
	return Selector[T]{value: first + 1, first: first, last: last}
}

// Value returns the current selection.
func (s *Selector[T]) Value() T {
	return s.value
}

// Reset moves the cursor to v.
func (s *Selector[T]) Reset(v T) {
	s.value = v
	s.clamp()
}

// Next moves the cursor down one entry.
func (s *Selector[T]) Next() {
	s.value++
	s.clamp()
}

// Prev moves the cursor up one entry.
func (s *Selector[T]) Prev() {
	s.value--
	s.clamp()
}

func (s *Selector[T]) clamp() {
	if s.value >= s.last {
		s.value = s.last - 1
	}
	if s.value <= s.first {
		s.value = s.first + 1
	}
}
