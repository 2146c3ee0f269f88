package frontier

// Stack is a LIFO frontier backed by a slice.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push appends item; the key is ignored.
func (s *Stack[T]) Push(item T, _ float64) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() T {
	n := len(s.items)
	if n == 0 {
		panic(ErrEmptyFrontier)
	}
	item := s.items[n-1]
	var zero T
	s.items[n-1] = zero // release the reference for the GC
	s.items = s.items[:n-1]

	return item
}

// Len returns the number of pending items.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
