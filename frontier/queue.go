package frontier

// compactThreshold is the minimum number of consumed slots before the
// queue considers shifting live items back to the front of its buffer.
const compactThreshold = 64

// Queue is a FIFO frontier. Items are consumed by advancing a head index;
// the buffer is compacted once more than half of it is dead space.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends item at the tail; the key is ignored.
func (q *Queue[T]) Push(item T, _ float64) {
	q.items = append(q.items, item)
}

// Pop removes and returns the item at the head.
func (q *Queue[T]) Pop() T {
	if q.head >= len(q.items) {
		panic(ErrEmptyFrontier)
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		// drained: reuse the buffer from the start
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item
}

// Len returns the number of pending items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }
