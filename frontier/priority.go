package frontier

import "container/heap"

// PriorityQueue is a min-priority frontier. Entries with equal keys pop in
// the order they were pushed, which keeps traversal deterministic.
//
// It uses the same lazy approach as a lazy-decrease-key Dijkstra: there is no
// update operation, callers push again and discard stale entries on Pop.
type PriorityQueue[T any] struct {
	h   entryHeap[T]
	seq uint64 // insertion counter used to break key ties
}

// NewPriorityQueue returns an empty PriorityQueue.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

// Push adds item with the given key.
func (pq *PriorityQueue[T]) Push(item T, key float64) {
	heap.Push(&pq.h, entry[T]{item: item, key: key, seq: pq.seq})
	pq.seq++
}

// Pop removes and returns the item with the smallest key.
func (pq *PriorityQueue[T]) Pop() T {
	if len(pq.h) == 0 {
		panic(ErrEmptyFrontier)
	}

	return heap.Pop(&pq.h).(entry[T]).item
}

// PeekKey returns the smallest key without removing its entry.
// ok is false when the queue is empty.
func (pq *PriorityQueue[T]) PeekKey() (key float64, ok bool) {
	if len(pq.h) == 0 {
		return 0, false
	}

	return pq.h[0].key, true
}

// Len returns the number of pending items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h) }

// IsEmpty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.h) == 0 }

// entry is one heap slot: the payload, its ordering key and insertion sequence.
type entry[T any] struct {
	item T
	key  float64
	seq  uint64
}

// entryHeap implements heap.Interface ordered by (key, seq) ascending.
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return e
}
