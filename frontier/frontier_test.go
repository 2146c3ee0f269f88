package frontier_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/frontier"
)

// drain pops every item and returns them in pop order.
func drain[T any](f frontier.Frontier[T]) []T {
	var out []T
	for !f.IsEmpty() {
		out = append(out, f.Pop())
	}

	return out
}

func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack[string]()
	assert.True(t, s.IsEmpty())
	for _, v := range []string{"a", "b", "c"} {
		s.Push(v, 0)
	}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"c", "b", "a"}, drain[string](s))
}

func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue[int]()
	for i := 0; i < 5; i++ {
		q.Push(i, float64(10-i)) // keys must not matter
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, drain[int](q))
}

// TestQueue_InterleavedCompaction pushes and pops enough to trigger buffer
// compaction and checks that order survives it.
func TestQueue_InterleavedCompaction(t *testing.T) {
	q := frontier.NewQueue[int]()
	next, want := 0, 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 7; i++ {
			q.Push(next, 0)
			next++
		}
		for i := 0; i < 5; i++ {
			require.Equal(t, want, q.Pop())
			want++
		}
	}
	for !q.IsEmpty() {
		require.Equal(t, want, q.Pop())
		want++
	}
	assert.Equal(t, next, want)
}

func TestPriorityQueue_MinKey(t *testing.T) {
	pq := frontier.NewPriorityQueue[string]()
	pq.Push("five", 5)
	pq.Push("one", 1)
	pq.Push("three", 3)
	pq.Push("half", 0.5)

	key, ok := pq.PeekKey()
	require.True(t, ok)
	assert.Equal(t, 0.5, key)
	assert.Equal(t, []string{"half", "one", "three", "five"}, drain[string](pq))

	_, ok = pq.PeekKey()
	assert.False(t, ok)
}

// TestPriorityQueue_StableTies checks that equal keys pop in push order.
func TestPriorityQueue_StableTies(t *testing.T) {
	pq := frontier.NewPriorityQueue[int]()
	for i := 0; i < 20; i++ {
		pq.Push(i, float64(i%2)) // evens key 0, odds key 1
	}
	got := drain[int](pq)
	assert.Equal(t, []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, got)
}

func TestPop_EmptyPanics(t *testing.T) {
	for _, d := range []frontier.Discipline{frontier.LIFO, frontier.FIFO, frontier.Priority} {
		t.Run(d.String(), func(t *testing.T) {
			f, err := frontier.New[int](d)
			require.NoError(t, err)
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, frontier.ErrEmptyFrontier))
			}()
			f.Pop()
		})
	}
}

func TestNew_Discipline(t *testing.T) {
	f, err := frontier.New[int](frontier.LIFO)
	require.NoError(t, err)
	assert.IsType(t, &frontier.Stack[int]{}, f)

	f, err = frontier.New[int](frontier.FIFO)
	require.NoError(t, err)
	assert.IsType(t, &frontier.Queue[int]{}, f)

	f, err = frontier.New[int](frontier.Priority)
	require.NoError(t, err)
	assert.IsType(t, &frontier.PriorityQueue[int]{}, f)

	_, err = frontier.New[int](frontier.Discipline(42))
	assert.ErrorIs(t, err, frontier.ErrUnknownDiscipline)
}

func TestParseDiscipline(t *testing.T) {
	cases := []struct {
		in   string
		want frontier.Discipline
		err  error
	}{
		{"lifo", frontier.LIFO, nil},
		{"Stack", frontier.LIFO, nil},
		{"queue", frontier.FIFO, nil},
		{" FIFO ", frontier.FIFO, nil},
		{"pq", frontier.Priority, nil},
		{"random", 0, frontier.ErrUnknownDiscipline},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := frontier.ParseDiscipline(tc.in)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.Keyed(), tc.want == frontier.Priority)
		})
	}
}
