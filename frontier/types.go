package frontier

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for frontier construction and use.
var (
	// ErrEmptyFrontier is the panic value of Pop on an empty frontier.
	ErrEmptyFrontier = errors.New("frontier: pop from empty frontier")

	// ErrUnknownDiscipline is returned by New and ParseDiscipline for an unknown tag.
	ErrUnknownDiscipline = errors.New("frontier: unknown discipline")
)

// Discipline tags the ordering a frontier applies to Pop.
type Discipline int

const (
	// LIFO pops the most recently pushed entry.
	LIFO Discipline = iota
	// FIFO pops the earliest pushed entry.
	FIFO
	// Priority pops the entry with the smallest key, ties in push order.
	Priority
)

// String returns the lower-case name of the discipline.
func (d Discipline) String() string {
	switch d {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	case Priority:
		return "priority"
	default:
		return fmt.Sprintf("discipline(%d)", int(d))
	}
}

// Keyed reports whether Push keys affect the pop order.
func (d Discipline) Keyed() bool { return d == Priority }

// ParseDiscipline maps a name ("lifo"/"stack", "fifo"/"queue", "priority"/"pq")
// to its Discipline. Matching is case-insensitive.
func ParseDiscipline(name string) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lifo", "stack":
		return LIFO, nil
	case "fifo", "queue":
		return FIFO, nil
	case "priority", "pq", "heap":
		return Priority, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDiscipline, name)
}

// Frontier is the ordering contract shared by all disciplines.
type Frontier[T any] interface {
	// Push adds item. key orders Priority frontiers and is ignored otherwise.
	Push(item T, key float64)
	// Pop removes and returns the next item per the discipline.
	// It panics with ErrEmptyFrontier when the frontier is empty.
	Pop() T
	// Len returns the number of pending items.
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
}

// New returns an empty frontier for discipline d.
func New[T any](d Discipline) (Frontier[T], error) {
	switch d {
	case LIFO:
		return NewStack[T](), nil
	case FIFO:
		return NewQueue[T](), nil
	case Priority:
		return NewPriorityQueue[T](), nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownDiscipline, int(d))
}
