package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// RouteProblem searches a Graph for a route from a start vertex to any of a
// set of goal vertices. States are vertex IDs and actions are arc labels
// (the destination vertex ID unless the edge carries a label).
//
// When several arcs leaving a vertex share a label only the cheapest is
// offered as a successor, so a label sequence names exactly one route and
// CostOfActions agrees with the step costs the search accumulated.
type RouteProblem struct {
	g     *Graph
	start string
	goals map[string]struct{}
}

var _ search.Problem[string, string] = (*RouteProblem)(nil)

// NewRouteProblem validates start and goals against g.
// Errors: ErrVertexNotFound, ErrNoGoal.
func NewRouteProblem(g *Graph, start string, goals ...string) (*RouteProblem, error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}
	set := make(map[string]struct{}, len(goals))
	for _, id := range goals {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: goal %q", ErrVertexNotFound, id)
		}
		set[id] = struct{}{}
	}

	return &RouteProblem{g: g, start: start, goals: set}, nil
}

// Graph returns the underlying graph.
func (rp *RouteProblem) Graph() *Graph { return rp.g }

// Goals returns the goal vertex IDs in graph insertion order.
func (rp *RouteProblem) Goals() []string {
	out := make([]string, 0, len(rp.goals))
	for _, id := range rp.g.Vertices() {
		if _, ok := rp.goals[id]; ok {
			out = append(out, id)
		}
	}

	return out
}

// StartState returns the start vertex ID.
func (rp *RouteProblem) StartState() string { return rp.start }

// IsGoal reports whether id is a goal vertex.
func (rp *RouteProblem) IsGoal(id string) bool {
	_, ok := rp.goals[id]
	return ok
}

// Successors lists the cheapest arc per label leaving id, in insertion order.
func (rp *RouteProblem) Successors(id string) []search.Successor[string, string] {
	arcs, err := rp.g.Arcs(id)
	if err != nil {
		return nil
	}
	out := make([]search.Successor[string, string], 0, len(arcs))
	index := make(map[string]int, len(arcs))
	for _, a := range arcs {
		if i, seen := index[a.Label]; seen {
			if a.Weight < out[i].Cost {
				out[i] = search.Successor[string, string]{State: a.To, Action: a.Label, Cost: a.Weight}
			}
			continue
		}
		index[a.Label] = len(out)
		out = append(out, search.Successor[string, string]{State: a.To, Action: a.Label, Cost: a.Weight})
	}

	return out
}

// CostOfActions replays labels from the start vertex and sums the step
// costs. An illegal label yields +Inf.
func (rp *RouteProblem) CostOfActions(actions []string) float64 {
	cur, total := rp.start, 0.0
	for _, label := range actions {
		next, ok := rp.step(cur, label)
		if !ok {
			return math.Inf(1)
		}
		cur = next.State
		total += next.Cost
	}

	return total
}

// Vertices returns the sequence of vertices visited by actions, starting
// with the start vertex. It stops at the first illegal label.
func (rp *RouteProblem) Vertices(actions []string) []string {
	out := []string{rp.start}
	cur := rp.start
	for _, label := range actions {
		next, ok := rp.step(cur, label)
		if !ok {
			break
		}
		cur = next.State
		out = append(out, cur)
	}

	return out
}

func (rp *RouteProblem) step(from, label string) (search.Successor[string, string], bool) {
	for _, s := range rp.Successors(from) {
		if s.Action == label {
			return s, true
		}
	}

	return search.Successor[string, string]{}, false
}
