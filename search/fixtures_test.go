package search_test

import (
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// arc is one labelled, weighted transition in a fixture graph.
type arc struct {
	to    string
	label string
	cost  float64
}

// graphProblem is a small explicit graph used as a search fixture.
// Successors are returned in insertion order; actions are arc labels.
type graphProblem struct {
	start string
	goals map[string]bool
	arcs  map[string][]arc
	h     map[string]float64 // optional per-state heuristic values

	successorCalls int
}

func newGraphProblem(start string, goals ...string) *graphProblem {
	gp := &graphProblem{
		start: start,
		goals: make(map[string]bool),
		arcs:  make(map[string][]arc),
		h:     make(map[string]float64),
	}
	for _, g := range goals {
		gp.goals[g] = true
	}

	return gp
}

// add inserts a directed arc; the label defaults to "from>to".
func (gp *graphProblem) add(from, to string, cost float64) *graphProblem {
	gp.arcs[from] = append(gp.arcs[from], arc{to: to, label: from + ">" + to, cost: cost})

	return gp
}

// both inserts arcs in both directions.
func (gp *graphProblem) both(a, b string, cost float64) *graphProblem {
	return gp.add(a, b, cost).add(b, a, cost)
}

func (gp *graphProblem) StartState() string { return gp.start }

func (gp *graphProblem) IsGoal(s string) bool { return gp.goals[s] }

func (gp *graphProblem) Successors(s string) []search.Successor[string, string] {
	gp.successorCalls++
	out := make([]search.Successor[string, string], 0, len(gp.arcs[s]))
	for _, a := range gp.arcs[s] {
		out = append(out, search.Successor[string, string]{State: a.to, Action: a.label, Cost: a.cost})
	}

	return out
}

func (gp *graphProblem) CostOfActions(actions []string) float64 {
	cur, total := gp.start, 0.0
	for _, act := range actions {
		found := false
		for _, a := range gp.arcs[cur] {
			if a.label == act {
				cur, total, found = a.to, total+a.cost, true
				break
			}
		}
		if !found {
			return math.Inf(1)
		}
	}

	return total
}

// heuristic reads the per-state table; missing states estimate 0.
func (gp *graphProblem) heuristic(s string, _ search.Problem[string, string]) float64 {
	return gp.h[s]
}

// bruteForceMinCost enumerates every simple path from the start and returns
// the cheapest goal-reaching cost, or +Inf when no goal is reachable.
func bruteForceMinCost(gp *graphProblem) float64 {
	best := math.Inf(1)
	onPath := map[string]bool{}
	var walk func(s string, cost float64)
	walk = func(s string, cost float64) {
		if gp.goals[s] {
			best = math.Min(best, cost)
			return
		}
		onPath[s] = true
		for _, a := range gp.arcs[s] {
			if !onPath[a.to] {
				walk(a.to, cost+a.cost)
			}
		}
		onPath[s] = false
	}
	walk(gp.start, 0)

	return best
}

// weightedDiamond is a small graph with several routes of differing cost
// from S to G; the cheapest costs 6 via S>A>C>G.
//
//	    A ─1─ C
//	  2/ \5    \3
//	  S    B ─1─ G
//	  7\  /2
//	    D
func weightedDiamond() *graphProblem {
	gp := newGraphProblem("S", "G")
	gp.both("S", "A", 2)
	gp.both("S", "D", 7)
	gp.both("A", "C", 1)
	gp.both("A", "B", 5)
	gp.both("D", "B", 2)
	gp.both("C", "G", 3)
	gp.both("B", "G", 1)
	// admissible, consistent estimates of the remaining cost
	gp.h = map[string]float64{"S": 5, "A": 4, "B": 1, "C": 3, "D": 3, "G": 0}

	return gp
}

// unitLadder is a graph with uniform step cost 1 and a cycle, so that BFS
// and UCS must agree on path length.
func unitLadder() *graphProblem {
	gp := newGraphProblem("0", "7")
	gp.both("0", "1", 1)
	gp.both("1", "2", 1)
	gp.both("2", "3", 1)
	gp.both("3", "7", 1)
	gp.both("0", "4", 1)
	gp.both("4", "5", 1)
	gp.both("5", "6", 1)
	gp.both("6", "3", 1)
	gp.both("5", "2", 1)

	return gp
}
