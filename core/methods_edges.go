package core

import (
	"fmt"
	"math"
	"strconv"
)

// AddEdge connects from and to with the given weight, creating missing
// vertices. It returns the new edge ID.
//
// Negative weights are stored as given: search treats step costs as a
// precondition of the domain, and Stats reports them.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(deg(from)) for the multi-edge check.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}
	g.ensureVertex(from)
	g.ensureVertex(to)

	g.nextEdgeID++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.adjacency[from] = append(g.adjacency[from], e)
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e.ID, nil
}

// HasEdge reports whether an edge leads from → to (either direction for
// undirected edges).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.adjacency[from] {
		if other(e, from) == to {
			return true
		}
	}

	return false
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, *g.edges[id])
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Arcs returns the edges leaving id as Arcs, in insertion order. An empty
// label is replaced by the destination vertex ID.
// Complexity: O(deg(id))
func (g *Graph) Arcs(id string) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	adj := g.adjacency[id]
	out := make([]Arc, 0, len(adj))
	for _, e := range adj {
		to := other(e, id)
		label := e.Label
		if label == "" {
			label = to
		}
		out = append(out, Arc{EdgeID: e.ID, To: to, Label: label, Weight: e.Weight})
	}

	return out, nil
}

// Stats returns a snapshot of graph size and negative-weight edges.
// Complexity: O(E)
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Vertices: len(g.vertices), Edges: len(g.edges), Directed: g.directed}
	for _, e := range g.edges {
		if e.Weight < 0 {
			s.NegativeEdges++
		}
	}

	return s
}

// other returns the endpoint of e opposite to from.
func other(e *Edge, from string) string {
	if e.From == from {
		return e.To
	}

	return e.From
}
