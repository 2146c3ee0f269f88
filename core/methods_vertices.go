package core

import "fmt"

// AddVertex inserts a vertex if missing. Adding an existing ID is a no-op
// except that opts are applied to the stored vertex.
// Complexity: O(1)
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.ensureVertex(id)
	for _, opt := range opts {
		opt(v)
	}

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the stored vertex.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return *v, nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// ensureVertex returns the vertex for id, creating it if needed.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.vertices[id] = v
	g.order = append(g.order, id)

	return v
}
