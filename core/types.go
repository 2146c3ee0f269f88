package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrNoGoal indicates a RouteProblem was built without goal vertices.
	ErrNoGoal = errors.New("core: at least one goal vertex is required")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// X, Y are planar coordinates, meaningful only when HasCoords is true.
	X, Y      float64
	HasCoords bool

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint vertex IDs.
	From, To string

	// Weight is the step cost of traversing the edge.
	Weight float64

	// Label names the action of traversing the edge. Empty means "use the
	// destination vertex ID".
	Label string

	// Directed is true for one-way edges.
	Directed bool
}

// Arc is an edge seen from one endpoint: where it leads, at what cost and
// under which action label.
type Arc struct {
	EdgeID string
	To     string
	Label  string
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures a vertex when it is added.
type VertexOption func(*Vertex)

// WithCoordinates attaches planar coordinates to the vertex.
func WithCoordinates(x, y float64) VertexOption {
	return func(v *Vertex) {
		v.X, v.Y, v.HasCoords = x, y, true
	}
}

// WithMetadata stores key/value on the vertex.
func WithMetadata(key string, value interface{}) VertexOption {
	return func(v *Vertex) { v.Metadata[key] = value }
}

// EdgeOption configures an edge when it is added.
type EdgeOption func(*Edge)

// WithLabel sets the action label of the edge.
func WithLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// Graph is the in-memory graph data structure.
//
// mu guards every field below it. adjacency lists, per vertex, the edges
// leaving it in insertion order; an undirected edge is listed under both endpoints.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowMulti bool
	allowLoops bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	order      []string
	edges      map[string]*Edge
	edgeOrder  []string
	adjacency  map[string][]*Edge
}

// NewGraph creates an empty Graph. By default it is undirected with no
// loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Stats is a snapshot of graph size and weight anomalies.
type Stats struct {
	Vertices      int
	Edges         int
	Directed      bool
	NegativeEdges int
}
