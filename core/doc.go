// Package core provides a thread-safe in-memory Graph and a RouteProblem
// adapter that makes any Graph searchable with package search.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - float64 edge weights, optional edge labels (WithLabel)
//   - Optional planar vertex coordinates (WithCoordinates), used by the
//     straight-line heuristic
//
// Determinism:
//
//   - Vertices(), Edges() and Arcs() return results in insertion order, so a
//     search over the same graph replays the same traversal.
//
// Concurrency:
//
//   - A single sync.RWMutex guards vertices, edges and adjacency. Reads
//     (HasVertex, Arcs, ...) may run concurrently, which is what parallel
//     searches over one shared graph need.
//
// Routing:
//
//	g := core.NewGraph(core.WithDirected(true))
//	_, _ = g.AddEdge("A", "B", 2)
//	_, _ = g.AddEdge("B", "C", 1)
//	rp, _ := core.NewRouteProblem(g, "A", "C")
//	path := search.UniformCostSearch[string, string](rp) // [B C]
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrBadWeight           - NaN or infinite weight.
//	ErrNoGoal              - RouteProblem without goal vertices.
package core
