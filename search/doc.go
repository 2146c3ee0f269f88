// Package search implements a generic state-space search engine.
//
// A domain is injected as a Problem: a start state, a goal predicate, a
// successor generator and a path-cost function. The engine finds a sequence
// of actions leading from the start state to a goal state.
//
// One traversal routine drives every strategy. It is parametrised by a
// frontier discipline (see package frontier) and an optional heuristic:
//
//	DepthFirstSearch   — LIFO frontier, no heuristic.
//	BreadthFirstSearch — FIFO frontier, no heuristic. Optimal in edge count.
//	UniformCostSearch  — priority frontier keyed by path cost (A* with NullHeuristic).
//	AStarSearch        — priority frontier keyed by path cost + heuristic.
//
// Graph-search semantics:
//
//   - A state is marked visited when it is popped, not when it is pushed.
//     Duplicates may coexist in the frontier; stale copies are dropped on pop.
//   - The goal test runs on expansion, right after the visited mark, so a start
//     state that is already a goal yields an empty path without expanding anything.
//   - No re-expansion and no cost relaxation on revisit: the first expansion of a
//     state wins. With an admissible, consistent heuristic that expansion is optimal.
//
// Failure is not an error: the wrappers return an empty action slice when the
// frontier runs dry. Search returns a Result whose Status tells "no path"
// (NotFound) apart from "start is goal" (FoundAtStart).
//
// The wrappers impose no limits. Search accepts embedding-level options
// (context cancellation, an expansion cap, hooks and a slog logger) for callers
// that need to bound or observe a run.
//
// Complexity (b = branching factor, d = solution depth, V/E = reachable states/edges):
//
//   - Time:  O(V + E) successor calls; the priority discipline adds O(log E) per push.
//   - Space: O(V) visited set plus O(E) frontier entries, each carrying its path.
//
// Concurrency: every call owns its frontier and visited set. Independent searches
// may run in parallel provided the Problem values are read-only.
package search
