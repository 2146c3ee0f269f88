// Package lvsearch is a generic state-space search engine: one traversal
// driver, three frontier disciplines and four strategies on top of them.
//
// 🚀 What is in the box?
//
//   - Frontiers: LIFO stack, FIFO queue, min-priority queue with stable ties
//   - Driver: lazy deletion, visited marking at expansion, goal test on pop
//   - Strategies: depth-first, breadth-first, uniform-cost, A*
//   - Domains: weighted graphs (core) and Pacman-style mazes (gridgraph)
//   - Tooling: fixtures (builder), Prometheus metrics and call counting
//     (instrument), concurrent batches (batch), YAML scenarios (config)
//
// Under the hood, everything is organized under these subpackages:
//
//	frontier/   — Discipline tag, Stack, Queue, PriorityQueue
//	search/     — Problem contract, Search driver, DFS/BFS/UCS/A* wrappers, Verify
//	core/       — thread-safe weighted Graph and RouteProblem adapter
//	gridgraph/  — grid mazes, layout parser, MazeProblem and heuristics
//	builder/    — deterministic graph fixtures
//	instrument/ — Counting wrapper and Metrics
//	batch/      — many independent searches on a worker pool
//	config/     — scenario files
//	cmd/lvsearch — command-line front end (solve, compare, version)
//
// Quick example:
//
//	maze, _ := gridgraph.ParseLayout(layout, gridgraph.Conn4)
//	mp, _ := maze.Problem()
//	path := search.AStarSearch[gridgraph.Point, gridgraph.Direction](mp, mp.Manhattan())
//	fmt.Print(maze.Render(path))
package lvsearch

// Version is the lvsearch release.
const Version = "0.1.0"
