// Package gridgraph treats a 2D grid of cells as a maze and makes it
// searchable with package search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. Cells with value ≥ OpenThreshold
//     are open, the rest are walls. With Weighted set, the value of an open cell is
//     the cost of entering it; otherwise every step costs 1.
//   - Four- or eight-connectivity (Conn4 or Conn8). Diagonal steps cost √2 × cell cost.
//   - ParseLayout reads Pacman-style layouts: '%' wall, ' ' open, 'P' start,
//     '.' goal, '1'–'9' terrain cost.
//   - MazeProblem implements search.Problem[Point, Direction] with Manhattan,
//     Euclidean and Octile heuristics.
//   - ConnectedComponents / SameComponent answer reachability without searching.
//   - ToCoreGraph converts the open cells into a directed *core.Graph.
//
// Complexity:
//
//   - NewGridGraph, ParseLayout:  O(W×H) time and memory.
//   - ConnectedComponents:        O(W×H×d), d = 4 or 8.
//   - ToCoreGraph:                O(W×H×d).
//   - MazeProblem.Successors:     O(d).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownGlyph:   layout contains an unsupported character.
//   - ErrNoStart, ErrMultipleStarts, ErrNoGoal: layout or problem endpoints are missing.
//   - ErrOutOfBounds, ErrBlockedCell: an endpoint is outside the grid or on a wall.
//
// Coordinates: X grows to the East (column), Y grows to the South (row).
package gridgraph
