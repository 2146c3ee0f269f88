package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownGlyph indicates an unsupported layout character.
	ErrUnknownGlyph = errors.New("gridgraph: unknown layout glyph")
	// ErrNoStart indicates a layout without a start cell.
	ErrNoStart = errors.New("gridgraph: layout has no start cell")
	// ErrMultipleStarts indicates a layout with more than one start cell.
	ErrMultipleStarts = errors.New("gridgraph: layout has more than one start cell")
	// ErrNoGoal indicates a layout or problem without goal cells.
	ErrNoGoal = errors.New("gridgraph: at least one goal cell is required")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBlockedCell indicates a point on a wall.
	ErrBlockedCell = errors.New("gridgraph: point is a wall")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell position.
type Point struct {
	X, Y int
}

// String formats the point as "x,y", the vertex ID scheme of ToCoreGraph.
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Add returns p moved by d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a move between neighboring cells; it is the action type of MazeProblem.
type Direction int

// Compass directions, clockwise from North.
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var (
	directionNames  = [...]string{"North", "NorthEast", "East", "SouthEast", "South", "SouthWest", "West", "NorthWest"}
	directionDeltas = [...][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

	conn4Directions = []Direction{North, East, South, West}
	conn8Directions = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
)

// String returns the direction name ("North", "SouthWest", ...).
func (d Direction) String() string {
	if d < North || d > NorthWest {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}

// Delta returns the (dx, dy) offset of the move.
func (d Direction) Delta() (dx, dy int) {
	if d < North || d > NorthWest {
		return 0, 0
	}

	return directionDeltas[d][0], directionDeltas[d][1]
}

// Diagonal reports whether the move changes both coordinates.
func (d Direction) Diagonal() bool {
	dx, dy := d.Delta()
	return dx != 0 && dy != 0
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// OpenThreshold is the minimum cell value considered open.
	OpenThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Weighted makes the value of an open cell the cost of entering it.
	Weighted bool
}

// DefaultGridOptions returns GridOptions with OpenThreshold=1 (values ≥1 are
// open), Conn=Conn4 and unit step costs.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OpenThreshold: 1,
		Conn:          Conn4,
		Weighted:      false,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built
// and therefore safe for concurrent readers.
// CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	OpenThreshold int
	Weighted      bool
	directions    []Direction
	minCost       float64
}
