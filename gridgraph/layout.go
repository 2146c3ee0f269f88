package gridgraph

import (
	"fmt"
	"strings"
)

// Layout glyphs.
const (
	GlyphWall  = '%'
	GlyphOpen  = ' '
	GlyphStart = 'P'
	GlyphGoal  = '.'
	GlyphPath  = '*'
)

// Maze is a parsed layout: the grid plus its marked start and goal cells.
type Maze struct {
	Grid  *GridGraph
	Start Point
	Goals []Point
}

// ParseLayout reads a Pacman-style maze:
//
//	%%%%%%%
//	%    P%
//	% %%% %
//	%.    %
//	%%%%%%%
//
// '%' is a wall, ' ' an open cell, 'P' the start, '.' a goal and '1'–'9' an
// open cell whose digit is the cost of entering it. Any digit makes the grid
// weighted. Leading and trailing blank lines are ignored; every other line is a
// row and all rows must have the same width.
//
// Goals are listed in row-major order.
func ParseLayout(text string, conn Connectivity) (*Maze, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	var (
		values   = make([][]int, len(lines))
		start    Point
		hasStart bool
		goals    []Point
		weighted bool
	)
	for y, line := range lines {
		row := []rune(line)
		values[y] = make([]int, len(row))
		for x, r := range row {
			switch {
			case r == GlyphWall:
				values[y][x] = 0
			case r == GlyphOpen:
				values[y][x] = 1
			case r == GlyphStart:
				if hasStart {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrMultipleStarts, x, y)
				}
				start, hasStart = Point{X: x, Y: y}, true
				values[y][x] = 1
			case r == GlyphGoal:
				goals = append(goals, Point{X: x, Y: y})
				values[y][x] = 1
			case r >= '1' && r <= '9':
				values[y][x] = int(r - '0')
				weighted = true
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, r, x, y)
			}
		}
	}
	if !hasStart {
		return nil, ErrNoStart
	}
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}

	opts := DefaultGridOptions()
	opts.Conn = conn
	opts.Weighted = weighted
	gg, err := NewGridGraph(values, opts)
	if err != nil {
		return nil, err
	}

	return &Maze{Grid: gg, Start: start, Goals: goals}, nil
}

// Problem returns the MazeProblem of the parsed start and goals.
func (m *Maze) Problem() (*MazeProblem, error) {
	return NewMazeProblem(m.Grid, m.Start, m.Goals...)
}

// Render draws the maze in layout glyphs with the cells visited by actions
// marked '*'. Start and goal glyphs take precedence over the path mark.
// Cells costing 2–9 keep their digit. Drawing stops at the first move that
// leaves the open area.
func (m *Maze) Render(actions []Direction) string {
	onPath := make(map[Point]bool, len(actions))
	cur := m.Start
	for _, d := range actions {
		next := cur.Add(d)
		if !m.Grid.Passable(next) {
			break
		}
		cur = next
		onPath[cur] = true
	}
	goals := make(map[Point]bool, len(m.Goals))
	for _, g := range m.Goals {
		goals[g] = true
	}

	var b strings.Builder
	for y := 0; y < m.Grid.Height; y++ {
		for x := 0; x < m.Grid.Width; x++ {
			p := Point{X: x, Y: y}
			switch {
			case p == m.Start:
				b.WriteRune(GlyphStart)
			case goals[p]:
				b.WriteRune(GlyphGoal)
			case !m.Grid.Passable(p):
				b.WriteRune(GlyphWall)
			case onPath[p]:
				b.WriteRune(GlyphPath)
			case m.Grid.Weighted && m.Grid.CellValues[y][x] > 1 && m.Grid.CellValues[y][x] <= 9:
				b.WriteByte(byte('0' + m.Grid.CellValues[y][x]))
			default:
				b.WriteRune(GlyphOpen)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
