package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvsearch/gridgraph"
)

// tinyMaze has a unique 8-step shortest path from P to '.'.
const tinyMaze = `
%%%%%%%
%    P%
% %%% %
%  %  %
%%   %%
%. %%%%
%%%%%%%
`

// mudMaze routes around the expensive '9' cell: the cheapest path costs 4
// while the shortest one costs 10.
const mudMaze = `
%%%%%
%P9.%
% 1 %
%%%%%
`

// TestParseLayout_TinyMaze checks dimensions, endpoints and walls.
func TestParseLayout_TinyMaze(t *testing.T) {
	m, err := gridgraph.ParseLayout(tinyMaze, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("ParseLayout error: %v", err)
	}
	if m.Grid.Width != 7 || m.Grid.Height != 7 {
		t.Errorf("size = %dx%d; want 7x7", m.Grid.Width, m.Grid.Height)
	}
	if m.Start != (gridgraph.Point{X: 5, Y: 1}) {
		t.Errorf("Start = %v; want 5,1", m.Start)
	}
	if len(m.Goals) != 1 || m.Goals[0] != (gridgraph.Point{X: 1, Y: 5}) {
		t.Errorf("Goals = %v; want [1,5]", m.Goals)
	}
	if m.Grid.Weighted {
		t.Error("layout without digits parsed as weighted")
	}
	if m.Grid.Passable(gridgraph.Point{X: 2, Y: 2}) {
		t.Error("wall (2,2) is passable")
	}
}

// TestParseLayout_Weighted checks that digits become entry costs.
func TestParseLayout_Weighted(t *testing.T) {
	m, err := gridgraph.ParseLayout(mudMaze, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("ParseLayout error: %v", err)
	}
	if !m.Grid.Weighted {
		t.Fatal("layout with digits parsed as unweighted")
	}
	if got := m.Grid.CellCost(gridgraph.Point{X: 2, Y: 1}); got != 9 {
		t.Errorf("CellCost(2,1)=%v; want 9", got)
	}
	if got := m.Grid.CellCost(gridgraph.Point{X: 1, Y: 2}); got != 1 {
		t.Errorf("CellCost(1,2)=%v; want 1", got)
	}
}

// TestParseLayout_Errors covers each malformed layout.
func TestParseLayout_Errors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		err    error
	}{
		{"Empty", "\n\n", gridgraph.ErrEmptyGrid},
		{"NoStart", "%%%\n%.%\n%%%", gridgraph.ErrNoStart},
		{"TwoStarts", "%%%%\n%PP%\n%.%%", gridgraph.ErrMultipleStarts},
		{"NoGoal", "%%%\n%P%\n%%%", gridgraph.ErrNoGoal},
		{"UnknownGlyph", "%%%\n%P#\n%.%", gridgraph.ErrUnknownGlyph},
		{"Ragged", "%%%%\n%P.\n%%%%", gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseLayout(tc.layout, gridgraph.Conn4)
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseLayout error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestParseLayout_MultipleGoals lists goals in row-major order.
func TestParseLayout_MultipleGoals(t *testing.T) {
	m, err := gridgraph.ParseLayout("%%%%\n%.P%\n%. %\n%%%%", gridgraph.Conn4)
	if err != nil {
		t.Fatalf("ParseLayout error: %v", err)
	}
	want := []gridgraph.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}
	if len(m.Goals) != 2 || m.Goals[0] != want[0] || m.Goals[1] != want[1] {
		t.Errorf("Goals = %v; want %v", m.Goals, want)
	}
}

// TestRender marks the path between start and goal.
func TestRender(t *testing.T) {
	m, err := gridgraph.ParseLayout(tinyMaze, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("ParseLayout error: %v", err)
	}
	path := []gridgraph.Direction{
		gridgraph.South, gridgraph.South, gridgraph.West, gridgraph.South,
		gridgraph.West, gridgraph.West, gridgraph.South, gridgraph.West,
	}
	want := "" +
		"%%%%%%%\n" +
		"%    P%\n" +
		"% %%%*%\n" +
		"%  %**%\n" +
		"%%***%%\n" +
		"%.*%%%%\n" +
		"%%%%%%%\n"
	if got := m.Render(path); got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

// TestRender_StopsAtWall ignores moves after the first illegal one.
func TestRender_StopsAtWall(t *testing.T) {
	m, err := gridgraph.ParseLayout(mudMaze, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("ParseLayout error: %v", err)
	}
	got := m.Render([]gridgraph.Direction{gridgraph.North, gridgraph.East})
	// A '1' cell costs the same as ' ' and draws as open.
	want := "%%%%%\n%P9.%\n%   %\n%%%%%\n"
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}
