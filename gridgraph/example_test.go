// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: solving a Pacman layout
////////////////////////////////////////////////////////////////////////////////

// ExampleParseLayout parses a small maze, solves it with A* under the
// Manhattan estimate and draws the route.
func ExampleParseLayout() {
	layout := `
%%%%%%%
%    P%
% %%% %
%  %  %
%%   %%
%. %%%%
%%%%%%%
`
	maze, err := gridgraph.ParseLayout(layout, gridgraph.Conn4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	mp, _ := maze.Problem()

	path := search.AStarSearch[gridgraph.Point, gridgraph.Direction](mp, mp.Manhattan())
	fmt.Println(path)
	fmt.Println("cost:", mp.CostOfActions(path))
	fmt.Print(maze.Render(path))
	// Output:
	// [South South West South West West South West]
	// cost: 8
	// %%%%%%%
	// %    P%
	// % %%%*%
	// %  %**%
	// %%***%%
	// %.*%%%%
	// %%%%%%%
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents lists the open regions of a grid.
// Values ≥1 are open; 0 is a wall.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}
	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}
