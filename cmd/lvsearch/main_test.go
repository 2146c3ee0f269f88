package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch"
)

const (
	mazeScenario  = "../../config/testdata/tiny_maze.yaml"
	graphScenario = "../../config/testdata/city_graph.yaml"
	gridScenario  = "../../config/testdata/generated_grid.yaml"
)

func TestRunSolve_MazeRender(t *testing.T) {
	var out bytes.Buffer
	err := runSolve(context.Background(), &out, mazeScenario, solveFlags{render: true})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "heuristic:    manhattan")
	assert.Contains(t, text, "status:       found")
	assert.Contains(t, text, "actions:      South South West South West West South West")
	assert.Contains(t, text, "cost:         8")
	assert.Contains(t, text, "%%***%%")
}

func TestRunSolve_Overrides(t *testing.T) {
	var out bytes.Buffer
	err := runSolve(context.Background(), &out, graphScenario, solveFlags{strategy: "bfs"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "strategy:     bfs")
	assert.Contains(t, out.String(), "heuristic:    null")
	assert.Contains(t, out.String(), "actions:      D E")

	err = runSolve(context.Background(), &out, graphScenario, solveFlags{heuristic: "manhattan"})
	assert.Error(t, err)
}

func TestRunSolve_GeneratedGraph(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runSolve(context.Background(), &out, gridScenario, solveFlags{}))
	assert.Contains(t, out.String(), "scenario:     generated-grid")
	assert.Contains(t, out.String(), "heuristic:    straightline")
	assert.Contains(t, out.String(), "status:       found")
}

func TestRunCompare(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCompare(context.Background(), &out, mazeScenario, 2))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "scenario tiny-maze (run "))
	assert.True(t, strings.HasSuffix(lines[0], ", astar heuristic manhattan)"))
	assert.True(t, strings.HasPrefix(lines[1], "STRATEGY"))
	for i, name := range []string{"dfs", "bfs", "ucs", "astar"} {
		fields := strings.Fields(lines[i+2])
		assert.Equal(t, name, fields[0])
		assert.Equal(t, "found", fields[1])
	}
}

func TestRootCmd_VersionAndMetrics(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "lvsearch.prom")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--metrics-file", metricsPath, "solve", graphScenario})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lvsearch_searches_total{status="found",strategy="ucs"} 1`)

	out.Reset()
	rootCmd.SetArgs([]string{"version", "--metrics-file", ""})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "lvsearch version "+lvsearch.Version+"\n", out.String())
}
