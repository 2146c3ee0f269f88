// Package config loads search scenarios from YAML.
//
// A scenario names one problem, either a Pacman-style maze or an explicit
// weighted graph, plus the strategy, heuristic and limits to solve it with:
//
//	name: tiny
//	strategy: astar
//	heuristic: manhattan
//	max_expansions: 10000
//	maze:
//	  connectivity: 4
//	  layout: |
//	    %%%%%%%
//	    %    P%
//	    %.    %
//	    %%%%%%%
//
// A graph can also be generated from a fixture topology instead of listing
// vertices and edges:
//
//	graph:
//	  start: "0,0"
//	  goals: ["5,5"]
//	  generate: {kind: grid, rows: 6, cols: 6, seed: 11, min_weight: 1, max_weight: 3}
//
// Files are decoded with gopkg.in/yaml.v3 into a generic map and then into
// Scenario with mapstructure, so unknown keys are rejected and scalar types
// are coerced ("8" is a valid connectivity).
package config
