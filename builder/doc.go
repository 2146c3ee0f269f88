// Package builder assembles deterministic *core.Graph fixtures for search
// tests, benchmarks and the lvsearch CLI.
//
// The package offers the following key components:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator that creates the
//     graph, resolves builder options and runs constructors in order.
//   - Topology constructors: Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme and weight function.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix plus decimal ("v0","v1",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – IntegerWeightFn:   uniform integers in [min,max], useful for tie-heavy graphs.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with context.
//   - Every edge carries a weight from the resolved WeightFn, so fixtures are
//     ready for cost-aware strategies.
package builder
