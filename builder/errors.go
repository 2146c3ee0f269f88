// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices).
//
// Priority when multiple validations fail:
//   • ErrTooFewVertices     — size/domain checks first (n, rows, cols).
//   • ErrInvalidProbability — then probability ranges.
//   • ErrNeedRandSource     — then RNG presence for stochastic builders.
//   • ErrConstructFailed    — programmer errors at the BuildGraph boundary.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph could not run a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
