// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the hub "Center" first, then n-1 leaves via cfg.idFn(0..n-2).
//   - Emits edges Center -> leaf in ascending leaf order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// StarCenter is the fixed hub ID of Star.
	StarCenter = "Center"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves. A search from the hub generates every
// leaf in one expansion, so the frontier peaks at n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(StarCenter); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, StarCenter, err)
		}
		if err := addVertices(methodStar, g, cfg, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(methodStar, g, cfg, StarCenter, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
