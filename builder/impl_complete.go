// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one edge per unordered pair {i,j}, i<j, emitted i asc then j asc.
//   - Directed: both arcs i→j and j→i for every i<j, in the same order.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := addEdge(methodComplete, g, cfg, u, v); err != nil {
					return err
				}
				if directed {
					if err := addEdge(methodComplete, g, cfg, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
