// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid(rows, cols) constructor with 4-neighborhood.
// Layout:
//   - Cell (r,c) has id base + r*cols + c (row-major).
//   - For each cell emit Right then Bottom when they exist.
// Complexity:
//   - O(rows·cols) vertices and edges.

package builder

import "github.com/katalvlaran/indset/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid appends the rows×cols lattice graph.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := checkMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		base, err := appendVertices(g, rows*cols)
		if err != nil {
			return err
		}
		var r, c, id int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id = base + r*cols + c
				if c+1 < cols {
					if err := link(g, methodGrid, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, methodGrid, id, id+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
