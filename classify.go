package meetpoint

import "github.com/katalvlaran/meetpoint/grid"

// Classify scans all M×N cells once and reports which solver applies:
// SeparableSum when every cell is exactly Empty or House (no obstacle
// exists, so Manhattan distance is exact), BFSPerHouse otherwise.
// No side effects; never returns Auto.
// Complexity: O(M×N) time, O(1) memory.
func Classify(g *grid.Grid) Strategy {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if v := g.At(r, c); v != grid.Empty && v != grid.House {
				return BFSPerHouse
			}
		}
	}

	return SeparableSum
}
