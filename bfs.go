package meetpoint

import "github.com/katalvlaran/meetpoint/grid"

// orthogonal neighbor offsets: N, S, W, E.
var bfsOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// bfsItem pairs a row-major cell index with its BFS depth from the house.
type bfsItem struct {
	idx   int
	depth int
}

// bfsPerHouse computes the minimum total distance on an arbitrary grid by
// running one breadth-first search per house over the four axis-aligned
// directions. Traversal passes through any non-obstacle cell (houses
// included), which keeps BFS path length equal to Manhattan distance on
// obstacle-free grids; distance and reach counts accumulate only into
// Empty cells. The answer is the Empty cell with the smallest accumulated
// distance among those reached by every house.
//
// A single visit-stamp grid is shared by all runs: a cell counts as
// visited in the current run iff seen[idx] equals the run's stamp, so no
// per-house reset pass is needed.
//
// Time: O(H×M×N); space O(M×N) for the accumulators, stamps, and queue.
func bfsPerHouse(g *grid.Grid) (int, error) {
	m, n := g.Rows(), g.Cols()
	total := g.HouseCount()
	size := m * n

	dist := make([]int, size)  // accumulated distance per cell
	reach := make([]int, size) // houses that reached the cell
	seen := make([]int, size)  // visit stamps, zero = never visited
	queue := make([]bfsItem, 0, size)

	stamp := 0
	for _, h := range g.Houses() {
		stamp++
		queue = queue[:0]
		start := g.Index(h.Row, h.Col)
		seen[start] = stamp
		queue = append(queue, bfsItem{idx: start})

		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			r, c := g.Coordinate(cur.idx)
			for _, d := range bfsOffsets {
				nr, nc := r+d[0], c+d[1]
				if !g.InBounds(nr, nc) {
					continue
				}
				v := g.At(nr, nc)
				if v != grid.Empty && v != grid.House {
					continue // obstacle
				}
				ni := g.Index(nr, nc)
				if seen[ni] == stamp {
					continue
				}
				seen[ni] = stamp
				if v == grid.Empty {
					dist[ni] += cur.depth + 1
					reach[ni]++
				}
				queue = append(queue, bfsItem{idx: ni, depth: cur.depth + 1})
			}
		}
	}

	best := -1
	for idx := 0; idx < size; idx++ {
		if reach[idx] != total {
			continue // not reachable from every house; houses stay at 0
		}
		r, c := g.Coordinate(idx)
		if g.At(r, c) != grid.Empty {
			continue
		}
		if best < 0 || dist[idx] < best {
			best = dist[idx]
		}
	}
	if best < 0 {
		return 0, ErrNoMeetingPoint
	}

	return best, nil
}
