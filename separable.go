package meetpoint

import "github.com/katalvlaran/meetpoint/grid"

// separableSum computes the minimum total Manhattan distance on a pure
// 0/1 grid. Absent obstacles the distance to a candidate (r,c) splits
// into independent axis terms:
//
//	total(r,c) = Σ_h |r_h − r| + Σ_h |c_h − c|
//
// so one prefix-sum sweep per axis yields every candidate's cost, and the
// answer is the cheapest Empty cell. Integer arithmetic throughout.
//
// Time: O(M×N) for the scans plus O(M+N) for the sweeps; space O(M+N).
func separableSum(g *grid.Grid) (int, error) {
	m, n := g.Rows(), g.Cols()
	total := g.HouseCount()

	// Per-axis house counts from the census.
	rowCount := make([]int, m)
	colCount := make([]int, n)
	for _, h := range g.Houses() {
		rowCount[h.Row]++
		colCount[h.Col]++
	}

	costRow := axisCosts(rowCount, total)
	costCol := axisCosts(colCount, total)

	// The axis minima may land on a house, so candidates are restricted
	// to Empty cells.
	best := -1
	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			if g.At(r, c) != grid.Empty {
				continue
			}
			if d := costRow[r] + costCol[c]; best < 0 || d < best {
				best = d
			}
		}
	}
	if best < 0 {
		return 0, ErrNoMeetingPoint
	}

	return best, nil
}

// axisCosts returns cost[i] = Σ_j count[j]·|j−i| for one axis.
// cost[0] is computed directly; stepping from i−1 to i moves one unit
// closer to every house below i and one unit farther from the rest, so
// the total changes by 2·prefix − total, where prefix counts houses at
// indices < i.
// Complexity: O(len(count)) time and memory.
func axisCosts(count []int, total int) []int {
	cost := make([]int, len(count))
	for j, cnt := range count {
		cost[0] += cnt * j
	}
	prefix := 0
	for i := 1; i < len(count); i++ {
		prefix += count[i-1]
		cost[i] = cost[i-1] + 2*prefix - total
	}

	return cost
}
