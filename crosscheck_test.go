package meetpoint_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/meetpoint"
	"github.com/katalvlaran/meetpoint/grid"
	"github.com/katalvlaran/meetpoint/gridgen"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Brute-force oracle
//----------------------------------------------------------------------------//

// bruteForce recomputes the optimum the slow way: one BFS per EMPTY cell,
// summing the path lengths to every house. Traversal passes through any
// non-obstacle cell, mirroring the solvers' movement rule. Returns -1
// when no empty cell reaches all houses. Intended for small grids only.
func bruteForce(g *grid.Grid) int {
	m, n := g.Rows(), g.Cols()
	total := g.HouseCount()
	best := -1

	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			if g.At(r, c) != grid.Empty {
				continue
			}
			if sum, ok := sumToHouses(g, r, c, total); ok && (best < 0 || sum < best) {
				best = sum
			}
		}
	}

	return best
}

// sumToHouses BFSes outward from (r, c) and adds up the depth at which
// each house is first seen. ok is false unless every house was reached.
func sumToHouses(g *grid.Grid, r, c, total int) (sum int, ok bool) {
	type item struct {
		row, col, depth int
	}
	seen := make([]bool, g.Rows()*g.Cols())
	queue := []item{{row: r, col: c}}
	seen[g.Index(r, c)] = true
	reached := 0

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if g.At(cur.row, cur.col) == grid.House {
			sum += cur.depth
			reached++
			if reached == total {
				return sum, true
			}
		}
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := cur.row+d[0], cur.col+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			if v := g.At(nr, nc); v != grid.Empty && v != grid.House {
				continue
			}
			if ni := g.Index(nr, nc); !seen[ni] {
				seen[ni] = true
				queue = append(queue, item{row: nr, col: nc, depth: cur.depth + 1})
			}
		}
	}

	return 0, false
}

// result normalizes a query outcome for comparison: the distance, or -1
// for ErrNoMeetingPoint. Any other error fails the test.
func result(t *testing.T, g *grid.Grid, opts ...meetpoint.Option) int {
	t.Helper()
	got, err := meetpoint.MinTotalDistance(g, opts...)
	if errors.Is(err, meetpoint.ErrNoMeetingPoint) {
		return -1
	}
	require.NoError(t, err)
	return got
}

//----------------------------------------------------------------------------//
// Randomized properties
//----------------------------------------------------------------------------//

// TestCrossValidation_SeparableVsBFS: on every obstacle-free grid the
// fast path and the reference BFS must agree, no-meeting-point outcomes
// included.
func TestCrossValidation_SeparableVsBFS(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		cfg := gridgen.Config{
			Rows:         1 + int(seed)%17,
			Cols:         1 + int(seed*7)%17,
			HouseDensity: float64(seed%10) / 10,
			Seed:         seed,
		}
		values, err := gridgen.Random(cfg)
		require.NoError(t, err)
		g := mustGrid(t, values)
		require.Equal(t, meetpoint.SeparableSum, meetpoint.Classify(g))

		fast := result(t, g)
		ref := result(t, g, meetpoint.WithStrategy(meetpoint.BFSPerHouse))
		if fast != ref {
			t.Fatalf("seed %d (%dx%d): separable = %d, bfs = %d",
				seed, cfg.Rows, cfg.Cols, fast, ref)
		}
	}
}

// TestBFS_MatchesBruteForce: on small random grids with obstacles the
// dispatcher's answer must equal the exhaustive per-empty-cell oracle.
func TestBFS_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		cfg := gridgen.Config{
			Rows:            2 + int(seed)%19,
			Cols:            2 + int(seed*5)%19,
			HouseDensity:    0.2,
			ObstacleDensity: 0.2,
			Seed:            seed,
		}
		values, err := gridgen.Random(cfg)
		require.NoError(t, err)
		g := mustGrid(t, values)

		got := result(t, g)
		want := bruteForce(g)
		if got != want {
			t.Fatalf("seed %d (%dx%d): MinTotalDistance = %d, brute force = %d",
				seed, cfg.Rows, cfg.Cols, got, want)
		}
	}
}

// TestMonotonicity_AddHouse: converting an empty cell into a house never
// decreases the optimum — every candidate gains a distance term and the
// candidate set only shrinks.
func TestMonotonicity_AddHouse(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		cfg := gridgen.Config{
			Rows:            3 + int(seed)%12,
			Cols:            3 + int(seed*3)%12,
			HouseDensity:    0.25,
			ObstacleDensity: float64(seed%2) * 0.15,
			Seed:            seed,
		}
		values, err := gridgen.Random(cfg)
		require.NoError(t, err)

		before := result(t, mustGrid(t, values))
		if before < 0 {
			continue // unsatisfiable already; nothing to compare
		}

		// Promote the first empty cell to a house.
		promoted := false
		for r := 0; r < cfg.Rows && !promoted; r++ {
			for c := 0; c < cfg.Cols && !promoted; c++ {
				if values[r][c] == grid.Empty {
					values[r][c] = grid.House
					promoted = true
				}
			}
		}
		require.True(t, promoted, "seed %d: satisfiable grid must have an empty cell", seed)

		after := result(t, mustGrid(t, values))
		if after >= 0 && after < before {
			t.Fatalf("seed %d: optimum decreased from %d to %d after adding a house",
				seed, before, after)
		}
	}
}
