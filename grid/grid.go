package grid

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability and collects the house
// census in the same pass.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(M×N) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	m, n := len(values), len(values[0])
	for _, row := range values {
		if len(row) != n {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation; census houses on the way.
	cells := make([][]int, m)
	var houses []Pos
	for r := 0; r < m; r++ {
		cells[r] = make([]int, n)
		copy(cells[r], values[r])
		for c := 0; c < n; c++ {
			if cells[r][c] == House {
				houses = append(houses, Pos{Row: r, Col: c})
			}
		}
	}

	return &Grid{rows: m, cols: n, cells: cells, houses: houses}, nil
}

// Rows returns the number of rows M.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns N.
func (g *Grid) Cols() int { return g.cols }

// At returns the cell value at (r, c). The caller must ensure bounds;
// out-of-range access is a programming defect, not a recoverable error.
func (g *Grid) At(r, c int) int { return g.cells[r][c] }

// InBounds reports whether (r, c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Index maps (r, c) to a row-major index: r*Cols + c.
// Complexity: O(1).
func (g *Grid) Index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r, c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}

// Houses returns a copy of the house positions in row-major order.
// Complexity: O(H).
func (g *Grid) Houses() []Pos {
	out := make([]Pos, len(g.houses))
	copy(out, g.houses)
	return out
}

// HouseCount returns the number of House cells.
// Complexity: O(1).
func (g *Grid) HouseCount() int { return len(g.houses) }
