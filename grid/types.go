// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/meetpoint.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Recognized cell values. Any value other than Empty or House is treated
// as an obstacle; Obstacle is the conventional marker.
const (
	// Empty marks a traversable cell and a meeting-point candidate.
	Empty = 0
	// House marks a cell from which total distance is measured.
	House = 1
	// Obstacle is the conventional impassable marker; any value ∉ {0,1}
	// behaves identically.
	Obstacle = 2
)

// Pos identifies a cell by (Row, Col); valid iff 0 ≤ Row < M and 0 ≤ Col < N.
type Pos struct {
	Row, Col int
}

// Grid is an immutable M×N rectangular grid of integer cell values.
// CellValues are deep-copied at construction; houses holds the census of
// House cells collected during the same pass.
type Grid struct {
	rows, cols int
	cells      [][]int
	houses     []Pos
}
