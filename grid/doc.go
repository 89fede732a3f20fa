// Package grid defines the immutable 2D cell grid shared by the
// meetpoint solvers.
//
// What:
//
//   - Grid wraps a rectangular [][]int of cell values, deep-copied at
//     construction so callers cannot mutate it afterwards.
//   - Cell taxonomy: Empty (0) is traversable and a meeting-point
//     candidate, House (1) is a distance source, any other value is an
//     Obstacle (conventionally 2).
//   - Row-major Index/Coordinate helpers map (row,col) positions to flat
//     array offsets for the solvers' accumulator grids.
//   - The house census (positions and count) is collected once during
//     construction and served in O(1) thereafter.
//
// Why:
//
//   - One validated, immutable input type lets every solver assume a
//     non-empty rectangular grid and skip per-call shape checks.
//   - Read-only sharing: a *Grid may be used by any number of concurrent
//     queries, since nothing mutates it after New returns.
//
// Complexity:
//
//   - New:              O(M×N) time and memory (deep copy + house census).
//   - At/InBounds/Index: O(1).
//   - Houses:            O(H) (copy of the census).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
