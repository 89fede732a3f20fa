// Package gridgen builds deterministic random grids for benchmarks and
// randomized cross-validation tests.
//
// What:
//
//   - Config fixes dimensions, house density, obstacle density, and seed.
//   - Random produces a [][]int ready for grid.New, drawing each cell
//     independently: House with probability HouseDensity, Obstacle with
//     probability ObstacleDensity, Empty otherwise.
//
// Why:
//
//   - Determinism: same seed ⇒ identical grid across platforms, so
//     randomized tests and benchmarks are reproducible.
//   - Encapsulation: a single RNG policy (seed==0 maps to a fixed
//     default); no time-based sources hidden anywhere.
//
// Complexity:
//
//   - Random: O(Rows×Cols) time and memory.
//
// Errors:
//
//   - ErrDimension: Rows or Cols is not positive.
//   - ErrDensity: a density is outside [0,1] or the densities sum past 1.
package gridgen
