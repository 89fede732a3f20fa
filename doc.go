// Package meetpoint finds the empty grid cell minimizing the total travel
// distance from every house, honoring obstacles as impassable.
//
// What:
//
//   - MinTotalDistance is the single entry point: it validates input,
//     classifies the grid, routes to the matching solver, and returns the
//     solver's result verbatim.
//   - Classify inspects the grid once: a pure 0/1 grid (houses and empty
//     land only) qualifies for the SeparableSum fast path; any other cell
//     value routes to the BFSPerHouse fallback.
//   - SeparableSum exploits the additive split of Manhattan distance into
//     independent row and column terms: per-axis house counts plus a
//     prefix-sum sweep yield every candidate's cost in O(M×N) total.
//   - BFSPerHouse runs one breadth-first search per house, accumulating
//     distance and reach counts into empty cells; the answer is the
//     cheapest empty cell reached by all houses. Correct for any grid.
//
// Why:
//
//   - Facility placement: pick a depot spot minimizing courier travel.
//   - Game maps: choose a rally point reachable from every spawn.
//   - The dual strategy removes the house-count factor on obstacle-free
//     grids, where exhaustive per-house search is needless.
//
// Complexity:
//
//   - Classify:      O(M×N) time, O(1) memory.
//   - SeparableSum:  O(M×N) time, O(M+N) memory.
//   - BFSPerHouse:   O(H×M×N) time, O(M×N) memory (H = house count).
//
// Errors:
//
//   - ErrNilGrid: a nil *grid.Grid was passed.
//   - ErrNoMeetingPoint: well-formed grid with no satisfiable answer
//     (no houses, no empty cell, or no empty cell reachable from every
//     house). A normal outcome, not a fault; check with errors.Is.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Empty and ragged grids never reach this package: grid.New rejects them
// with grid.ErrEmptyGrid / grid.ErrNonRectangular.
package meetpoint
