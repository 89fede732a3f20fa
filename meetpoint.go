package meetpoint

import (
	"fmt"

	"github.com/katalvlaran/meetpoint/grid"
)

// MinTotalDistance returns the minimum achievable sum of travel distances
// from every house to a single empty cell, applying any number of
// functional Options. Distance is Manhattan on obstacle-free grids and
// BFS path length otherwise; the two coincide whenever both apply.
//
// Returns ErrNilGrid for a nil grid, ErrOptionViolation for bad options,
// and ErrNoMeetingPoint when no empty cell is reachable from all houses
// (including the zero-house and zero-empty-cell grids). The int result is
// meaningful only when the error is nil.
//
// Each call is independent and stateless: all accumulators are freshly
// allocated, and the grid is only read, so one *grid.Grid may serve any
// number of concurrent calls.
func MinTotalDistance(g *grid.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	// No houses means nothing to minimize toward.
	if g.HouseCount() == 0 {
		return 0, ErrNoMeetingPoint
	}

	strategy := o.Strategy
	if strategy == Auto {
		strategy = Classify(g)
	} else if strategy == SeparableSum && Classify(g) != SeparableSum {
		return 0, fmt.Errorf("%w: SeparableSum requires an obstacle-free grid", ErrOptionViolation)
	}

	if strategy == SeparableSum {
		return separableSum(g)
	}

	return bfsPerHouse(g)
}
