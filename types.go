// Package meetpoint defines strategy selection, tunable options, and
// sentinel errors for the meeting-point solvers.
package meetpoint

import (
	"errors"
	"fmt"
)

// Sentinel errors for meeting-point queries.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("meetpoint: grid is nil")

	// ErrNoMeetingPoint indicates a well-formed but unsatisfiable query:
	// no houses, no empty cell, or no empty cell reachable from every
	// house. A normal outcome, not a fault.
	ErrNoMeetingPoint = errors.New("meetpoint: no valid meeting point")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("meetpoint: invalid option supplied")
)

// Strategy selects the distance-computation path for a query.
type Strategy int

const (
	// Auto lets Classify choose the strategy per query.
	Auto Strategy = iota
	// SeparableSum is the O(M×N) fast path; valid only when the grid
	// holds Empty and House cells exclusively.
	SeparableSum
	// BFSPerHouse is the O(H×M×N) exhaustive path, correct for any grid.
	// Forcing it serves as the reference implementation.
	BFSPerHouse
)

// String returns the strategy name for diagnostics.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "Auto"
	case SeparableSum:
		return "SeparableSum"
	case BFSPerHouse:
		return "BFSPerHouse"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Option configures a query via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when
// MinTotalDistance is invoked.
type Option func(*Options)

// Options holds parameters customizing a meeting-point query.
type Options struct {
	// Strategy routes the query; Auto defers to Classify.
	Strategy Strategy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Strategy=Auto and no recorded error.
func DefaultOptions() Options {
	return Options{Strategy: Auto}
}

// WithStrategy forces a specific solver instead of the classifier's
// choice. Forcing SeparableSum on a grid containing obstacles is rejected
// at query time; an unknown value is an ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Auto, SeparableSum, BFSPerHouse:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy (%d)", ErrOptionViolation, int(s))
		}
	}
}
