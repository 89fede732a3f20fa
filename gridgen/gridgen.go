package gridgen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/meetpoint/grid"
)

// Sentinel errors for grid generation.
var (
	// ErrDimension indicates a non-positive row or column count.
	ErrDimension = errors.New("gridgen: rows and cols must be positive")
	// ErrDensity indicates densities outside [0,1] or summing past 1.
	ErrDensity = errors.New("gridgen: densities must lie in [0,1] and sum to at most 1")
)

// defaultSeed is the fixed "zero" seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// Config fixes every input of a random grid draw.
type Config struct {
	// Rows and Cols are the grid dimensions; both must be positive.
	Rows, Cols int
	// HouseDensity is the independent probability of a House cell.
	HouseDensity float64
	// ObstacleDensity is the independent probability of an Obstacle cell.
	ObstacleDensity float64
	// Seed drives the deterministic RNG; 0 selects the fixed default.
	Seed int64
}

// Validate checks dimensions and density ranges.
// Complexity: O(1).
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return ErrDimension
	}
	if c.HouseDensity < 0 || c.HouseDensity > 1 ||
		c.ObstacleDensity < 0 || c.ObstacleDensity > 1 ||
		c.HouseDensity+c.ObstacleDensity > 1 {
		return ErrDensity
	}

	return nil
}

// Random draws a Rows×Cols grid of cell values under cfg. Each cell is
// sampled independently; the remainder probability yields Empty. The
// result is ready for grid.New.
// Complexity: O(Rows×Cols) time and memory.
func Random(cfg Config) ([][]int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	values := make([][]int, cfg.Rows)
	for r := range values {
		row := make([]int, cfg.Cols)
		for c := range row {
			switch p := rng.Float64(); {
			case p < cfg.HouseDensity:
				row[c] = grid.House
			case p < cfg.HouseDensity+cfg.ObstacleDensity:
				row[c] = grid.Obstacle
			}
		}
		values[r] = row
	}

	return values, nil
}
