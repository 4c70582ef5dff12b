// SPDX-License-Identifier: MIT

package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/rng"
)

// BraidedWallRemoval is the wall-removal percentage applied by Braided.
const BraidedWallRemoval = 25

// Sentinel errors for maze generation.
var (
	// ErrBadDimension indicates a width or height below 1.
	ErrBadDimension = errors.New("maze: width and height must be positive")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Option configures Generate.
// Invalid values are recorded and surfaced as ErrOptionViolation by Generate.
type Option func(*Options)

// Options holds the resolved generation parameters.
type Options struct {
	// WallRemoval is the percentage (0..100) of interior walls still standing
	// after the carve that are removed at random.
	WallRemoval int

	// Source drives every random choice.
	Source rng.Source

	err error
}

// DefaultOptions returns a perfect-maze configuration on the ambient source.
func DefaultOptions() Options {
	return Options{
		WallRemoval: 0,
		Source:      rng.Default(),
	}
}

// WithWallRemoval removes percent% of the interior walls left after the carve.
//
//	0 ≤ percent ≤ 100: accepted (0 keeps the maze perfect)
//	otherwise:         ErrOptionViolation
func WithWallRemoval(percent int) Option {
	return func(o *Options) {
		if percent < 0 || percent > 100 {
			o.err = fmt.Errorf("%w: wall removal %d%% not in [0,100]", ErrOptionViolation, percent)
			return
		}
		o.WallRemoval = percent
	}
}

// Braided removes BraidedWallRemoval percent of the interior walls.
func Braided() Option {
	return WithWallRemoval(BraidedWallRemoval)
}

// WithSeed makes generation reproducible using the seeded LCG.
func WithSeed(seed uint32) Option {
	return func(o *Options) {
		o.Source = rng.NewLCG(seed)
	}
}

// WithSource sets an explicit random source.
func WithSource(src rng.Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		o.Source = src
	}
}
