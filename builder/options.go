// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// options.go - functional options and resolved configuration.
//
// Contract:
//   • Options are applied in order; later options override earlier ones.
//   • Invalid values are recorded and returned as ErrOptionViolation by the
//     generator; option constructors never panic.
//   • Without WithSeed/WithSource/WithRand the ambient source is used.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/labyrinth/rng"
)

// Layout defaults.
const (
	defaultCenterX = 300.0
	defaultCenterY = 300.0
	defaultRadius  = 200.0

	defaultWidth   = 800.0
	defaultHeight  = 600.0
	defaultPadding = 40.0
)

// builderConfig is the resolved configuration, passed by value.
type builderConfig struct {
	src rng.Source

	// circular layout
	centerX, centerY, radius float64

	// proximity layout
	width, height, padding float64

	err error
}

// BuilderOption customises a generator.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		src:     rng.Default(),
		centerX: defaultCenterX,
		centerY: defaultCenterY,
		radius:  defaultRadius,
		width:   defaultWidth,
		height:  defaultHeight,
		padding: defaultPadding,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed selects the deterministic LCG seeded with seed.
func WithSeed(seed uint32) BuilderOption {
	return func(c *builderConfig) {
		c.src = rng.NewLCG(seed)
	}
}

// WithSource sets an explicit random source.
func WithSource(src rng.Source) BuilderOption {
	return func(c *builderConfig) {
		if src == nil {
			c.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		c.src = src
	}
}

// WithRand draws from a caller-owned *rand.Rand.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		c.src = rng.FromRand(r)
	}
}

// WithCircle places Circular nodes on the circle of the given centre and radius.
func WithCircle(cx, cy, radius float64) BuilderOption {
	return func(c *builderConfig) {
		if !(radius > 0) || math.IsInf(radius, 0) {
			c.err = fmt.Errorf("%w: circle radius %v", ErrOptionViolation, radius)
			return
		}
		c.centerX, c.centerY, c.radius = cx, cy, radius
	}
}

// WithBounds sets the Proximity scatter area: nodes land in
// [padding, width−padding] × [padding, height−padding].
func WithBounds(width, height, padding float64) BuilderOption {
	return func(c *builderConfig) {
		if padding < 0 || !(width > 2*padding) || !(height > 2*padding) {
			c.err = fmt.Errorf("%w: bounds %vx%v with padding %v", ErrOptionViolation, width, height, padding)
			return
		}
		c.width, c.height, c.padding = width, height, padding
	}
}

// nodeID renders the i-th generated node ID.
func nodeID(i int) string {
	return fmt.Sprintf("n%d", i)
}
