// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; generators attach context with %w.

package builder

import "errors"

// ErrTooFewNodes indicates nodeCount < 1.
var ErrTooFewNodes = errors.New("builder: node count too small")

// ErrBadDegree indicates a negative or non-finite average degree target.
var ErrBadDegree = errors.New("builder: average degree out of range")

// ErrBadCapacity indicates maxConnectionsPerNode < 1.
var ErrBadCapacity = errors.New("builder: max connections per node must be positive")

// ErrBadRadius indicates a negative or non-finite connection radius.
var ErrBadRadius = errors.New("builder: connection radius out of range")

// ErrEmptyGraph indicates a query that needs at least one node.
var ErrEmptyGraph = errors.New("builder: graph has no nodes")

// ErrOptionViolation indicates an invalid BuilderOption value. It surfaces when
// the generator runs, never as a panic.
var ErrOptionViolation = errors.New("builder: invalid option value")
