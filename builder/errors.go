// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors of the builder package.
// Policy:
//   - Constructors wrap these with fmt.Errorf("%s: ...: %w", method, ...).
//   - Callers match with errors.Is; messages are not part of the contract.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the family minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrTooManyVertices indicates the graph would outgrow core.MaxVertices.
	ErrTooManyVertices = errors.New("builder: too many vertices")

	// ErrInvalidProbability indicates a probability outside [0,1] (or NaN).
	ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrConstructFailed indicates that a core.Graph mutation failed mid-build.
	ErrConstructFailed = errors.New("builder: construction failed")
)
