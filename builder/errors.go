// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors attach the method name with %w wrapping.
//   • Option constructors panic on meaningless values; constructors never do.

package builder

import "errors"

// ErrTooFewPeople indicates that a size parameter (n, depth, fanout, cast)
// is smaller than the constructor allows.
var ErrTooFewPeople = errors.New("builder: parameter too small")

// ErrCastTooLarge indicates RandomCast was asked for more cast members per
// movie than there are people.
var ErrCastTooLarge = errors.New("builder: cast larger than population")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the underlying core.Builder rejected a row,
// typically a duplicate id from two constructors sharing prefixes.
var ErrConstructFailed = errors.New("builder: construction failed")
