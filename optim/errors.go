// SPDX-License-Identifier: MIT
// Package: geomopt/optim
//
// errors.go: sentinel errors for the optimization driver.
//
// Error policy:
//   • Malformed programs surface the eval sentinels unchanged.
//   • Failing to converge is not an error; Solution.Converged reports it.

package optim

import "errors"

// ErrInvalidConfig indicates a Config field outside its documented range.
var ErrInvalidConfig = errors.New("optim: invalid config")

// ErrNoValidSample indicates that every restart produced a degenerate
// initial sample (two points closer than Config.MinDist).
var ErrNoValidSample = errors.New("optim: no valid initial sample")
