// SPDX-License-Identifier: MIT
// Package: geomopt/field
//
// errors.go: sentinel errors for the field package.
//
// Error policy:
//   • Only package-level sentinels are exposed; match with errors.Is.
//   • Context is attached with %w at the call site, never baked into the
//     sentinel text.
//   • Arithmetic never errors: NaN and ±Inf propagate as values.

package field

import "errors"

// ErrLengthMismatch indicates that a value vector handed to SetValues does
// not have one entry per declared variable.
var ErrLengthMismatch = errors.New("field: value vector length mismatch")

// ErrUnknownVar indicates that a variable name was never declared in the store.
var ErrUnknownVar = errors.New("field: unknown variable")
