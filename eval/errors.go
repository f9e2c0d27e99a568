// SPDX-License-Identifier: MIT
// Package: geomopt/eval
//
// errors.go: sentinel errors for the interpreter.
//
// Error policy:
//   • Every sentinel marks a malformed program. Run aborts on the first one
//     and returns no Result.
//   • Numerical degeneracy is never an error (NaN/Inf, fallbacks, penalties).
//   • Context (instruction index, method tag, names) is attached with %w.

package eval

import (
	"errors"
	"fmt"
)

// ErrUnsupported indicates an unknown instruction kind, method, predicate,
// line, circle or root-selection tag.
var ErrUnsupported = errors.New("eval: unsupported construction")

// ErrUnknownPoint indicates a reference to a point that no earlier
// instruction registered.
var ErrUnknownPoint = errors.New("eval: unknown point")

// ErrDuplicatePoint indicates a second registration of the same name.
var ErrDuplicatePoint = errors.New("eval: duplicate point")

// ErrBadArgs indicates a wrong number of arguments for a method or
// predicate, or an argument that does not name one of the sampled points.
var ErrBadArgs = errors.New("eval: bad arguments")

// ErrNegatedAssert indicates an Assert carrying a negation; negative
// constraints belong in AssertNDG.
var ErrNegatedAssert = errors.New("eval: negated assert")

// errorf attaches method context to a sentinel.
func errorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
