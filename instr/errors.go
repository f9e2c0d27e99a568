// SPDX-License-Identifier: MIT
// Package: geomopt/instr
//
// errors.go: sentinel errors for program decoding.

package instr

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates a program document that cannot be turned into a
// Program: bad YAML, an entry with zero or several instruction keys, a
// missing payload, or a field rejected by validation.
var ErrMalformed = errors.New("instr: malformed program")

// entryErrorf attaches the entry index to ErrMalformed.
func entryErrorf(i int, format string, args ...any) error {
	return fmt.Errorf("instr: entry %d: %s: %w", i, fmt.Sprintf(format, args...), ErrMalformed)
}
