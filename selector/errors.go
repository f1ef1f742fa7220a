// SPDX-License-Identifier: MIT
// Package: cssbuild/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Mutators attach context via %w (kind name + offending detail).
//   • The package never panics at runtime; every invalid append surfaces as
//     one of the two sentinels below.

package selector

import (
	"errors"
	"fmt"
)

// ErrDuplicateSingleton indicates that a second element, id, or
// pseudo-element fragment was appended to a sequence that already contains
// one — anywhere in the sequence, combined sub-selectors included.
// Usage: if errors.Is(err, ErrDuplicateSingleton) { /* drop the extra clause */ }.
var ErrDuplicateSingleton = errors.New("selector: singleton fragment kind already present")

// ErrOutOfOrder indicates that a fragment was appended after a fragment of
// strictly higher order rank (e.g. a class clause after an attribute
// clause). Equal ranks do not trigger this error.
// Usage: if errors.Is(err, ErrOutOfOrder) { /* reorder the append calls */ }.
var ErrOutOfOrder = errors.New("selector: fragment appended out of order")

// wrapf prefixes a sentinel with the appending kind's canonical name and a
// formatted detail message, preserving the sentinel for errors.Is.
// The result reads "<Kind>: <detail>: <sentinel text>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func wrapf(kind string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", kind, fmt.Sprintf(format, args...), sentinel)
}
