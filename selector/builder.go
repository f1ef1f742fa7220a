// SPDX-License-Identifier: MIT
// Package: cssbuild/selector
//
// builder.go - seed constructors, Builder mutators, Combine, and rendering.
//
// Design contract (strict):
//   - One append path: every mutator funnels through push(), which validates
//     against the receiver's sequence and allocates a fresh copy on success.
//   - Seed constructors start from the empty sequence, where no invariant
//     can be violated, so they return Builder without an error.
//   - Combine splices verbatim and never validates; String never fails.
//   - Safety: never panic; return sentinel errors from mutators only.

package selector

import "strings"

// seed returns a one-fragment Builder. Seeding cannot violate the singleton
// or ordering invariants, so no validation runs here.
// Complexity: O(1), one allocation.
func seed(k Kind, value string) Builder {
	return Builder{frags: []fragment{{kind: k, value: value}}}
}

// Element starts a selector with an element fragment, rendered as value
// with no delimiter, e.g. Element("div").String() == "div".
func Element(value string) Builder { return seed(KindElement, value) }

// ID starts a selector with an id fragment, rendered "#value".
func ID(value string) Builder { return seed(KindID, value) }

// Class starts a selector with a class fragment, rendered ".value".
func Class(value string) Builder { return seed(KindClass, value) }

// Attr starts a selector with an attribute fragment, rendered "[value]".
// The value is inserted verbatim, operators and quoting included,
// e.g. Attr(`href$=".png"`).String() == `[href$=".png"]`.
func Attr(value string) Builder { return seed(KindAttribute, value) }

// PseudoClass starts a selector with a pseudo-class fragment, rendered ":value".
func PseudoClass(value string) Builder { return seed(KindPseudoClass, value) }

// PseudoElement starts a selector with a pseudo-element fragment, rendered "::value".
func PseudoElement(value string) Builder { return seed(KindPseudoElement, value) }

// validate checks the two append invariants of kind k against the
// receiver's current sequence:
//
//   - singleton: a singleton kind must not already occur anywhere in the
//     sequence (the scan spans combined sub-selectors too);
//   - ordering: k's rank must not be strictly below the last fragment's
//     rank; a rank-exempt last fragment (combinator) imposes no constraint.
//
// Complexity: O(n) over the fragment count for the singleton scan, O(1) for
// the ordering check.
func (b Builder) validate(k Kind) error {
	spec := kindTable[k]
	if spec.singleton {
		for _, f := range b.frags {
			if f.kind == k {
				return wrapf(spec.name, ErrDuplicateSingleton, "%q already contains a %s fragment", b.String(), spec.name)
			}
		}
	}
	if n := len(b.frags); n > 0 {
		if last := kindTable[b.frags[n-1].kind]; last.rank != rankExempt && spec.rank < last.rank {
			return wrapf(spec.name, ErrOutOfOrder, "rank %d cannot follow %s (rank %d)", spec.rank, last.name, last.rank)
		}
	}

	return nil
}

// push validates the append and, on success, returns a new Builder whose
// sequence is a fresh copy of the receiver's plus one fragment. The
// receiver is only read: the copy guarantees that two appends onto the same
// value never share a backing array.
// Complexity: O(n) time and space over the fragment count.
func (b Builder) push(k Kind, value string) (Builder, error) {
	if err := b.validate(k); err != nil {
		return Builder{}, err
	}
	next := make([]fragment, len(b.frags), len(b.frags)+1)
	copy(next, b.frags)
	next = append(next, fragment{kind: k, value: value})

	return Builder{frags: next}, nil
}

// Element appends an element fragment.
// Errors: ErrDuplicateSingleton if the sequence already holds an element
// fragment; ErrOutOfOrder if any later-ranked fragment precedes it.
func (b Builder) Element(value string) (Builder, error) { return b.push(KindElement, value) }

// ID appends an id fragment.
// Errors: ErrDuplicateSingleton, ErrOutOfOrder.
func (b Builder) ID(value string) (Builder, error) { return b.push(KindID, value) }

// Class appends a class fragment. Repeated classes are allowed.
// Errors: ErrOutOfOrder.
func (b Builder) Class(value string) (Builder, error) { return b.push(KindClass, value) }

// Attr appends an attribute fragment. Repeated attributes are allowed.
// Errors: ErrOutOfOrder.
func (b Builder) Attr(value string) (Builder, error) { return b.push(KindAttribute, value) }

// PseudoClass appends a pseudo-class fragment. Repeats are allowed.
// Errors: ErrOutOfOrder.
func (b Builder) PseudoClass(value string) (Builder, error) { return b.push(KindPseudoClass, value) }

// PseudoElement appends a pseudo-element fragment.
// Errors: ErrDuplicateSingleton, ErrOutOfOrder.
func (b Builder) PseudoElement(value string) (Builder, error) { return b.push(KindPseudoElement, value) }

// Combine joins left and right around a combinator fragment rendered with a
// single space on each side: left then " combinator " then right.
//
// The combinator string is inserted verbatim — it is NOT validated against
// the CSS set {" ", "+", "~", ">"} — and the splice itself runs no
// singleton or ordering checks. Invariants resume on the next direct
// append: a singleton scan there spans the whole combined sequence.
//
// Neither argument is mutated; the result holds a fresh slice.
// Complexity: O(len(left) + len(right)) time and space.
func Combine(left Builder, combinator string, right Builder) Builder {
	next := make([]fragment, 0, len(left.frags)+1+len(right.frags))
	next = append(next, left.frags...)
	next = append(next, fragment{kind: KindCombinator, value: combinator})
	next = append(next, right.frags...)

	return Builder{frags: next}
}

// String renders the selector: each fragment's value wrapped in its kind's
// delimiter pair, concatenated in sequence order. The zero Builder renders
// to "".
//
// String is pure and idempotent; it never mutates the value and never
// fails. It also satisfies fmt.Stringer.
// Complexity: O(total rendered length).
func (b Builder) String() string {
	var sb strings.Builder
	for _, f := range b.frags {
		spec := kindTable[f.kind]
		sb.WriteString(spec.prefix)
		sb.WriteString(f.value)
		sb.WriteString(spec.suffix)
	}

	return sb.String()
}
