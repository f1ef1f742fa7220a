// Package selector provides an immutable, type-checked builder for CSS
// selector strings. It assembles compound selectors from typed fragments
// (element, id, class, attribute, pseudo-class, pseudo-element) and joins
// compound selectors into complex ones with combinators.
//
// The package offers the following key components:
//
//   - Fragment kinds (Kind) with a static metadata table mapping each kind
//     to its rendering delimiters, its order rank, and its singleton flag.
//   - Seed constructors: Element, ID, Class, Attr, PseudoClass,
//     PseudoElement — each starts a fresh one-fragment Builder.
//   - Builder mutators of the same six names — each validates the append
//     against the accumulated sequence and returns a NEW Builder; the
//     receiver is never modified.
//   - Combine — splices two Builders around a combinator fragment rendered
//     with one space on each side. The combinator string is inserted
//     verbatim and is not restricted to the CSS set.
//   - String — renders the fragment sequence to the final selector text.
//
// Guarantees:
//
//   - Immutability: every successful mutator allocates a fresh fragment
//     sequence, so values may be shared across goroutines without locks.
//   - Singleton enforcement: at most one element, one id, and one
//     pseudo-element fragment per accumulated sequence, including across
//     Combine'd sub-selectors.
//   - Ordering enforcement: direct appends must not decrease the order rank
//     relative to the last fragment (equal rank is fine); combinators are
//     rank-exempt.
//   - Structured sentinel errors (ErrDuplicateSingleton, ErrOutOfOrder)
//     branchable via errors.Is; no panics at runtime.
//   - Combine and String never fail.
//
// See individual function documentation for detailed contracts and
// performance notes.
package selector
