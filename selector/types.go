// Package selector declares the fragment model: the Kind enumeration, the
// static per-kind metadata table, the fragment record, and the Builder
// value type.
//
// The metadata table is the single source of truth for rendering and
// ordering; neither fragments nor Builders carry per-instance copies of it.
package selector

// Kind identifies one category of selector fragment.
//
// The six concrete kinds carry an order rank 1..6 that fixes their relative
// position inside a compound selector. KindCombinator is rank-exempt: it is
// produced only by Combine and never participates in ordering checks.
type Kind uint8

const (
	// KindElement is a bare element name, e.g. "div". Singleton.
	KindElement Kind = iota

	// KindID is an id clause, rendered "#value". Singleton.
	KindID

	// KindClass is a class clause, rendered ".value".
	KindClass

	// KindAttribute is an attribute clause, rendered "[value]".
	KindAttribute

	// KindPseudoClass is a pseudo-class clause, rendered ":value".
	KindPseudoClass

	// KindPseudoElement is a pseudo-element clause, rendered "::value". Singleton.
	KindPseudoElement

	// KindCombinator joins two compound selectors, rendered " value ".
	KindCombinator
)

// rankExempt marks kinds that never take part in ordering checks.
const rankExempt = 0

// kindSpec holds the static metadata of one Kind: its canonical name (used
// as the error-context prefix), the delimiter pair wrapped around the
// fragment value, the order rank, and whether the kind is a singleton.
type kindSpec struct {
	name      string
	prefix    string
	suffix    string
	rank      int
	singleton bool
}

// kindTable maps each Kind to its metadata. Indexed by the Kind value;
// the combinator entry renders as " value " via its delimiter pair.
var kindTable = [...]kindSpec{
	KindElement:       {name: "Element", prefix: "", suffix: "", rank: 1, singleton: true},
	KindID:            {name: "ID", prefix: "#", suffix: "", rank: 2, singleton: true},
	KindClass:         {name: "Class", prefix: ".", suffix: "", rank: 3, singleton: false},
	KindAttribute:     {name: "Attr", prefix: "[", suffix: "]", rank: 4, singleton: false},
	KindPseudoClass:   {name: "PseudoClass", prefix: ":", suffix: "", rank: 5, singleton: false},
	KindPseudoElement: {name: "PseudoElement", prefix: "::", suffix: "", rank: 6, singleton: true},
	KindCombinator:    {name: "Combinator", prefix: " ", suffix: " ", rank: rankExempt, singleton: false},
}

// String returns the canonical name of the Kind, e.g. "PseudoClass".
// Complexity: O(1).
func (k Kind) String() string {
	if int(k) >= len(kindTable) {
		return "Unknown"
	}

	return kindTable[k].name
}

// fragment is one atomic piece of a selector: a kind plus the literal value
// supplied by the caller (or the combinator symbol). Fragments are plain
// data; all behavior lives on Builder and in kindTable.
type fragment struct {
	kind  Kind
	value string
}

// Builder is an immutable ordered sequence of fragments.
//
// The zero Builder is valid and renders to the empty string, but values are
// normally seeded through Element/ID/Class/Attr/PseudoClass/PseudoElement
// or produced by Combine. Every mutator returns a new Builder backed by a
// freshly allocated slice, so no operation can observe or cause mutation of
// a value another caller holds.
type Builder struct {
	frags []fragment
}

// Len reports the number of fragments accumulated so far, combinator
// fragments included.
// Complexity: O(1).
func (b Builder) Len() int {
	return len(b.frags)
}
