package selector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cssbuild/selector"
)

// ExampleID builds a compound selector from an id and two class fragments.
//
// Scenario:
//
//	#main.container.editable — one id clause, then repeated class clauses.
//	Equal ranks are always legal, so stacking classes never fails.
//
// Complexity: O(n) per append, O(n) to render.
func ExampleID() {
	b, err := selector.ID("main").Class("container")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	b, err = b.Class("editable")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(b)
	// Output:
	// #main.container.editable
}

// ExampleCombine joins two compound selectors with the adjacent-sibling
// combinator. The symbol is padded with one space on each side.
func ExampleCombine() {
	left, _ := selector.Element("div").ID("main")
	right, _ := selector.Element("table").ID("data")

	fmt.Println(selector.Combine(left, "+", right))
	// Output:
	// div#main + table#data
}

// ExampleBuilder_Element demonstrates the singleton contract: a compound
// selector may name at most one element, and the violation is reported via
// a branchable sentinel.
func ExampleBuilder_Element() {
	b, _ := selector.Element("div").ID("main")

	_, err := b.Element("span")
	fmt.Println(errors.Is(err, selector.ErrDuplicateSingleton))
	// Output:
	// true
}

// ExampleBuilder_Class demonstrates the ordering contract: class fragments
// (rank 3) may not follow attribute fragments (rank 4).
func ExampleBuilder_Class() {
	_, err := selector.Attr("x").Class("y")
	fmt.Println(errors.Is(err, selector.ErrOutOfOrder))
	// Output:
	// true
}
