// Package selector_test provides benchmarks for Builder operations.
package selector_test

import (
	"testing"

	"github.com/katalvlaran/cssbuild/selector"
)

// BenchmarkAppend_Class measures the copy-on-append cost of one class
// fragment on a fixed three-fragment base.
func BenchmarkAppend_Class(b *testing.B) {
	base, _ := selector.Element("div").ID("main")
	base, _ = base.Class("container")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Each append copies the whole base sequence
		_, _ = base.Class("editable")
	}
}

// BenchmarkCombine measures splicing two compound selectors.
func BenchmarkCombine(b *testing.B) {
	left, _ := selector.Element("div").ID("main")
	right, _ := selector.Element("table").ID("data")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = selector.Combine(left, "+", right)
	}
}

// BenchmarkString measures rendering a six-fragment compound selector.
func BenchmarkString(b *testing.B) {
	s, _ := selector.Element("li").ID("item")
	s, _ = s.Class("slide")
	s, _ = s.Attr("active")
	s, _ = s.PseudoClass("hover")
	s, _ = s.PseudoElement("first-line")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.String()
	}
}
