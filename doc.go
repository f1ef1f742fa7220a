// Package cssbuild is a small toolkit for assembling CSS selector strings
// from typed, validated fragments — plus a couple of standalone data
// utilities that grew up alongside it.
//
// 🚀 What is cssbuild?
//
//	A compact, immutable-value library that brings together:
//		• Typed fragments: element, id, class, attribute, pseudo-class,
//		  pseudo-element — each with its own delimiter and order rank
//		• Invariant checks: singleton kinds and non-decreasing rank,
//		  rejected early with branchable sentinel errors
//		• Combinators: splice two selectors with any symbol, verbatim
//		• Plain-data helpers: rectangle values and JSON round-tripping
//
// ✨ Why choose cssbuild?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – copy-on-append immutability, no locks needed
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – errors.Is on two sentinels covers every failure
//
// Under the hood, everything is organized under two subpackages:
//
//	selector/ — the Builder value type, Combine, and rendering
//	objects/  — Rect with Area(), ToJSON/FromJSON helpers
//
// Quick example:
//
//	left, _ := selector.Element("div").ID("main")
//	right, _ := selector.Element("table").ID("data")
//	fmt.Println(selector.Combine(left, "+", right))
//	// div#main + table#data
//
// Dive into the package docs for full contracts, edge cases, and the
// ordering rules the builder enforces.
//
//	go get github.com/katalvlaran/cssbuild
package cssbuild
