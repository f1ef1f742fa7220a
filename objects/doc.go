// Package objects provides two small standalone utilities that sit beside
// the selector builder: a rectangle value with area computation, and a pair
// of JSON round-trip helpers for plain data values.
//
// Key components:
//
//   - Rect / NewRect: a width×height value type with Area().
//   - ToJSON: marshal any value to its JSON text.
//   - FromJSON[T]: unmarshal JSON text into a typed zero value; the type
//     parameter plays the role of the target shape.
//
// Guarantees:
//
//   - Pure values: Rect has no hidden state; Area never mutates.
//   - Faithful pass-through: JSON errors from encoding/json are returned
//     unwrapped, so callers can inspect them directly.
//
// The selector package does not depend on this one.
package objects
