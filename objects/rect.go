package objects

// Rect is a plain width×height rectangle.
//
// Fields are exported so the value round-trips through the JSON helpers
// unchanged; Area is derived and never stored.
type Rect struct {
	// Width is the horizontal extent.
	Width float64 `json:"width"`

	// Height is the vertical extent.
	Height float64 `json:"height"`
}

// NewRect returns a Rect with the given dimensions.
// Complexity: O(1).
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Area reports width × height.
// Complexity: O(1); never mutates the receiver.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}
