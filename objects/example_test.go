package objects_test

import (
	"fmt"

	"github.com/katalvlaran/cssbuild/objects"
)

// ExampleFromJSON restores a typed Rect from its JSON text.
func ExampleFromJSON() {
	text, _ := objects.ToJSON(objects.NewRect(10, 20))
	r, _ := objects.FromJSON[objects.Rect](text)

	fmt.Println(text)
	fmt.Println(r.Area())
	// Output:
	// {"width":10,"height":20}
	// 200
}
