package objects

import "encoding/json"

// ToJSON marshals v to its JSON text.
//
// Errors from encoding/json (unsupported types, cyclic values) are returned
// as-is.
// Complexity: O(size of v).
func ToJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// FromJSON unmarshals data into a zero value of T and returns it. The type
// parameter supplies the target shape, so callers write
//
//	r, err := objects.FromJSON[objects.Rect](`{"width":10,"height":20}`)
//
// and get a typed value back without an intermediate pointer dance.
// On error the zero value of T is returned alongside the encoding/json
// error, untouched.
// Complexity: O(len(data)).
func FromJSON[T any](data string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		var zero T

		return zero, err
	}

	return v, nil
}
