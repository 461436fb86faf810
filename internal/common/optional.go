package common

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state field: absent, explicit null, or a value.
// The distinction matters for partial updates — null clears a stored value,
// absent leaves it untouched.
type Optional[T any] struct {
	Present bool // field appeared in the input
	Null    bool // field appeared and was null
	Value   T
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

// Null returns a present-but-null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true, Null: true}
}

// IsZero reports absence, letting encoding/json's omitzero suppress the field.
func (o Optional[T]) IsZero() bool {
	return !o.Present
}

// Get returns the value and whether one is set (present and not null).
func (o Optional[T]) Get() (T, bool) {
	if o.Present && !o.Null {
		return o.Value, true
	}
	var zero T
	return zero, false
}

// UnmarshalJSON only runs for fields that appear in the document, so
// Present is always true here; encoding/json leaves absent fields zeroed.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON emits null for the null state and the value otherwise.
// Absent fields must be suppressed by the caller (Optional cannot express
// omitempty on its own).
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
