package dto

import "encoding/json"

// Optional is a three-way JSON field: absent, explicit null, or a value.
// Partial updates need the distinction — only fields the client actually
// sent may be written, and an explicit null clears the column.
type Optional[T any] struct {
	Present bool
	Valid   bool
	Value   T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		var zero T
		o.Valid = false
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a pointer, nil when the field was absent or null.
func (o Optional[T]) Ptr() *T {
	if o.Present && o.Valid {
		v := o.Value
		return &v
	}
	return nil
}

// Some builds a present, non-null Optional. Test helper mostly.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Valid: true, Value: v}
}

// Null builds a present but explicitly null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}
