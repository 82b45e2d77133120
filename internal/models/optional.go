package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state field for partial updates: absent, explicit null, or a value.
// The zero value is absent, so a field missing from a JSON body stays absent.
type Optional[T any] struct {
	set   bool
	null  bool
	value T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{set: true, value: value}
}

func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

func (o Optional[T]) IsSet() bool { return o.set }

func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Get returns the carried value; ok is false when absent or null.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// Merge applies o over a non-nullable current value. Callers reject explicit null first.
func Merge[T any](o Optional[T], current T) T {
	if value, ok := o.Get(); ok {
		return value
	}
	return current
}

// MergeNullable applies o over a nullable current value: absent keeps it, null clears it.
func MergeNullable[T any](o Optional[T], current *T) *T {
	switch {
	case !o.set:
		return current
	case o.null:
		return nil
	default:
		value := o.value
		return &value
	}
}
