package models

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Opt is an optional column value in an Insert or Update shape.
// An unset Opt leaves the column out of the statement, so the database
// default (on insert) or the stored value (on update) applies. A set Opt
// writes its value; for pointer types a nil value writes NULL.
type Opt[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Opt holding v
func Some[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Set: true}
}

// Null returns a set Opt that writes NULL
func Null[T any]() Opt[*T] {
	return Opt[*T]{Set: true}
}

// Ptr returns a set Opt holding a pointer to v
func Ptr[T any](v T) Opt[*T] {
	return Opt[*T]{Value: &v, Set: true}
}

// Get returns the value and whether it was set
func (o Opt[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// IsZero reports whether the Opt is unset. Used by the omitzero json option.
func (o Opt[T]) IsZero() bool {
	return !o.Set
}

// MarshalJSON encodes the held value
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON marks the Opt as set whenever the key is present, including
// an explicit null.
func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Opt[T]) columnValue() (any, bool) {
	return o.Value, o.Set
}

type optional interface {
	columnValue() (any, bool)
}

var optionalType = reflect.TypeFor[optional]()

// IsOpt reports whether t is an instantiation of Opt
func IsOpt(t reflect.Type) bool {
	return t.Implements(optionalType)
}
