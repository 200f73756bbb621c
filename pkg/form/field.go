package form

import (
	"encoding/json"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Field pairs an answer value with the identifier of the PDF form field it
// populates. The identifier is fixed by the questionnaire PDF and is assigned
// by the section default constructors; decoding an answers document only ever
// touches the value.
type Field[T any] struct {
	ID    string
	Value T
}

// NewField returns a Field bound to the supplied PDF field identifier.
func NewField[T any](id string) Field[T] {
	return Field[T]{ID: id}
}

// WithValue returns a Field carrying both an identifier and an initial value.
func WithValue[T any](id string, value T) Field[T] {
	return Field[T]{ID: id, Value: value}
}

// Set replaces the field value in place.
func (f *Field[T]) Set(value T) {
	f.Value = value
}

// IsZero reports whether the field holds its type's zero value.
func (f Field[T]) IsZero() bool {
	return reflect.ValueOf(&f.Value).Elem().IsZero()
}

// FieldID implements Leaf.
func (f Field[T]) FieldID() string {
	return f.ID
}

// FieldValue implements Leaf.
func (f Field[T]) FieldValue() any {
	return f.Value
}

// MarshalJSON serialises only the value; identifiers are structural and are
// reinstated by the default constructors on load.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

// UnmarshalJSON decodes into the value, leaving the identifier untouched.
func (f *Field[T]) UnmarshalJSON(raw []byte) error {
	return json.Unmarshal(raw, &f.Value)
}

// MarshalYAML mirrors the JSON behaviour for YAML answer documents.
func (f Field[T]) MarshalYAML() (any, error) {
	return f.Value, nil
}

// UnmarshalYAML mirrors the JSON behaviour for YAML answer documents.
func (f *Field[T]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&f.Value)
}

// Leaf is the reflection-free view of a Field used by the generic PDF mapper
// and the field-path resolver. Every Field instantiation satisfies it.
type Leaf interface {
	FieldID() string
	FieldValue() any
}
