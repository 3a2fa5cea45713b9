package entity

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Identifiable is implemented by every record that can appear populated inside another.
type Identifiable interface {
	Identity() string
}

// Ref is a reference the backend sends either as a bare id string or as the
// populated record. ID resolves both shapes.
type Ref[T Identifiable] struct {
	id    string
	value *T
}

// UserRef references a user by id or by populated document.
type UserRef = Ref[User]

// RefID builds an unpopulated reference.
func RefID[T Identifiable](id string) Ref[T] {
	return Ref[T]{id: id}
}

// Populated builds a reference carrying the full record.
func Populated[T Identifiable](v *T) Ref[T] {
	if v == nil {
		return Ref[T]{}
	}

	return Ref[T]{id: (*v).Identity(), value: v}
}

// ID returns the referenced id regardless of shape.
func (r Ref[T]) ID() string {
	if r.value != nil {
		if id := (*r.value).Identity(); id != "" {
			return id
		}
	}

	return r.id
}

// Value returns the populated record, if any.
func (r Ref[T]) Value() (*T, bool) {
	return r.value, r.value != nil
}

// IsPopulated reports whether the backend sent the full record.
func (r Ref[T]) IsPopulated() bool {
	return r.value != nil
}

// IsZero reports whether the reference is empty.
func (r Ref[T]) IsZero() bool {
	return r.value == nil && r.id == ""
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*r = Ref[T]{}

		return nil
	case trimmed[0] == '"':
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return errors.Wrap(err, "decode reference id")
		}
		*r = Ref[T]{id: id}

		return nil
	case trimmed[0] == '{':
		value := new(T)
		if err := json.Unmarshal(trimmed, value); err != nil {
			return errors.Wrap(err, "decode populated reference")
		}
		*r = Populated(value)

		return nil
	default:
		return errors.Errorf("reference must be a string or an object, got %s", string(trimmed))
	}
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	switch {
	case r.value != nil:
		return json.Marshal(r.value)
	case r.id != "":
		return json.Marshal(r.id)
	default:
		return []byte("null"), nil
	}
}
