package types

import "encoding/json"

// Opt is a field of a partial update. The zero value leaves the target
// unchanged; any present JSON value, null included, overwrites it.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns a set Opt holding v.
func Some[T any](v T) Opt[T] { return Opt[T]{value: v, set: true} }

// Get returns the value and whether it was set.
func (o Opt[T]) Get() (T, bool) { return o.value, o.set }

// IsSet reports whether the field carries a value.
func (o Opt[T]) IsSet() bool { return o.set }

// IsZero lets `omitzero` drop unset fields when encoding.
func (o Opt[T]) IsZero() bool { return !o.set }

// Apply writes the value into dst when set and reports whether it did.
func (o Opt[T]) Apply(dst *T) bool {
	if !o.set {
		return false
	}
	*dst = o.value
	return true
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	o.set = true
	var zero T
	o.value = zero
	if string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, &o.value)
}
