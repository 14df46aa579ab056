package entity

// Optional marks whether a field was supplied in a partial input.
// A zero Optional means "absent, keep the current value".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some wraps a supplied value
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Set: true}
}

// Or returns the wrapped value when set, otherwise fallback
func (o Optional[T]) Or(fallback T) T {
	if o.Set {
		return o.Value
	}
	return fallback
}
