package events

// Output is a child-to-parent event binding. A parent binds it by passing
// one of its methods as a prop; the zero value is unbound.
type Output[T any] func(T)

// Bound reports whether a parent is listening.
func (o Output[T]) Bound() bool {
	return o != nil
}

// Emit delivers v to the bound handler synchronously. It reports whether
// anyone received the value.
func (o Output[T]) Emit(v T) bool {
	if o == nil {
		return false
	}
	o(v)
	return true
}
