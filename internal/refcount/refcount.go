// Package refcount implements the shared-ownership handle discipline
// requires for paths, paints, surfaces, canvases, and font
// faces: `_reference` increments and returns the same handle, `_destroy`
// decrements and releases on reaching zero, and every handle is safe to
// pass nil. Grounded on gogpu-gg's Context, which wraps its drawable state
// behind a small owning handle rather than AGG's raw value types (the
// teacher predates Go generics and has no equivalent of its own).
package refcount

// Box is a reference-counted wrapper around a value of type T. The zero
// Box is not usable; construct with New.
type Box[T any] struct {
	value   T
	release func(*T)
	count   int
}

// New wraps value in a Box with an initial reference count of 1. release,
// if non-nil, runs once when the count reaches zero.
func New[T any](value T, release func(*T)) *Box[T] {
	return &Box[T]{value: value, release: release, count: 1}
}

// Reference increments the count and returns the same Box, matching
// "`_reference` increments and returns the same handle". Safe
// to call on a nil Box (a no-op, returning nil).
func (b *Box[T]) Reference() *Box[T] {
	if b == nil {
		return nil
	}
	b.count++
	return b
}

// Destroy decrements the count and releases the inner value once it
// reaches zero. Safe to call on a nil Box.
func (b *Box[T]) Destroy() {
	if b == nil {
		return
	}
	b.count--
	if b.count <= 0 && b.release != nil {
		b.release(&b.value)
		b.release = nil
	}
}

// Count reports the current reference count (0 once released).
func (b *Box[T]) Count() int {
	if b == nil {
		return 0
	}
	return b.count
}

// Value returns a pointer to the wrapped value. Callers must not retain
// it past a Destroy call that drops the count to zero.
func (b *Box[T]) Value() *T {
	if b == nil {
		return nil
	}
	return &b.value
}
