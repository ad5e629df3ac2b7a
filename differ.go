package structdiff

import "sync"

// Differ is the per-type diff/patch capability. One Differ exists per
// concrete diffable type, composed from the shape constructors in this
// package: Scalar & ScalarFunc for leaves, Struct for products, Sum
// for sums, Slice & SliceOf for ordered collections, Map for
// associative collections, Ptr for optional values.
//
// Diff is a total, pure function: it never fails, and repeated calls
// with equal inputs yield equal deltas. Apply either fully succeeds,
// returning a complete reconstructed value, or fails with an error
// matching ErrShapeMismatch or ErrSequenceOutOfBounds and returns no
// partial value. Differs hold no mutable state, so a single Differ and
// the deltas it produces are safe for concurrent use.
type Differ[T any] interface {
	// Diff computes the delta that turns a into b
	Diff(a, b T) Delta
	// Apply reconstructs the value delta was computed toward, given
	// the source value it was computed from
	Apply(source T, delta Delta) (T, error)
}

// Lazy defers construction of a Differ until first use, breaking the
// initialization cycle between differs for mutually recursive type
// definitions. Values themselves must still be acyclic: diffing is a
// structural recursion over trees, cyclic values must be flattened to
// arena-plus-index form by the caller first
func Lazy[T any](make func() Differ[T]) Differ[T] {
	return &lazyDiffer[T]{make: make}
}

type lazyDiffer[T any] struct {
	once sync.Once
	make func() Differ[T]
	d    Differ[T]
}

func (l *lazyDiffer[T]) resolve() Differ[T] {
	l.once.Do(func() {
		l.d = l.make()
		l.make = nil
	})
	return l.d
}

func (l *lazyDiffer[T]) Diff(a, b T) Delta {
	return l.resolve().Diff(a, b)
}

func (l *lazyDiffer[T]) Apply(source T, delta Delta) (T, error) {
	return l.resolve().Apply(source, delta)
}
