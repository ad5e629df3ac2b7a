package structdiff

import (
	"time"

	"github.com/google/uuid"
)

// Scalar returns a Differ for atomic values compared with ==: numbers,
// strings, booleans & any other comparable leaf type. Equal values
// diff to NoChange, anything else to a full Replace
func Scalar[T comparable]() Differ[T] {
	return ScalarFunc[T](func(a, b T) bool { return a == b })
}

// ScalarFunc returns a leaf Differ using eq as the equality relation,
// for atomic types whose == is wrong or unavailable
func ScalarFunc[T any](eq func(a, b T) bool) Differ[T] {
	return scalarDiffer[T]{eq: eq}
}

// TimeDiffer returns a leaf Differ for time.Time using time.Time.Equal,
// so instants compare equal across locations & monotonic clock readings
func TimeDiffer() Differ[time.Time] {
	return ScalarFunc(time.Time.Equal)
}

// UUIDDiffer returns a leaf Differ for uuid.UUID values
func UUIDDiffer() Differ[uuid.UUID] {
	return Scalar[uuid.UUID]()
}

type scalarDiffer[T any] struct {
	eq func(a, b T) bool
}

func (s scalarDiffer[T]) Diff(a, b T) Delta {
	if s.eq(a, b) {
		return NoChange{}
	}
	return Replace{Value: b}
}

func (s scalarDiffer[T]) Apply(source T, delta Delta) (T, error) {
	switch d := delta.(type) {
	case NoChange:
		return source, nil
	case Replace:
		return replaceValue[T](d)
	default:
		return wrongShape[T](delta)
	}
}
