package structdiff

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch signals a delta references a field, variant tag, or
// structural shape absent from or inconsistent with the source value's
// type: the delta was computed against a different (or differently
// shaped) value than the one being patched
var ErrShapeMismatch = errors.New("shape mismatch")

// ErrSequenceOutOfBounds signals a sequence edit script doesn't line
// up with the source sequence it is applied to: consumed-element
// counts exceed the source length, an operation count is invalid, or
// the script leaves part of the source unconsumed
var ErrSequenceOutOfBounds = errors.New("sequence out of bounds")

// replaceValue asserts a Replace payload back to the patched type
func replaceValue[T any](r Replace) (T, error) {
	v, ok := r.Value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("replace value is %T: %w", r.Value, ErrShapeMismatch)
	}
	return v, nil
}

// wrongShape builds the failure for a delta shape a differ can't apply
func wrongShape[T any](delta Delta) (T, error) {
	var zero T
	return zero, fmt.Errorf("cannot apply %T delta to %T: %w", delta, zero, ErrShapeMismatch)
}
