package structdiff

import "fmt"

// Ptr returns a Differ for optional values modelled as pointers. Two
// nils diff to NoChange, a nil on either side alone diffs to a full
// Replace, and two non-nil pointers delegate to elem, so the delta for
// a present-on-both-sides value is the element's own delta. Element
// deltas that are themselves a full Replace are lifted to the pointer
// level, keeping Replace payloads uniformly *T typed
func Ptr[T any](elem Differ[T]) Differ[*T] {
	return &ptrDiffer[T]{elem: elem}
}

type ptrDiffer[T any] struct {
	elem Differ[T]
}

func (p *ptrDiffer[T]) Diff(a, b *T) Delta {
	switch {
	case a == nil && b == nil:
		return NoChange{}
	case a == nil || b == nil:
		return Replace{Value: clonePtr(b)}
	}
	d := p.elem.Diff(*a, *b)
	if r, ok := d.(Replace); ok {
		if v, ok := r.Value.(T); ok {
			return Replace{Value: &v}
		}
	}
	return d
}

func (p *ptrDiffer[T]) Apply(source *T, delta Delta) (*T, error) {
	switch d := delta.(type) {
	case NoChange:
		return clonePtr(source), nil
	case Replace:
		v, err := replaceValue[*T](d)
		if err != nil {
			return nil, err
		}
		return clonePtr(v), nil
	default:
		if source == nil {
			return nil, fmt.Errorf("%T delta applied to nil pointer: %w", delta, ErrShapeMismatch)
		}
		out, err := p.elem.Apply(*source, delta)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
