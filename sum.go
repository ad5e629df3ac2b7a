package structdiff

import "fmt"

// Variant describes one variant of a sum type T: a tag plus diff,
// patch & construction behavior bound to the variant's payload type.
// Build Variants with VariantOf
type Variant[T any] struct {
	tag     string
	diff    func(a, b T) Delta
	apply   func(src T, fields Delta) (T, error)
	payload func(T) interface{}
	build   func(payload interface{}) (T, error)
}

// VariantOf binds a variant's payload accessors and the payload type's
// Differ into a Variant usable with Sum. unwrap extracts the payload
// from a value known to hold this variant, wrap rebuilds a sum value
// from a payload. Unit variants use a zero-field Struct differ over
// their empty payload; tuple-style payloads use positional field names
func VariantOf[T, P any](tag string, unwrap func(T) P, wrap func(P) T, payload Differ[P]) Variant[T] {
	return Variant[T]{
		tag: tag,
		diff: func(a, b T) Delta {
			return payload.Diff(unwrap(a), unwrap(b))
		},
		apply: func(src T, fields Delta) (T, error) {
			out, err := payload.Apply(unwrap(src), fields)
			if err != nil {
				var zero T
				return zero, err
			}
			return wrap(out), nil
		},
		payload: func(v T) interface{} {
			return unwrap(v)
		},
		build: func(pl interface{}) (T, error) {
			p, ok := pl.(P)
			if !ok {
				var zero T
				return zero, fmt.Errorf("variant %q payload is %T: %w", tag, pl, ErrShapeMismatch)
			}
			return wrap(p), nil
		},
	}
}

// Sum returns a Differ for a sum type. tagOf reports the active
// variant of a value and must return one of the declared variant tags:
// an undeclared tag surfacing during Diff is programmer error & panics.
//
// When two values hold different variants the delta is a full
// VariantChanged replacement. When they hold the same variant the
// variant's payload is diffed as a product & wrapped in SameVariant,
// collapsing to NoChange when the payloads are equal
func Sum[T any](tagOf func(T) string, variants ...Variant[T]) Differ[T] {
	byTag := make(map[string]int, len(variants))
	for i, v := range variants {
		if _, dup := byTag[v.tag]; dup {
			panic(fmt.Sprintf("structdiff: duplicate variant %q", v.tag))
		}
		byTag[v.tag] = i
	}
	return &sumDiffer[T]{tagOf: tagOf, variants: variants, byTag: byTag}
}

type sumDiffer[T any] struct {
	tagOf    func(T) string
	variants []Variant[T]
	byTag    map[string]int
}

func (s *sumDiffer[T]) variant(tag string) (Variant[T], bool) {
	i, ok := s.byTag[tag]
	if !ok {
		return Variant[T]{}, false
	}
	return s.variants[i], true
}

func (s *sumDiffer[T]) Diff(a, b T) Delta {
	ta, tb := s.tagOf(a), s.tagOf(b)
	vb, ok := s.variant(tb)
	if !ok {
		panic(fmt.Sprintf("structdiff: undeclared variant %q", tb))
	}
	if ta != tb {
		return VariantChanged{Tag: tb, Payload: vb.payload(b)}
	}
	inner := vb.diff(a, b)
	if isNoChange(inner) {
		return NoChange{}
	}
	return SameVariant{Tag: tb, Fields: inner}
}

func (s *sumDiffer[T]) Apply(source T, delta Delta) (T, error) {
	var zero T
	switch d := delta.(type) {
	case NoChange:
		return source, nil
	case Replace:
		return replaceValue[T](d)
	case VariantChanged:
		v, ok := s.variant(d.Tag)
		if !ok {
			return zero, fmt.Errorf("unknown variant %q: %w", d.Tag, ErrShapeMismatch)
		}
		return v.build(d.Payload)
	case SameVariant:
		if tag := s.tagOf(source); tag != d.Tag {
			return zero, fmt.Errorf("delta for variant %q applied to variant %q: %w", d.Tag, tag, ErrShapeMismatch)
		}
		v, ok := s.variant(d.Tag)
		if !ok {
			return zero, fmt.Errorf("unknown variant %q: %w", d.Tag, ErrShapeMismatch)
		}
		out, err := v.apply(source, d.Fields)
		if err != nil {
			return zero, fmt.Errorf("variant %q: %w", d.Tag, err)
		}
		return out, nil
	default:
		return wrongShape[T](delta)
	}
}
