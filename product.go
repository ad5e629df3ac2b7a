package structdiff

import "fmt"

// Field describes one field of a product type T: an identifier plus
// diff & patch behavior bound to the field's own Differ. Build Fields
// with FieldOf
type Field[T any] struct {
	name  string
	diff  func(a, b T) Delta
	apply func(dst *T, delta Delta) error
}

// FieldOf binds a field accessor and the field type's Differ into a
// Field usable with Struct. get must return a pointer to the field
// within its receiver; the name is the identifier recorded in
// FieldsChanged deltas (tuple-style products use positional names
// "0", "1", ...)
func FieldOf[T, F any](name string, get func(*T) *F, differ Differ[F]) Field[T] {
	return Field[T]{
		name: name,
		diff: func(a, b T) Delta {
			return differ.Diff(*get(&a), *get(&b))
		},
		apply: func(dst *T, delta Delta) error {
			out, err := differ.Apply(*get(dst), delta)
			if err != nil {
				return err
			}
			*get(dst) = out
			return nil
		},
	}
}

// Struct returns a Differ for a product type with the given fields.
// Pass fields in the type's declared order: FieldsChanged output
// follows the order given here. A zero-field call is valid & describes
// a unit type whose values never differ.
//
// Duplicate field names are programmer error & panic
func Struct[T any](fields ...Field[T]) Differ[T] {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, dup := byName[f.name]; dup {
			panic(fmt.Sprintf("structdiff: duplicate field %q", f.name))
		}
		byName[f.name] = i
	}
	return &structDiffer[T]{fields: fields, byName: byName}
}

type structDiffer[T any] struct {
	fields []Field[T]
	byName map[string]int
}

func (s *structDiffer[T]) Diff(a, b T) Delta {
	var changed []FieldDelta
	for _, f := range s.fields {
		if d := f.diff(a, b); !isNoChange(d) {
			changed = append(changed, FieldDelta{Name: f.name, Delta: d})
		}
	}
	if len(changed) == 0 {
		return NoChange{}
	}
	return FieldsChanged{Fields: changed}
}

func (s *structDiffer[T]) Apply(source T, delta Delta) (T, error) {
	switch d := delta.(type) {
	case NoChange:
		return source, nil
	case Replace:
		return replaceValue[T](d)
	case FieldsChanged:
		var zero T
		out := source
		for _, fd := range d.Fields {
			i, ok := s.byName[fd.Name]
			if !ok {
				return zero, fmt.Errorf("unknown field %q: %w", fd.Name, ErrShapeMismatch)
			}
			if err := s.fields[i].apply(&out, fd.Delta); err != nil {
				return zero, fmt.Errorf("field %q: %w", fd.Name, err)
			}
		}
		return out, nil
	default:
		return wrongShape[T](delta)
	}
}
