package structdiff

import (
	"fmt"
	"sort"
)

// Map returns a Differ for maps, recursing into elem for values
// present under the same key on both sides. Keys only in the source
// become deletes, keys only in the destination become inserts. Edits
// are ordered by the formatted key so repeated diffs of equal inputs
// yield equal deltas
func Map[K comparable, V any](elem Differ[V]) Differ[map[K]V] {
	return &mapDiffer[K, V]{elem: elem}
}

type mapDiffer[K comparable, V any] struct {
	elem Differ[V]
}

func (m *mapDiffer[K, V]) Diff(a, b map[K]V) Delta {
	keys := make([]K, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})

	var edits []MapEdit
	for _, k := range keys {
		av, inA := a[k]
		bv, inB := b[k]
		switch {
		case !inB:
			edits = append(edits, MapEdit{Op: OpDelete, Key: k})
		case !inA:
			edits = append(edits, MapEdit{Op: OpInsert, Key: k, Value: bv})
		default:
			if d := m.elem.Diff(av, bv); !isNoChange(d) {
				edits = append(edits, MapEdit{Op: OpPatch, Key: k, Delta: d})
			}
		}
	}
	if len(edits) == 0 {
		return NoChange{}
	}
	return MapEdits{Edits: edits}
}

func (m *mapDiffer[K, V]) Apply(source map[K]V, delta Delta) (map[K]V, error) {
	switch d := delta.(type) {
	case NoChange:
		return cloneMap(source), nil
	case Replace:
		v, err := replaceValue[map[K]V](d)
		if err != nil {
			return nil, err
		}
		return cloneMap(v), nil
	case MapEdits:
		out := make(map[K]V, len(source))
		for k, v := range source {
			out[k] = v
		}
		for _, e := range d.Edits {
			k, ok := e.Key.(K)
			if !ok {
				return nil, fmt.Errorf("map key is %T: %w", e.Key, ErrShapeMismatch)
			}
			switch e.Op {
			case OpDelete:
				if _, ok := out[k]; !ok {
					return nil, fmt.Errorf("delete of missing key %v: %w", k, ErrShapeMismatch)
				}
				delete(out, k)
			case OpInsert:
				if _, ok := out[k]; ok {
					return nil, fmt.Errorf("insert of existing key %v: %w", k, ErrShapeMismatch)
				}
				v, okv := e.Value.(V)
				if !okv {
					return nil, fmt.Errorf("value for key %v is %T: %w", k, e.Value, ErrShapeMismatch)
				}
				out[k] = v
			case OpPatch:
				src, ok := out[k]
				if !ok {
					return nil, fmt.Errorf("patch of missing key %v: %w", k, ErrShapeMismatch)
				}
				patched, err := m.elem.Apply(src, e.Delta)
				if err != nil {
					return nil, fmt.Errorf("key %v: %w", k, err)
				}
				out[k] = patched
			default:
				return nil, fmt.Errorf("unknown map edit op %q: %w", e.Op, ErrShapeMismatch)
			}
		}
		return out, nil
	default:
		return wrongShape[map[K]V](delta)
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
