package structdiff

import "fmt"

// DiffOption adjusts sequence differ behavior, zero or more can be
// passed to Slice & SliceOf
type DiffOption func(cfg *diffConfig)

type diffConfig struct {
	maxTableCells int
}

// OptionMaxTableCells caps the size of the common-subsequence table at
// n cells, roughly (len(a)+1)*(len(b)+1). Input pairs above the cap
// skip edit-script calculation & degrade to a full Replace delta,
// keeping diff cost bounded on unbounded-size sequences. Zero (the
// default) means no cap
func OptionMaxTableCells(n int) DiffOption {
	return func(cfg *diffConfig) {
		cfg.maxTableCells = n
	}
}

// SliceOf returns a Differ for slices of a comparable element type,
// matching elements with ==
func SliceOf[E comparable](opts ...DiffOption) Differ[[]E] {
	return Slice[E](func(a, b E) bool { return a == b }, opts...)
}

// Slice returns a Differ for slices, matching elements with eq.
// Elements are treated whole: a changed element becomes a delete plus
// an insert in the edit script, never a partial patch. The script
// minimizes total deleted+inserted elements via a longest common
// subsequence alignment, O(n·m) time & space.
//
// nil & empty slices compare equal; a round trip through an empty
// diff preserves length & elements but not nil-ness
func Slice[E any](eq func(a, b E) bool, opts ...DiffOption) Differ[[]E] {
	cfg := &diffConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &sliceDiffer[E]{eq: eq, cfg: *cfg}
}

type sliceDiffer[E any] struct {
	eq  func(a, b E) bool
	cfg diffConfig
}

func (s *sliceDiffer[E]) Diff(a, b []E) Delta {
	if len(a) == len(b) {
		same := true
		for i := range a {
			if !s.eq(a[i], b[i]) {
				same = false
				break
			}
		}
		if same {
			return NoChange{}
		}
	}
	if s.cfg.maxTableCells > 0 && (len(a)+1)*(len(b)+1) > s.cfg.maxTableCells {
		return Replace{Value: cloneSlice(b)}
	}
	return SequenceEdits{Edits: s.editScript(a, b)}
}

// editScript computes a canonical minimal edit script: adjacent runs
// of the same operation are collapsed, and deletes precede inserts at
// equal-cost alignment points
func (s *sliceDiffer[E]) editScript(a, b []E) []Edit {
	n, m := len(a), len(b)

	// c[i][j] is the length of the longest common subsequence of the
	// suffixes a[i:] & b[j:]
	c := make([][]int, n+1)
	for i := range c {
		c[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case s.eq(a[i], b[j]):
				c[i][j] = c[i+1][j+1] + 1
			case c[i+1][j] >= c[i][j+1]:
				c[i][j] = c[i+1][j]
			default:
				c[i][j] = c[i][j+1]
			}
		}
	}

	var edits []Edit
	run := func(op Op, count int) {
		if l := len(edits) - 1; l >= 0 && edits[l].Op == op {
			edits[l].Count += count
			return
		}
		edits = append(edits, Edit{Op: op, Count: count})
	}
	insert := func(v E) {
		if l := len(edits) - 1; l >= 0 && edits[l].Op == OpInsert {
			edits[l].Values = append(edits[l].Values.([]E), v)
			return
		}
		edits = append(edits, Edit{Op: OpInsert, Values: []E{v}})
	}

	i, j := 0, 0
	for i < n && j < m {
		switch {
		case s.eq(a[i], b[j]):
			run(OpKeep, 1)
			i++
			j++
		case c[i+1][j] >= c[i][j+1]:
			run(OpDelete, 1)
			i++
		default:
			insert(b[j])
			j++
		}
	}
	if i < n {
		run(OpDelete, n-i)
	}
	for ; j < m; j++ {
		insert(b[j])
	}
	return edits
}

func (s *sliceDiffer[E]) Apply(source []E, delta Delta) ([]E, error) {
	switch d := delta.(type) {
	case NoChange:
		return cloneSlice(source), nil
	case Replace:
		v, err := replaceValue[[]E](d)
		if err != nil {
			return nil, err
		}
		return cloneSlice(v), nil
	case SequenceEdits:
		out := make([]E, 0, len(source))
		pos := 0
		for i, e := range d.Edits {
			switch e.Op {
			case OpKeep, OpDelete:
				if e.Count <= 0 {
					return nil, fmt.Errorf("edit %d: %q count %d: %w", i, e.Op, e.Count, ErrSequenceOutOfBounds)
				}
				if pos+e.Count > len(source) {
					return nil, fmt.Errorf("edit %d: %q of %d elements exceeds the %d remaining: %w", i, e.Op, e.Count, len(source)-pos, ErrSequenceOutOfBounds)
				}
				if e.Op == OpKeep {
					out = append(out, source[pos:pos+e.Count]...)
				}
				pos += e.Count
			case OpInsert:
				vals, ok := e.Values.([]E)
				if !ok {
					return nil, fmt.Errorf("edit %d: insert payload is %T: %w", i, e.Values, ErrShapeMismatch)
				}
				if len(vals) == 0 {
					return nil, fmt.Errorf("edit %d: empty insert: %w", i, ErrSequenceOutOfBounds)
				}
				out = append(out, vals...)
			default:
				return nil, fmt.Errorf("edit %d: unknown op %q: %w", i, e.Op, ErrShapeMismatch)
			}
		}
		if pos != len(source) {
			return nil, fmt.Errorf("edit script consumed %d of %d elements: %w", pos, len(source), ErrSequenceOutOfBounds)
		}
		return out, nil
	default:
		return wrongShape[[]E](delta)
	}
}

func cloneSlice[E any](s []E) []E {
	if s == nil {
		return nil
	}
	out := make([]E, len(s))
	copy(out, s)
	return out
}
