package structdiff

import "reflect"

// Stats holds statistical metadata about a delta
type Stats struct {
	Replaces       int `json:"replaces,omitempty"`       // count of full value replacements
	FieldChanges   int `json:"fieldChanges,omitempty"`   // count of changed product fields
	VariantChanges int `json:"variantChanges,omitempty"` // count of sum values switching variants
	Keeps          int `json:"keeps,omitempty"`          // sequence elements carried over
	Inserts        int `json:"inserts,omitempty"`        // sequence elements inserted
	Deletes        int `json:"deletes,omitempty"`        // sequence elements deleted
	Sets           int `json:"sets,omitempty"`           // map keys set
	Removes        int `json:"removes,omitempty"`        // map keys removed
}

// EditCount returns the total number of sequence elements inserted or
// deleted, the combined edit distance of all edit scripts in the delta
func (s Stats) EditCount() int {
	return s.Inserts + s.Deletes
}

// CalcStats walks a delta, tallying each change it describes
func CalcStats(d Delta) *Stats {
	st := &Stats{}
	calcStats(d, st)
	return st
}

func calcStats(d Delta, st *Stats) {
	switch d := d.(type) {
	case Replace:
		st.Replaces++
	case FieldsChanged:
		st.FieldChanges += len(d.Fields)
		for _, f := range d.Fields {
			calcStats(f.Delta, st)
		}
	case VariantChanged:
		st.VariantChanges++
	case SameVariant:
		calcStats(d.Fields, st)
	case SequenceEdits:
		for _, e := range d.Edits {
			switch e.Op {
			case OpKeep:
				st.Keeps += e.Count
			case OpDelete:
				st.Deletes += e.Count
			case OpInsert:
				st.Inserts += insertLen(e.Values)
			}
		}
	case MapEdits:
		for _, e := range d.Edits {
			switch e.Op {
			case OpInsert:
				st.Sets++
			case OpDelete:
				st.Removes++
			case OpPatch:
				calcStats(e.Delta, st)
			}
		}
	}
}

// insertLen reports the element count of an insert payload, which is
// typed as a slice of the sequence's element type
func insertLen(values interface{}) int {
	if values == nil {
		return 0
	}
	return reflect.ValueOf(values).Len()
}
