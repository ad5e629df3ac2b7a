package structdiff

import (
	"encoding/json"
)

// Kind identifies the shape of a Delta. Kinds double as the compact
// type tag used when marshalling deltas to JSON
type Kind string

const (
	// KindNoChange indicates the two compared values were equal
	KindNoChange = Kind(" ")
	// KindReplace carries a full copy of the target value
	KindReplace = Kind("~")
	// KindFields describes per-field changes to a product type
	KindFields = Kind(".")
	// KindVariant describes a sum value switching to a different variant
	KindVariant = Kind("!")
	// KindSameVariant describes field changes within a sum value's
	// current variant
	KindSameVariant = Kind("=")
	// KindSequence carries an edit script for an ordered collection
	KindSequence = Kind("*")
	// KindMap carries per-key edits for an associative collection
	KindMap = Kind("#")
)

// Op defines a single operation within a sequence or map edit
type Op string

const (
	// OpKeep carries elements of the source sequence over unchanged
	OpKeep = Op(" ")
	// OpDelete drops elements from the source sequence, or removes a
	// key from a map
	OpDelete = Op("-")
	// OpInsert splices new elements into a sequence, or sets a key
	// absent from the source map
	OpInsert = Op("+")
	// OpPatch applies a nested delta to the value at a map key
	OpPatch = Op("~")
)

// Delta represents a structural difference between a source &
// destination value of the same type. A Delta is produced by a
// Differ's Diff method, is immutable once produced, and owns full
// copies of any embedded values, so it remains valid after both inputs
// are gone.
//
// Exactly seven shapes exist: NoChange, Replace, FieldsChanged,
// VariantChanged, SameVariant, SequenceEdits & MapEdits. Per-type
// diff/patch code composed from this package's constructors only ever
// produces these shapes, recursively nested.
type Delta interface {
	Kind() Kind
}

// NoChange reports that the compared values were equal. It carries no
// payload
type NoChange struct{}

// Kind returns KindNoChange
func (NoChange) Kind() Kind { return KindNoChange }

// MarshalJSON implements a custom compact JSON marshaller
func (NoChange) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{KindNoChange})
}

// Replace carries a full copy of the destination value, used when a
// wholesale swap is cheaper or safer than a finer-grained description:
// scalar changes, sum-variant changes & oversized sequences
type Replace struct {
	Value interface{}
}

// Kind returns KindReplace
func (Replace) Kind() Kind { return KindReplace }

// MarshalJSON implements a custom compact JSON marshaller
func (r Replace) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{KindReplace, r.Value})
}

// FieldDelta pairs a field identifier with the delta for that field's
// value
type FieldDelta struct {
	Name  string
	Delta Delta
}

// MarshalJSON implements a custom compact JSON marshaller
func (fd FieldDelta) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{fd.Name, fd.Delta})
}

// FieldsChanged describes changes to a product (struct or tuple)
// value. Only changed fields are present, ordered by the product
// type's declared field order. A field absent from the list is
// unchanged
type FieldsChanged struct {
	Fields []FieldDelta
}

// Kind returns KindFields
func (FieldsChanged) Kind() Kind { return KindFields }

// MarshalJSON implements a custom compact JSON marshaller
func (fc FieldsChanged) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{KindFields, fc.Fields})
}

// VariantChanged describes a sum value switching variants. It carries
// the destination variant's tag and a full copy of its payload; a
// field-level delta between two different variants' payload shapes is
// not well-typed
type VariantChanged struct {
	Tag     string
	Payload interface{}
}

// Kind returns KindVariant
func (VariantChanged) Kind() Kind { return KindVariant }

// MarshalJSON implements a custom compact JSON marshaller
func (vc VariantChanged) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{KindVariant, vc.Tag, vc.Payload})
}

// SameVariant describes field changes within a sum value's current
// variant. Tag records the variant the delta was computed against, and
// is checked when the delta is applied
type SameVariant struct {
	Tag    string
	Fields Delta
}

// Kind returns KindSameVariant
func (SameVariant) Kind() Kind { return KindSameVariant }

// MarshalJSON implements a custom compact JSON marshaller
func (sv SameVariant) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{KindSameVariant, sv.Tag, sv.Fields})
}

// Edit is a single operation in a sequence edit script. Keep & delete
// edits consume Count elements from the source sequence; insert edits
// splice in Values, a fresh copy of the inserted run typed as a slice
// of the sequence's element type
type Edit struct {
	Op     Op
	Count  int
	Values interface{}
}

// MarshalJSON implements a custom compact JSON marshaller
func (e Edit) MarshalJSON() ([]byte, error) {
	if e.Op == OpInsert {
		return json.Marshal([]interface{}{e.Op, e.Values})
	}
	return json.Marshal([]interface{}{e.Op, e.Count})
}

// SequenceEdits describes changes to an ordered collection as an edit
// script. Replaying the edits against the source sequence left to
// right, consuming keep & delete counts from the source and splicing
// in insert payloads, yields exactly the destination sequence.
//
// Scripts are canonical: adjacent edits of the same operation are
// collapsed into a single run, and where a delete & insert meet at the
// same alignment point the delete comes first
type SequenceEdits struct {
	Edits []Edit
}

// Kind returns KindSequence
func (SequenceEdits) Kind() Kind { return KindSequence }

// MarshalJSON implements a custom compact JSON marshaller
func (se SequenceEdits) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{KindSequence, se.Edits})
}

// MapEdit is a single per-key operation in a map delta: an insert of a
// key absent from the source, a delete of a key absent from the
// destination, or a patch of a value present in both
type MapEdit struct {
	Op    Op
	Key   interface{}
	Value interface{}
	Delta Delta
}

// MarshalJSON implements a custom compact JSON marshaller
func (me MapEdit) MarshalJSON() ([]byte, error) {
	switch me.Op {
	case OpInsert:
		return json.Marshal([]interface{}{me.Op, me.Key, me.Value})
	case OpPatch:
		return json.Marshal([]interface{}{me.Op, me.Key, me.Delta})
	default:
		return json.Marshal([]interface{}{me.Op, me.Key})
	}
}

// MapEdits describes changes to an associative collection as per-key
// edits, ordered by the formatted key for determinism. Only changed
// keys are present
type MapEdits struct {
	Edits []MapEdit
}

// Kind returns KindMap
func (MapEdits) Kind() Kind { return KindMap }

// MarshalJSON implements a custom compact JSON marshaller
func (me MapEdits) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{KindMap, me.Edits})
}

func isNoChange(d Delta) bool {
	_, ok := d.(NoChange)
	return ok
}
