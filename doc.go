// Package structdiff computes compact, structural deltas between two
// values of the same Go type, and reconstructs one value from the
// other plus that delta. It's intended for applications that need to
// transmit, store, or inspect "what changed" between two structured
// values more cheaply than shipping full copies: state
// synchronization, undo/redo logs, configuration versioning,
// incremental persistence.
//
// Unlike document differs that compare decoded JSON trees, structdiff
// operates on typed in-memory values. A Differ is composed per type
// from shape constructors that mirror the type's structure: Scalar for
// leaves, Struct for products, Sum for sum-encoded interface types,
// Slice for ordered collections, Map for associative collections, Ptr
// for optional values. Each constructor recursively delegates to the
// differs of the types it contains, so the composition for a type is
// mechanical; a code generator (or hand-written per-type wiring, as in
// this package's tests) produces it from the type's declaration.
//
// Diffing never fails and always yields one of the Delta shapes
// declared in this package. Applying a delta is all-or-nothing: it
// returns the fully reconstructed value, or an error matching
// ErrShapeMismatch or ErrSequenceOutOfBounds when the delta was
// computed against a different value than the one being patched.
// Deltas own copies of embedded payloads at the level the differs
// operate on; reference types buried inside elements follow Go value
// semantics and may share backing storage with the diffed inputs.
//
// All operations are synchronous pure functions with no shared mutable
// state. A delta, once produced, may be applied to any number of
// source values from any number of goroutines.
package structdiff
