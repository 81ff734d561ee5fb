// Package nbt provides the in-memory value model for Named Binary Tag data.
//
// # Overview
//
// A Node is a tagged union over the thirteen NBT tag kinds (see package
// tag). Scalars are stored unboxed in dedicated fields; List and Compound
// nodes hold their children directly rather than through an interface,
// which keeps the whole tree allocation-cheap and lets callers dispatch on
// Kind() instead of on a Go type switch.
//
// Compound holds its entries in both a slice (for stable ordinal iteration
// order) and a map (for O(1) name lookup). Removing an entry other than the
// last one swaps the last entry into the removed slot, so iteration order
// is preserved except around a removal — this is documented, not
// accidental.
//
// List enforces a single "element kind" for all of its children, fixed by
// the kind of the first element ever appended (or TAG_End for a list that
// has never had an element). Appending a Node of a different kind returns
// ErrTypeMismatch.
//
// Byte/Int/Long arrays store unboxed Go slices (int8/int32/int64) rather
// than []*Node, matching the wire format's fixed-width element layout.
package nbt
