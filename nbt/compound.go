package nbt

import (
	"fmt"
	"strconv"

	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

// NewCompound returns an empty TAG_Compound node.
func NewCompound() *Node {
	return &Node{kind: tag.Compound, index: make(map[string]int)}
}

// Get returns the value stored under name and whether it was present.
func (n *Node) Get(name string) (*Node, bool) {
	if n.Kind() != tag.Compound {
		return nil, false
	}
	i, ok := n.index[name]
	if !ok {
		return nil, false
	}
	return n.values[i], true
}

// IndexOf returns the ordinal position of name within the compound, and
// whether it is present. Position is stable across Put on an existing key
// and changes only for the entry swapped into a removed slot.
func (n *Node) IndexOf(name string) (int, bool) {
	if n.Kind() != tag.Compound {
		return 0, false
	}
	i, ok := n.index[name]
	return i, ok
}

// Put inserts or replaces the value stored under name, returning the
// previous value if one existed. A new key is appended at the end of the
// ordinal sequence; replacing an existing key preserves its position.
func (n *Node) Put(name string, v *Node) (*Node, error) {
	if err := n.checkKind(tag.Compound); err != nil {
		return nil, err
	}
	if i, ok := n.index[name]; ok {
		old := n.values[i]
		n.values[i] = v
		return old, nil
	}
	n.index[name] = len(n.names)
	n.names = append(n.names, name)
	n.values = append(n.values, v)
	return nil, nil
}

// Delete removes name from the compound, returning the removed value and
// whether it was present. Unless name is the last entry by ordinal
// position, the last entry is swapped into the removed slot, so iteration
// order changes around a non-trailing removal.
func (n *Node) Delete(name string) (*Node, bool) {
	if n.Kind() != tag.Compound {
		return nil, false
	}
	i, ok := n.index[name]
	if !ok {
		return nil, false
	}
	removed := n.values[i]
	last := len(n.names) - 1
	if i != last {
		n.names[i] = n.names[last]
		n.values[i] = n.values[last]
		n.index[n.names[i]] = i
	}
	n.names = n.names[:last]
	n.values = n.values[:last]
	delete(n.index, name)
	return removed, true
}

// Names returns the compound's keys in ordinal order. The returned slice
// aliases the node's storage and must not be mutated.
func (n *Node) Names() ([]string, error) {
	if err := n.checkKind(tag.Compound); err != nil {
		return nil, err
	}
	return n.names, nil
}

// Range calls fn for every entry in ordinal order, stopping early if fn
// returns false.
func (n *Node) Range(fn func(name string, v *Node) bool) {
	if n.Kind() != tag.Compound {
		return
	}
	for i, name := range n.names {
		if !fn(name, n.values[i]) {
			return
		}
	}
}

// GetStrict returns the value stored under name, or an error wrapping
// ErrMissing if name is absent, or ErrTypeMismatch if it is present but
// not of kind k.
func (n *Node) GetStrict(name string, k tag.Kind) (*Node, error) {
	if err := n.checkKind(tag.Compound); err != nil {
		return nil, err
	}
	v, ok := n.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissing, name)
	}
	if v.Kind() != k {
		return nil, fmt.Errorf("%w: %q is %s, want %s", ErrTypeMismatch, name, v.Kind(), k)
	}
	return v, nil
}

// GetByteOrDefault returns the byte stored under name, or def if name is
// absent or not a TAG_Byte.
func (n *Node) GetByteOrDefault(name string, def int8) int8 {
	v, ok := n.Get(name)
	if !ok || v.Kind() != tag.Byte {
		return def
	}
	return v.i8
}

// GetShortOrDefault returns the short stored under name, or def if name is
// absent or not a TAG_Short.
func (n *Node) GetShortOrDefault(name string, def int16) int16 {
	v, ok := n.Get(name)
	if !ok || v.Kind() != tag.Short {
		return def
	}
	return v.i16
}

// GetIntOrDefault returns the int stored under name, or def if name is
// absent or not a TAG_Int.
func (n *Node) GetIntOrDefault(name string, def int32) int32 {
	v, ok := n.Get(name)
	if !ok || v.Kind() != tag.Int {
		return def
	}
	return v.i32
}

// GetLongOrDefault returns the long stored under name, or def if name is
// absent or not a TAG_Long.
func (n *Node) GetLongOrDefault(name string, def int64) int64 {
	v, ok := n.Get(name)
	if !ok || v.Kind() != tag.Long {
		return def
	}
	return v.i64
}

// GetFloatOrDefault returns the float stored under name, or def if name is
// absent or not a TAG_Float.
func (n *Node) GetFloatOrDefault(name string, def float32) float32 {
	v, ok := n.Get(name)
	if !ok || v.Kind() != tag.Float {
		return def
	}
	return v.f32
}

// GetDoubleOrDefault returns the double stored under name, or def if name
// is absent or not a TAG_Double.
func (n *Node) GetDoubleOrDefault(name string, def float64) float64 {
	v, ok := n.Get(name)
	if !ok || v.Kind() != tag.Double {
		return def
	}
	return v.f64
}

// GetStringOrDefault returns the string stored under name, or def if name
// is absent or not a TAG_String.
func (n *Node) GetStringOrDefault(name, def string) string {
	v, ok := n.Get(name)
	if !ok || v.Kind() != tag.String {
		return def
	}
	return v.str
}

// GetIntLegacy reproduces the Notchian "legacy compatible" numeric
// accessor: if the stored value is a numeric tag it is coerced (narrowed
// or widened) to int32; if it is a TAG_String, it is parsed as a decimal
// integer, returning 0 on parse failure; any other kind, or a missing key,
// also returns 0.
func (n *Node) GetIntLegacy(name string) int32 {
	v, ok := n.Get(name)
	if !ok {
		return 0
	}
	if f, ok := v.numberValue(); ok {
		return int32(f)
	}
	if v.Kind() == tag.String {
		i, err := strconv.ParseInt(v.str, 10, 32)
		if err != nil {
			return 0
		}
		return int32(i)
	}
	return 0
}
