package nbt

import (
	"fmt"

	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

// Node is a single NBT value: a scalar, a primitive array, a list, or a
// compound. The zero Node is a TAG_End sentinel.
type Node struct {
	kind tag.Kind

	i8  int8
	i16 int16
	i32 int32
	i64 int64
	f32 float32
	f64 float64
	str string

	byteArr []int8
	intArr  []int32
	longArr []int64

	listKind tag.Kind
	items    []*Node

	names  []string
	values []*Node
	index  map[string]int
}

// Kind reports the tag kind of n.
func (n *Node) Kind() tag.Kind {
	if n == nil {
		return tag.End
	}
	return n.kind
}

func (n *Node) checkKind(k tag.Kind) error {
	if n.Kind() != k {
		return fmt.Errorf("%w: want %s, have %s", ErrTypeMismatch, k, n.Kind())
	}
	return nil
}

// NewByte returns a TAG_Byte node holding v.
func NewByte(v int8) *Node { return &Node{kind: tag.Byte, i8: v} }

// NewShort returns a TAG_Short node holding v.
func NewShort(v int16) *Node { return &Node{kind: tag.Short, i16: v} }

// NewInt returns a TAG_Int node holding v.
func NewInt(v int32) *Node { return &Node{kind: tag.Int, i32: v} }

// NewLong returns a TAG_Long node holding v.
func NewLong(v int64) *Node { return &Node{kind: tag.Long, i64: v} }

// NewFloat returns a TAG_Float node holding v.
func NewFloat(v float32) *Node { return &Node{kind: tag.Float, f32: v} }

// NewDouble returns a TAG_Double node holding v.
func NewDouble(v float64) *Node { return &Node{kind: tag.Double, f64: v} }

// NewString returns a TAG_String node holding v.
func NewString(v string) *Node { return &Node{kind: tag.String, str: v} }

// NewByteArray returns a TAG_Byte_Array node. v is retained, not copied.
func NewByteArray(v []int8) *Node { return &Node{kind: tag.ByteArray, byteArr: v} }

// NewIntArray returns a TAG_Int_Array node. v is retained, not copied.
func NewIntArray(v []int32) *Node { return &Node{kind: tag.IntArray, intArr: v} }

// NewLongArray returns a TAG_Long_Array node. v is retained, not copied.
func NewLongArray(v []int64) *Node { return &Node{kind: tag.LongArray, longArr: v} }

// AsByte returns the payload of a TAG_Byte node.
func (n *Node) AsByte() (int8, error) {
	if err := n.checkKind(tag.Byte); err != nil {
		return 0, err
	}
	return n.i8, nil
}

// AsShort returns the payload of a TAG_Short node.
func (n *Node) AsShort() (int16, error) {
	if err := n.checkKind(tag.Short); err != nil {
		return 0, err
	}
	return n.i16, nil
}

// AsInt returns the payload of a TAG_Int node.
func (n *Node) AsInt() (int32, error) {
	if err := n.checkKind(tag.Int); err != nil {
		return 0, err
	}
	return n.i32, nil
}

// AsLong returns the payload of a TAG_Long node.
func (n *Node) AsLong() (int64, error) {
	if err := n.checkKind(tag.Long); err != nil {
		return 0, err
	}
	return n.i64, nil
}

// AsFloat returns the payload of a TAG_Float node.
func (n *Node) AsFloat() (float32, error) {
	if err := n.checkKind(tag.Float); err != nil {
		return 0, err
	}
	return n.f32, nil
}

// AsDouble returns the payload of a TAG_Double node.
func (n *Node) AsDouble() (float64, error) {
	if err := n.checkKind(tag.Double); err != nil {
		return 0, err
	}
	return n.f64, nil
}

// AsString returns the payload of a TAG_String node.
func (n *Node) AsString() (string, error) {
	if err := n.checkKind(tag.String); err != nil {
		return "", err
	}
	return n.str, nil
}

// AsByteArray returns the payload of a TAG_Byte_Array node. The returned
// slice aliases the node's storage and must not be mutated.
func (n *Node) AsByteArray() ([]int8, error) {
	if err := n.checkKind(tag.ByteArray); err != nil {
		return nil, err
	}
	return n.byteArr, nil
}

// AsIntArray returns the payload of a TAG_Int_Array node. The returned
// slice aliases the node's storage and must not be mutated.
func (n *Node) AsIntArray() ([]int32, error) {
	if err := n.checkKind(tag.IntArray); err != nil {
		return nil, err
	}
	return n.intArr, nil
}

// AsLongArray returns the payload of a TAG_Long_Array node. The returned
// slice aliases the node's storage and must not be mutated.
func (n *Node) AsLongArray() ([]int64, error) {
	if err := n.checkKind(tag.LongArray); err != nil {
		return nil, err
	}
	return n.longArr, nil
}

// asLongWidening returns any numeric scalar node's payload as an int64,
// preserving full integer precision (unlike routing through float64,
// which would corrupt large longs). Non-numeric nodes return 0.
func (n *Node) asLongWidening() int64 {
	switch n.Kind() {
	case tag.Byte:
		return int64(n.i8)
	case tag.Short:
		return int64(n.i16)
	case tag.Int:
		return int64(n.i32)
	case tag.Long:
		return n.i64
	case tag.Float:
		return int64(n.f32)
	case tag.Double:
		return int64(n.f64)
	default:
		return 0
	}
}

// AsByteWidening returns any numeric scalar node's payload narrowed or
// widened to int8, and 0 for a non-numeric node (including TAG_String),
// matching the Java reference's NBTNumberPrimitive.asByte() contract:
// lossy on overflow, never an error.
func (n *Node) AsByteWidening() int8 { return int8(n.asLongWidening()) }

// AsShortWidening returns any numeric scalar node's payload narrowed or
// widened to int16, and 0 for a non-numeric node.
func (n *Node) AsShortWidening() int16 { return int16(n.asLongWidening()) }

// AsIntWidening returns any numeric scalar node's payload narrowed or
// widened to int32, and 0 for a non-numeric node.
func (n *Node) AsIntWidening() int32 { return int32(n.asLongWidening()) }

// AsLongWidening returns any numeric scalar node's payload narrowed or
// widened to int64, and 0 for a non-numeric node.
func (n *Node) AsLongWidening() int64 { return n.asLongWidening() }

// AsFloatWidening returns any numeric scalar node's payload narrowed or
// widened to float32, and 0 for a non-numeric node.
func (n *Node) AsFloatWidening() float32 {
	f, _ := n.numberValue()
	return float32(f)
}

// AsDoubleWidening returns any numeric scalar node's payload widened to
// float64, and 0 for a non-numeric node.
func (n *Node) AsDoubleWidening() float64 {
	f, _ := n.numberValue()
	return f
}

// numberValue returns a scalar numeric node's payload widened to float64,
// matching the legacy numeric-coercion accessors described in compound.go.
func (n *Node) numberValue() (float64, bool) {
	switch n.Kind() {
	case tag.Byte:
		return float64(n.i8), true
	case tag.Short:
		return float64(n.i16), true
	case tag.Int:
		return float64(n.i32), true
	case tag.Long:
		return float64(n.i64), true
	case tag.Float:
		return float64(n.f32), true
	case tag.Double:
		return n.f64, true
	default:
		return 0, false
	}
}
