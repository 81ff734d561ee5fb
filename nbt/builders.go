package nbt

// CompoundBuilder accumulates entries before producing an immutable-by-
// convention compound node, mirroring the teacher's functional-option
// builders for container types.
type CompoundBuilder struct {
	c *Node
}

// NewCompoundBuilder returns an empty CompoundBuilder.
func NewCompoundBuilder() *CompoundBuilder {
	return &CompoundBuilder{c: NewCompound()}
}

// Put stores v under name and returns the builder for chaining.
func (b *CompoundBuilder) Put(name string, v *Node) *CompoundBuilder {
	_, _ = b.c.Put(name, v)
	return b
}

// Build returns the accumulated compound node.
func (b *CompoundBuilder) Build() *Node { return b.c }

// ListBuilder accumulates elements of a single kind before producing a
// list node.
type ListBuilder struct {
	l   *Node
	err error
}

// NewListBuilder returns an empty ListBuilder.
func NewListBuilder() *ListBuilder {
	return &ListBuilder{l: NewList()}
}

// Add appends v, recording a type-mismatch error (surfaced by Build) if v
// does not match the kind of earlier elements.
func (b *ListBuilder) Add(v *Node) *ListBuilder {
	if b.err == nil {
		b.err = b.l.Append(v)
	}
	return b
}

// Build returns the accumulated list node, or an error if a mismatched
// kind was ever added.
func (b *ListBuilder) Build() (*Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.l, nil
}

// ByteArrayBuilder accumulates bytes before producing a TAG_Byte_Array.
type ByteArrayBuilder struct{ v []int8 }

// NewByteArrayBuilder returns an empty ByteArrayBuilder.
func NewByteArrayBuilder() *ByteArrayBuilder { return &ByteArrayBuilder{} }

// Add appends v and returns the builder for chaining.
func (b *ByteArrayBuilder) Add(v int8) *ByteArrayBuilder {
	b.v = append(b.v, v)
	return b
}

// Build returns the accumulated TAG_Byte_Array node.
func (b *ByteArrayBuilder) Build() *Node { return NewByteArray(b.v) }

// IntArrayBuilder accumulates ints before producing a TAG_Int_Array.
type IntArrayBuilder struct{ v []int32 }

// NewIntArrayBuilder returns an empty IntArrayBuilder.
func NewIntArrayBuilder() *IntArrayBuilder { return &IntArrayBuilder{} }

// Add appends v and returns the builder for chaining.
func (b *IntArrayBuilder) Add(v int32) *IntArrayBuilder {
	b.v = append(b.v, v)
	return b
}

// Build returns the accumulated TAG_Int_Array node.
func (b *IntArrayBuilder) Build() *Node { return NewIntArray(b.v) }

// LongArrayBuilder accumulates longs before producing a TAG_Long_Array.
type LongArrayBuilder struct{ v []int64 }

// NewLongArrayBuilder returns an empty LongArrayBuilder.
func NewLongArrayBuilder() *LongArrayBuilder { return &LongArrayBuilder{} }

// Add appends v and returns the builder for chaining.
func (b *LongArrayBuilder) Add(v int64) *LongArrayBuilder {
	b.v = append(b.v, v)
	return b
}

// Build returns the accumulated TAG_Long_Array node.
func (b *LongArrayBuilder) Build() *Node { return NewLongArray(b.v) }
