package nbt

import (
	"fmt"

	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

// NewList returns an empty TAG_List node. Its intern type (the kind every
// element must share) is fixed to TAG_End until the first Append.
func NewList() *Node {
	return &Node{kind: tag.List, listKind: tag.End}
}

// NewListOf returns a TAG_List node preloaded with items, which must all
// share a single kind. Returns ErrTypeMismatch on a mixed-kind slice.
func NewListOf(items []*Node) (*Node, error) {
	l := NewList()
	for _, it := range items {
		if err := l.Append(it); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// ElementKind returns the list's intern type: the kind every element must
// match, or TAG_End for a list that has never had an element appended.
func (n *Node) ElementKind() (tag.Kind, error) {
	if err := n.checkKind(tag.List); err != nil {
		return tag.End, err
	}
	return n.listKind, nil
}

// Len returns the number of elements in a TAG_List, or the number of
// entries in a TAG_Compound.
func (n *Node) Len() int {
	switch n.Kind() {
	case tag.List:
		return len(n.items)
	case tag.Compound:
		return len(n.names)
	default:
		return 0
	}
}

// Index returns the i'th element of a TAG_List.
func (n *Node) Index(i int) (*Node, error) {
	if err := n.checkKind(tag.List); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(n.items) {
		return nil, fmt.Errorf("nbt: list index %d out of range [0,%d)", i, len(n.items))
	}
	return n.items[i], nil
}

// Items returns the list's elements. The returned slice aliases the
// node's storage and must not be mutated.
func (n *Node) Items() ([]*Node, error) {
	if err := n.checkKind(tag.List); err != nil {
		return nil, err
	}
	return n.items, nil
}

// Append adds v to a TAG_List. The first Append on an empty list fixes the
// list's intern type to v's kind; subsequent appends of a different kind
// fail with ErrTypeMismatch.
func (n *Node) Append(v *Node) error {
	if err := n.checkKind(tag.List); err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("%w: cannot append nil node", ErrTypeMismatch)
	}
	if len(n.items) == 0 && n.listKind == tag.End {
		n.listKind = v.Kind()
	} else if v.Kind() != n.listKind {
		return fmt.Errorf("%w: list holds %s, got %s", ErrTypeMismatch, n.listKind, v.Kind())
	}
	n.items = append(n.items, v)
	return nil
}

// SetIndex replaces the i'th element of a TAG_List. v must match the
// list's intern type.
func (n *Node) SetIndex(i int, v *Node) error {
	if err := n.checkKind(tag.List); err != nil {
		return err
	}
	if i < 0 || i >= len(n.items) {
		return fmt.Errorf("nbt: list index %d out of range [0,%d)", i, len(n.items))
	}
	if v.Kind() != n.listKind {
		return fmt.Errorf("%w: list holds %s, got %s", ErrTypeMismatch, n.listKind, v.Kind())
	}
	n.items[i] = v
	return nil
}

// RemoveIndex removes and returns the i'th element of a TAG_List,
// preserving the order of remaining elements.
func (n *Node) RemoveIndex(i int) (*Node, error) {
	if err := n.checkKind(tag.List); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(n.items) {
		return nil, fmt.Errorf("nbt: list index %d out of range [0,%d)", i, len(n.items))
	}
	removed := n.items[i]
	n.items = append(n.items[:i], n.items[i+1:]...)
	return removed, nil
}

// Clear removes every element of a TAG_List, retaining the list's intern
// type so a subsequent Append must still match it.
func (n *Node) Clear() error {
	if err := n.checkKind(tag.List); err != nil {
		return err
	}
	n.items = nil
	return nil
}
