package nbtdiff

import (
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/snbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

// ChangeKind classifies a single Change.
type ChangeKind int

const (
	Unchanged ChangeKind = iota
	Added
	Removed
	Changed
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return "unchanged"
	}
}

// Change describes one difference between two trees at Path, a dotted,
// index-bracketed path like "Inventory[3].id".
type Change struct {
	Path string
	Kind ChangeKind
	Old  *nbt.Node
	New  *nbt.Node
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s: %s", c.Path, snbt.Write(c.New, snbt.V1_21_5))
	case Removed:
		return fmt.Sprintf("- %s: %s", c.Path, snbt.Write(c.Old, snbt.V1_21_5))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, snbt.Write(c.Old, snbt.V1_21_5), snbt.Write(c.New, snbt.V1_21_5))
	}
}

// Diff returns the differences between from and to, in depth-first order.
// Compound entries with the same name are compared recursively down to
// their leaves; list elements are matched by content as diffList describes.
func Diff(from, to *nbt.Node) []Change {
	var out []Change
	diffNode("", from, to, &out)
	return out
}

func diffNode(path string, from, to *nbt.Node, out *[]Change) {
	if from == nil && to == nil {
		return
	}
	if from == nil {
		*out = append(*out, Change{Path: path, Kind: Added, New: to})
		return
	}
	if to == nil {
		*out = append(*out, Change{Path: path, Kind: Removed, Old: from})
		return
	}
	if from.Kind() != to.Kind() {
		*out = append(*out, Change{Path: path, Kind: Changed, Old: from, New: to})
		return
	}
	switch from.Kind() {
	case tag.Compound:
		diffCompound(path, from, to, out)
	case tag.List:
		diffList(path, from, to, out)
	default:
		if !nbt.Equal(from, to) {
			*out = append(*out, Change{Path: path, Kind: Changed, Old: from, New: to})
		}
	}
}

// diffCompound matches old and new field-name sequences via a
// diffmatchpatch LCS pass over the names interned to runes, then recurses
// pairwise on the equal runs and reports insert/delete runs directly.
func diffCompound(path string, from, to *nbt.Node, out *[]Change) {
	fromNames, _ := from.Names()
	toNames, _ := to.Names()

	fieldMap := map[string]rune{}
	fromRunes := internNames(fieldMap, fromNames)
	toRunes := internNames(fieldMap, toNames)

	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			for range d.Text {
				name := fromNames[fi]
				v, _ := from.Get(name)
				diffNode(childPath(path, name), v, nil, out)
				fi++
			}
		case diffpatch.DiffInsert:
			for range d.Text {
				name := toNames[ti]
				v, _ := to.Get(name)
				diffNode(childPath(path, name), nil, v, out)
				ti++
			}
		case diffpatch.DiffEqual:
			for range d.Text {
				name := fromNames[fi]
				fv, _ := from.Get(name)
				tv, _ := to.Get(name)
				diffNode(childPath(path, name), fv, tv, out)
				fi++
				ti++
			}
		}
	}
}

// diffList matches old and new elements by rendered content through an
// order-preserving LCS pass. Elements matched as equal are diffed pairwise;
// every other element is reported whole, as removed at its old index or
// added at its new one. An element that moves past others is therefore
// reported as removed and added, and an element whose content changed is
// not diffed field by field.
func diffList(path string, from, to *nbt.Node, out *[]Change) {
	fromItems, _ := from.Items()
	toItems, _ := to.Items()

	keyMap := map[string]rune{}
	fromRunes := internItems(keyMap, fromItems)
	toRunes := internItems(keyMap, toItems)

	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			for range d.Text {
				diffNode(indexPath(path, fi), fromItems[fi], nil, out)
				fi++
			}
		case diffpatch.DiffInsert:
			for range d.Text {
				diffNode(indexPath(path, ti), nil, toItems[ti], out)
				ti++
			}
		case diffpatch.DiffEqual:
			for range d.Text {
				diffNode(indexPath(path, fi), fromItems[fi], toItems[ti], out)
				fi++
				ti++
			}
		}
	}
}

func internNames(m map[string]rune, names []string) []rune {
	rs := make([]rune, len(names))
	for i, n := range names {
		r, ok := m[n]
		if !ok {
			r = rune(len(m))
			m[n] = r
		}
		rs[i] = r
	}
	return rs
}

func internItems(m map[string]rune, items []*nbt.Node) []rune {
	rs := make([]rune, len(items))
	for i, it := range items {
		key := snbt.Write(it, snbt.V1_21_5)
		r, ok := m[key]
		if !ok {
			r = rune(len(m))
			m[key] = r
		}
		rs[i] = r
	}
	return rs
}

func childPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

func indexPath(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}
