// Package query navigates NBT trees by dotted/indexed path, in the
// style of the teacher's own kpath package, and evaluates expr-lang
// expressions against a tree flattened to native Go values for
// predicate-style filtering.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

// Get navigates root using a dotted, bracket-indexed path such as
// "Inventory[0].id" or "Pos[2]", mirroring the syntax (if not the
// literal parser) of the teacher's KPath accessor.
func Get(root *nbt.Node, path string) (*nbt.Node, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	cur := root
	for _, seg := range segments {
		if seg.isIndex {
			v, err := indexInto(cur, seg.index)
			if err != nil {
				return nil, err
			}
			cur = v
			continue
		}
		if cur.Kind() != tag.Compound {
			return nil, fmt.Errorf("query: %q is not a compound", seg.raw)
		}
		v, ok := cur.Get(seg.name)
		if !ok {
			return nil, fmt.Errorf("query: missing field %q", seg.name)
		}
		cur = v
	}
	return cur, nil
}

// indexInto resolves a bracketed index against a list or a fixed-width
// primitive array, synthesizing a scalar Node for the latter since
// array elements aren't stored as Nodes.
func indexInto(cur *nbt.Node, index int) (*nbt.Node, error) {
	switch cur.Kind() {
	case tag.List:
		return cur.Index(index)
	case tag.ByteArray:
		v, _ := cur.AsByteArray()
		if index < 0 || index >= len(v) {
			return nil, fmt.Errorf("query: index %d out of range [0,%d)", index, len(v))
		}
		return nbt.NewByte(v[index]), nil
	case tag.IntArray:
		v, _ := cur.AsIntArray()
		if index < 0 || index >= len(v) {
			return nil, fmt.Errorf("query: index %d out of range [0,%d)", index, len(v))
		}
		return nbt.NewInt(v[index]), nil
	case tag.LongArray:
		v, _ := cur.AsLongArray()
		if index < 0 || index >= len(v) {
			return nil, fmt.Errorf("query: index %d out of range [0,%d)", index, len(v))
		}
		return nbt.NewLong(v[index]), nil
	default:
		return nil, fmt.Errorf("query: cannot index into %s", cur.Kind())
	}
}

type segment struct {
	raw     string
	isIndex bool
	name    string
	index   int
}

func splitPath(path string) ([]segment, error) {
	if path == "" {
		return nil, nil
	}
	var out []segment
	for _, part := range strings.Split(path, ".") {
		for len(part) > 0 {
			if i := strings.IndexByte(part, '['); i >= 0 {
				if i > 0 {
					out = append(out, segment{raw: part[:i], name: part[:i]})
				}
				end := strings.IndexByte(part[i:], ']')
				if end < 0 {
					return nil, fmt.Errorf("query: unterminated [ in %q", path)
				}
				idxStr := part[i+1 : i+end]
				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					return nil, fmt.Errorf("query: bad index %q in %q", idxStr, path)
				}
				out = append(out, segment{raw: idxStr, isIndex: true, index: idx})
				part = part[i+end+1:]
				continue
			}
			out = append(out, segment{raw: part, name: part})
			break
		}
	}
	return out, nil
}

// ToGo flattens value into native Go types (map[string]any, []any,
// numeric types, string) suitable for use as an expr-lang evaluation
// environment.
func ToGo(value *nbt.Node) any {
	if value == nil {
		return nil
	}
	switch value.Kind() {
	case tag.Byte:
		v, _ := value.AsByte()
		return v
	case tag.Short:
		v, _ := value.AsShort()
		return v
	case tag.Int:
		v, _ := value.AsInt()
		return v
	case tag.Long:
		v, _ := value.AsLong()
		return v
	case tag.Float:
		v, _ := value.AsFloat()
		return v
	case tag.Double:
		v, _ := value.AsDouble()
		return v
	case tag.String:
		v, _ := value.AsString()
		return v
	case tag.ByteArray:
		v, _ := value.AsByteArray()
		return v
	case tag.IntArray:
		v, _ := value.AsIntArray()
		return v
	case tag.LongArray:
		v, _ := value.AsLongArray()
		return v
	case tag.List:
		items, _ := value.Items()
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = ToGo(it)
		}
		return out
	case tag.Compound:
		out := make(map[string]any)
		value.Range(func(name string, v *nbt.Node) bool {
			out[name] = ToGo(v)
			return true
		})
		return out
	default:
		return nil
	}
}

// Eval compiles and runs an expr-lang expression against root's
// flattened representation and returns the result.
func Eval(root *nbt.Node, expression string) (any, error) {
	env := ToGo(root)
	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("query: compile: %w", err)
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("query: run: %w", err)
	}
	return result, nil
}

// Filter evaluates a boolean expr-lang predicate against every element
// of a list, returning the indices for which it is true. Each
// element's flattened value is bound to "value" in the predicate's
// environment.
func Filter(list *nbt.Node, predicate string) ([]int, error) {
	if list.Kind() != tag.List {
		return nil, fmt.Errorf("query: Filter requires a list, got %s", list.Kind())
	}
	items, _ := list.Items()
	program, err := expr.Compile(predicate, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("query: compile: %w", err)
	}
	var out []int
	for i, it := range items {
		result, err := expr.Run(program, map[string]any{"value": ToGo(it)})
		if err != nil {
			return nil, fmt.Errorf("query: run at index %d: %w", i, err)
		}
		matched, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("query: predicate did not return a bool at index %d", i)
		}
		if matched {
			out = append(out, i)
		}
	}
	return out, nil
}
