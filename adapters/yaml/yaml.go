// Package yaml converts between NBT trees and the same tagged-union
// shape the json adapter uses, rendered as YAML instead of JSON via the
// teacher pack's chosen YAML library.
package yaml

import (
	"fmt"

	goyaml "github.com/goccy/go-yaml"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

var kindNames = map[tag.Kind]string{
	tag.Byte:      "byte",
	tag.Short:     "short",
	tag.Int:       "int",
	tag.Long:      "long",
	tag.Float:     "float",
	tag.Double:    "double",
	tag.String:    "string",
	tag.ByteArray: "byteArray",
	tag.IntArray:  "intArray",
	tag.LongArray: "longArray",
	tag.List:      "list",
	tag.Compound:  "compound",
}

var namesToKind = func() map[string]tag.Kind {
	m := make(map[string]tag.Kind, len(kindNames))
	for k, v := range kindNames {
		m[v] = k
	}
	return m
}()

// Marshal renders value as tagged-union YAML.
func Marshal(value *nbt.Node) ([]byte, error) {
	tree, err := encodeNode(value)
	if err != nil {
		return nil, err
	}
	return goyaml.Marshal(tree)
}

// Unmarshal parses YAML produced by Marshal back into an NBT tree.
func Unmarshal(data []byte) (*nbt.Node, error) {
	var tree any
	if err := goyaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return decodeNode(tree)
}

func encodeNode(n *nbt.Node) (map[string]any, error) {
	typeName, ok := kindNames[n.Kind()]
	if !ok {
		return nil, fmt.Errorf("adapters/yaml: unsupported kind %s", n.Kind())
	}

	var value any
	switch n.Kind() {
	case tag.Byte:
		v, _ := n.AsByte()
		value = v
	case tag.Short:
		v, _ := n.AsShort()
		value = v
	case tag.Int:
		v, _ := n.AsInt()
		value = v
	case tag.Long:
		v, _ := n.AsLong()
		value = v
	case tag.Float:
		v, _ := n.AsFloat()
		value = v
	case tag.Double:
		v, _ := n.AsDouble()
		value = v
	case tag.String:
		v, _ := n.AsString()
		value = v
	case tag.ByteArray:
		v, _ := n.AsByteArray()
		value = v
	case tag.IntArray:
		v, _ := n.AsIntArray()
		value = v
	case tag.LongArray:
		v, _ := n.AsLongArray()
		value = v
	case tag.List:
		items, _ := n.Items()
		encItems := make([]map[string]any, len(items))
		for i, it := range items {
			e, err := encodeNode(it)
			if err != nil {
				return nil, err
			}
			encItems[i] = e
		}
		value = encItems
	case tag.Compound:
		var entries []map[string]any
		var rangeErr error
		n.Range(func(name string, v *nbt.Node) bool {
			e, err := encodeNode(v)
			if err != nil {
				rangeErr = err
				return false
			}
			entries = append(entries, map[string]any{"name": name, "value": e})
			return true
		})
		if rangeErr != nil {
			return nil, rangeErr
		}
		value = entries
	}

	return map[string]any{"type": typeName, "value": value}, nil
}

func decodeNode(raw any) (*nbt.Node, error) {
	m, ok := asMap(raw)
	if !ok {
		return nil, fmt.Errorf("adapters/yaml: expected mapping, got %T", raw)
	}
	typeName, _ := m["type"].(string)
	k, ok := namesToKind[typeName]
	if !ok {
		return nil, fmt.Errorf("adapters/yaml: unknown type %q", typeName)
	}
	value := m["value"]

	switch k {
	case tag.Byte:
		v, err := asInt(value)
		return nbt.NewByte(int8(v)), err
	case tag.Short:
		v, err := asInt(value)
		return nbt.NewShort(int16(v)), err
	case tag.Int:
		v, err := asInt(value)
		return nbt.NewInt(int32(v)), err
	case tag.Long:
		v, err := asInt(value)
		return nbt.NewLong(v), err
	case tag.Float:
		v, err := asFloat(value)
		return nbt.NewFloat(float32(v)), err
	case tag.Double:
		v, err := asFloat(value)
		return nbt.NewDouble(v), err
	case tag.String:
		s, _ := value.(string)
		return nbt.NewString(s), nil
	case tag.ByteArray:
		nums, err := asIntSlice(value)
		if err != nil {
			return nil, err
		}
		out := make([]int8, len(nums))
		for i, n := range nums {
			out[i] = int8(n)
		}
		return nbt.NewByteArray(out), nil
	case tag.IntArray:
		nums, err := asIntSlice(value)
		if err != nil {
			return nil, err
		}
		out := make([]int32, len(nums))
		for i, n := range nums {
			out[i] = int32(n)
		}
		return nbt.NewIntArray(out), nil
	case tag.LongArray:
		nums, err := asIntSlice(value)
		if err != nil {
			return nil, err
		}
		return nbt.NewLongArray(nums), nil
	case tag.List:
		items, ok := asSlice(value)
		if !ok {
			return nil, fmt.Errorf("adapters/yaml: list value is not a sequence")
		}
		list := nbt.NewList()
		for _, it := range items {
			v, err := decodeNode(it)
			if err != nil {
				return nil, err
			}
			if err := list.Append(v); err != nil {
				return nil, err
			}
		}
		return list, nil
	case tag.Compound:
		entries, ok := asSlice(value)
		if !ok {
			return nil, fmt.Errorf("adapters/yaml: compound value is not a sequence")
		}
		compound := nbt.NewCompound()
		for _, e := range entries {
			em, ok := asMap(e)
			if !ok {
				return nil, fmt.Errorf("adapters/yaml: compound entry is not a mapping")
			}
			name, _ := em["name"].(string)
			v, err := decodeNode(em["value"])
			if err != nil {
				return nil, err
			}
			if _, err := compound.Put(name, v); err != nil {
				return nil, err
			}
		}
		return compound, nil
	default:
		return nil, fmt.Errorf("adapters/yaml: unsupported kind %s", k)
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func asInt(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("adapters/yaml: expected integer, got %T", v)
	}
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("adapters/yaml: expected float, got %T", v)
	}
}

func asIntSlice(v any) ([]int64, error) {
	items, ok := asSlice(v)
	if !ok {
		return nil, fmt.Errorf("adapters/yaml: expected sequence, got %T", v)
	}
	out := make([]int64, len(items))
	for i, it := range items {
		n, err := asInt(it)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
