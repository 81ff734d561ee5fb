// Package json converts between NBT trees and a tagged-union JSON
// encoding, following the same discriminated-field approach the
// teacher's own IR uses for its JSON codec: every node carries an
// explicit "type" alongside a "value" of the natural JSON shape for
// that kind, so the byte/int/long distinctions JSON's number type
// cannot express survive a round trip.
package json

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

type wireNode struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

type compoundEntry struct {
	Name  string   `json:"name"`
	Value wireNode `json:"value"`
}

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

// Marshal renders value as tagged-union JSON.
func Marshal(value *nbt.Node) ([]byte, error) {
	w, err := encodeNode(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// Unmarshal parses data produced by Marshal back into an NBT tree.
func Unmarshal(data []byte) (*nbt.Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return decodeNode(w)
}

// MergePatch applies an RFC 7396 JSON merge patch to value's JSON
// representation and decodes the result, using the teacher pack's
// chosen JSON patch library rather than hand-rolling merge semantics.
func MergePatch(value *nbt.Node, patch []byte) (*nbt.Node, error) {
	original, err := Marshal(value)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(original, patch)
	if err != nil {
		return nil, fmt.Errorf("adapters/json: merge patch: %w", err)
	}
	return Unmarshal(merged)
}

func encodeNode(n *nbt.Node) (wireNode, error) {
	typeName, ok := kindNames[n.Kind()]
	if !ok {
		return wireNode{}, fmt.Errorf("adapters/json: unsupported kind %s", n.Kind())
	}

	var raw any
	switch n.Kind() {
	case tag.Byte:
		v, _ := n.AsByte()
		raw = v
	case tag.Short:
		v, _ := n.AsShort()
		raw = v
	case tag.Int:
		v, _ := n.AsInt()
		raw = v
	case tag.Long:
		v, _ := n.AsLong()
		raw = v
	case tag.Float:
		v, _ := n.AsFloat()
		raw = v
	case tag.Double:
		v, _ := n.AsDouble()
		raw = v
	case tag.String:
		v, _ := n.AsString()
		raw = v
	case tag.ByteArray:
		v, _ := n.AsByteArray()
		raw = v
	case tag.IntArray:
		v, _ := n.AsIntArray()
		raw = v
	case tag.LongArray:
		v, _ := n.AsLongArray()
		raw = v
	case tag.List:
		items, _ := n.Items()
		wItems := make([]wireNode, len(items))
		for i, it := range items {
			w, err := encodeNode(it)
			if err != nil {
				return wireNode{}, err
			}
			wItems[i] = w
		}
		raw = wItems
	case tag.Compound:
		var entries []compoundEntry
		n.Range(func(name string, v *nbt.Node) bool {
			w, err := encodeNode(v)
			if err != nil {
				return false
			}
			entries = append(entries, compoundEntry{Name: name, Value: w})
			return true
		})
		raw = entries
	}

	value, err := json.Marshal(raw)
	if err != nil {
		return wireNode{}, err
	}
	return wireNode{Type: typeName, Value: value}, nil
}

func decodeNode(w wireNode) (*nbt.Node, error) {
	k, ok := namesToKind[w.Type]
	if !ok {
		return nil, fmt.Errorf("adapters/json: unknown type %q", w.Type)
	}

	switch k {
	case tag.Byte:
		var v int8
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return nil, err
		}
		return nbt.NewByte(v), nil
	case tag.Short:
		var v int16
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return nil, err
		}
		return nbt.NewShort(v), nil
	case tag.Int:
		var v int32
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return nil, err
		}
		return nbt.NewInt(v), nil
	case tag.Long:
		var v int64
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return nil, err
		}
		return nbt.NewLong(v), nil
	case tag.Float:
		var v float32
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return nil, err
		}
		return nbt.NewFloat(v), nil
	case tag.Double:
		var v float64
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return nil, err
		}
		return nbt.NewDouble(v), nil
	case tag.String:
		var v string
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return nil, err
		}
		return nbt.NewString(v), nil
	case tag.ByteArray:
		var v []int8
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return nil, err
		}
		return nbt.NewByteArray(v), nil
	case tag.IntArray:
		var v []int32
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return nil, err
		}
		return nbt.NewIntArray(v), nil
	case tag.LongArray:
		var v []int64
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return nil, err
		}
		return nbt.NewLongArray(v), nil
	case tag.List:
		var items []wireNode
		if err := json.Unmarshal(w.Value, &items); err != nil {
			return nil, err
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
		var entries []compoundEntry
		if err := json.Unmarshal(w.Value, &entries); err != nil {
			return nil, err
		}
		compound := nbt.NewCompound()
		for _, e := range entries {
			v, err := decodeNode(e.Value)
			if err != nil {
				return nil, err
			}
			if _, err := compound.Put(e.Name, v); err != nil {
				return nil, err
			}
		}
		return compound, nil
	default:
		return nil, fmt.Errorf("adapters/json: unsupported kind %s", k)
	}
}
