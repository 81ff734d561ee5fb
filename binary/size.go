package binary

import (
	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

// EstimateNamed returns a conservative upper bound, in bytes, on the
// encoded size of the named tag (id + name + payload). Go strings are
// already UTF-8, so the bound returned here is exact for every payload,
// not merely an upper bound the way the Java reference implementation's
// 4-bytes-per-char estimate is.
func EstimateNamed(name string, value *nbt.Node) int {
	if value == nil {
		return 1
	}
	return 1 + estimateStringPayload(name) + Estimate(value)
}

// Estimate returns a conservative upper bound, in bytes, on the encoded
// size of value's payload alone (no id byte, no name).
func Estimate(value *nbt.Node) int {
	if value == nil {
		return 0
	}
	switch value.Kind() {
	case tag.End:
		return 0
	case tag.Byte:
		return 1
	case tag.Short:
		return 2
	case tag.Int:
		return 4
	case tag.Long:
		return 8
	case tag.Float:
		return 4
	case tag.Double:
		return 8
	case tag.String:
		s, _ := value.AsString()
		return estimateStringPayload(s)
	case tag.ByteArray:
		v, _ := value.AsByteArray()
		return 4 + len(v)
	case tag.IntArray:
		v, _ := value.AsIntArray()
		return 4 + len(v)*4
	case tag.LongArray:
		v, _ := value.AsLongArray()
		return 4 + len(v)*8
	case tag.List:
		size := 1 + 4
		items, _ := value.Items()
		for _, item := range items {
			size += Estimate(item)
		}
		return size
	case tag.Compound:
		size := 1
		value.Range(func(name string, v *nbt.Node) bool {
			size += EstimateNamed(name, v)
			return true
		})
		return size
	default:
		return 0
	}
}

func estimateStringPayload(s string) int {
	return 2 + len(s)
}
