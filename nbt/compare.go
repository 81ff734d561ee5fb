package nbt

import "github.com/MinecraftDataGenerator/mc-nbt/tag"

// Equal reports whether a and b represent the same NBT value tree.
// Compound comparison is order-independent (keys are matched by name);
// list and array comparison is order-dependent.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case tag.End:
		return true
	case tag.Byte:
		return a.i8 == b.i8
	case tag.Short:
		return a.i16 == b.i16
	case tag.Int:
		return a.i32 == b.i32
	case tag.Long:
		return a.i64 == b.i64
	case tag.Float:
		return a.f32 == b.f32
	case tag.Double:
		return a.f64 == b.f64
	case tag.String:
		return a.str == b.str
	case tag.ByteArray:
		return equalInt8(a.byteArr, b.byteArr)
	case tag.IntArray:
		return equalInt32(a.intArr, b.intArr)
	case tag.LongArray:
		return equalInt64(a.longArr, b.longArr)
	case tag.List:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case tag.Compound:
		if len(a.names) != len(b.names) {
			return false
		}
		for _, name := range a.names {
			bv, ok := b.Get(name)
			if !ok {
				return false
			}
			av, _ := a.Get(name)
			if !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func equalInt8(a, b []int8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInt32(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInt64(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
