package tag

import "testing"

func TestNameRoundTrip(t *testing.T) {
	for _, k := range All() {
		name := k.Name()
		if name == "" {
			t.Fatalf("Name() empty for %v", k)
		}
		got, ok := ByName(name)
		if !ok || got != k {
			t.Fatalf("ByName(%q) = %v, %v, want %v, true", name, got, ok, k)
		}
	}
	if _, ok := ByName("not_a_kind"); ok {
		t.Fatal("ByName on unknown token should report false")
	}
}

func TestIsPrimitive(t *testing.T) {
	for _, k := range []Kind{Byte, Short, Int, Long, Float, Double, String} {
		if !k.IsPrimitive() {
			t.Fatalf("IsPrimitive(%v) = false, want true", k)
		}
	}
	for _, k := range []Kind{End, ByteArray, IntArray, LongArray, List, Compound} {
		if k.IsPrimitive() {
			t.Fatalf("IsPrimitive(%v) = true, want false", k)
		}
	}
}

func TestIsIterable(t *testing.T) {
	for _, k := range []Kind{ByteArray, IntArray, LongArray, List, Compound} {
		if !k.IsIterable() {
			t.Fatalf("IsIterable(%v) = false, want true", k)
		}
	}
	for _, k := range []Kind{End, Byte, Short, Int, Long, Float, Double, String} {
		if k.IsIterable() {
			t.Fatalf("IsIterable(%v) = true, want false", k)
		}
	}
}
