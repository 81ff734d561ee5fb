package nbt

import (
	"errors"
	"testing"

	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

func TestCompoundPutPreservesOrdinalOnReplace(t *testing.T) {
	c := NewCompound()
	_, _ = c.Put("a", NewInt(1))
	_, _ = c.Put("b", NewInt(2))
	_, _ = c.Put("c", NewInt(3))

	old, err := c.Put("b", NewInt(20))
	if err != nil {
		t.Fatal(err)
	}
	oldV, _ := old.AsInt()
	if oldV != 2 {
		t.Fatalf("old value = %d, want 2", oldV)
	}

	names, _ := c.Names()
	want := []string{"a", "b", "c"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestCompoundDeleteSwapsLast(t *testing.T) {
	c := NewCompound()
	_, _ = c.Put("a", NewInt(1))
	_, _ = c.Put("b", NewInt(2))
	_, _ = c.Put("c", NewInt(3))

	if _, ok := c.Delete("a"); !ok {
		t.Fatal("expected delete to report present")
	}
	names, _ := c.Names()
	// "c" (the last entry) was swapped into "a"'s slot.
	want := []string{"c", "b"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
	idx, ok := c.IndexOf("c")
	if !ok || idx != 0 {
		t.Fatalf("IndexOf(c) = (%d,%v), want (0,true)", idx, ok)
	}
}

func TestCompoundDeleteLastNoSwap(t *testing.T) {
	c := NewCompound()
	_, _ = c.Put("a", NewInt(1))
	_, _ = c.Put("b", NewInt(2))
	if _, ok := c.Delete("b"); !ok {
		t.Fatal("expected delete to report present")
	}
	names, _ := c.Names()
	if len(names) != 1 || names[0] != "a" {
		t.Fatalf("names = %v, want [a]", names)
	}
}

func TestGetStrictMissingVsTypeMismatch(t *testing.T) {
	c := NewCompound()
	_, _ = c.Put("x", NewInt(1))

	_, err := c.GetStrict("y", tag.Byte)
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("missing key err = %v, want ErrMissing", err)
	}

	_, err = c.GetStrict("x", tag.Byte)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("wrong kind err = %v, want ErrTypeMismatch", err)
	}
}

func TestGetOrDefault(t *testing.T) {
	c := NewCompound()
	_, _ = c.Put("n", NewInt(42))
	if got := c.GetIntOrDefault("n", -1); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if got := c.GetIntOrDefault("missing", -1); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
	if got := c.GetStringOrDefault("n", "fallback"); got != "fallback" {
		t.Fatalf("got %q, want fallback (wrong kind)", got)
	}
}

func TestGetIntLegacyCoercesStrings(t *testing.T) {
	c := NewCompound()
	_, _ = c.Put("asString", NewString("123"))
	_, _ = c.Put("asDouble", NewDouble(9.7))
	_, _ = c.Put("bad", NewString("not a number"))

	if got := c.GetIntLegacy("asString"); got != 123 {
		t.Fatalf("got %d, want 123", got)
	}
	if got := c.GetIntLegacy("asDouble"); got != 9 {
		t.Fatalf("got %d, want 9 (truncated)", got)
	}
	if got := c.GetIntLegacy("bad"); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if got := c.GetIntLegacy("missing"); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}
