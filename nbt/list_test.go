package nbt

import (
	"errors"
	"testing"

	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

func TestListInternType(t *testing.T) {
	l := NewList()
	k, err := l.ElementKind()
	if err != nil {
		t.Fatal(err)
	}
	if k != tag.End {
		t.Fatalf("empty list element kind = %v, want End", k)
	}
	if err := l.Append(NewInt(1)); err != nil {
		t.Fatal(err)
	}
	k, _ = l.ElementKind()
	if k != tag.Int {
		t.Fatalf("element kind after append = %v, want Int", k)
	}
	if err := l.Append(NewString("x")); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("mismatched append err = %v, want ErrTypeMismatch", err)
	}
}

func TestListRemoveIndexKeepsInternType(t *testing.T) {
	l := NewList()
	_ = l.Append(NewInt(1))
	if _, err := l.RemoveIndex(0); err != nil {
		t.Fatal(err)
	}
	k, _ := l.ElementKind()
	if k != tag.Int {
		t.Fatalf("element kind after emptying via RemoveIndex = %v, want Int", k)
	}
	if err := l.Append(NewString("x")); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("append of mismatched kind after emptying = %v, want ErrTypeMismatch", err)
	}
}

func TestListClearKeepsInternType(t *testing.T) {
	l := NewList()
	_ = l.Append(NewInt(1))
	_ = l.Append(NewInt(2))
	if err := l.Clear(); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", l.Len())
	}
	k, _ := l.ElementKind()
	if k != tag.Int {
		t.Fatalf("element kind after Clear = %v, want Int", k)
	}
	if err := l.Append(NewString("x")); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("append of mismatched kind after Clear = %v, want ErrTypeMismatch", err)
	}
	if err := l.Append(NewInt(3)); err != nil {
		t.Fatalf("append of matching kind after Clear should succeed: %v", err)
	}
}

func TestListOrderPreserved(t *testing.T) {
	l, err := NewListOf([]*Node{NewInt(1), NewInt(2), NewInt(3)})
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []int32{1, 2, 3} {
		v, err := l.Index(i)
		if err != nil {
			t.Fatal(err)
		}
		got, _ := v.AsInt()
		if got != want {
			t.Fatalf("Index(%d) = %d, want %d", i, got, want)
		}
	}
}
