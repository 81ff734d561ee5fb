package nbtdiff

import (
	"testing"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
)

func TestDiffScalarChanged(t *testing.T) {
	from := nbt.NewCompound()
	from.Put("health", nbt.NewByte(20))
	to := nbt.NewCompound()
	to.Put("health", nbt.NewByte(15))

	changes := Diff(from, to)
	if len(changes) != 1 || changes[0].Kind != Changed || changes[0].Path != "health" {
		t.Fatalf("got %+v", changes)
	}
}

func TestDiffFieldAddedAndRemoved(t *testing.T) {
	from := nbt.NewCompound()
	from.Put("a", nbt.NewInt(1))
	from.Put("b", nbt.NewInt(2))
	to := nbt.NewCompound()
	to.Put("a", nbt.NewInt(1))
	to.Put("c", nbt.NewInt(3))

	changes := Diff(from, to)
	var sawRemoved, sawAdded bool
	for _, c := range changes {
		if c.Kind == Removed && c.Path == "b" {
			sawRemoved = true
		}
		if c.Kind == Added && c.Path == "c" {
			sawAdded = true
		}
	}
	if !sawRemoved || !sawAdded {
		t.Fatalf("got %+v", changes)
	}
}

func TestDiffUnchangedCompoundProducesNoChanges(t *testing.T) {
	from := nbt.NewCompound()
	from.Put("a", nbt.NewInt(1))
	to := nbt.NewCompound()
	to.Put("a", nbt.NewInt(1))

	if changes := Diff(from, to); len(changes) != 0 {
		t.Fatalf("expected no changes, got %+v", changes)
	}
}

func TestDiffListElementMoved(t *testing.T) {
	from := nbt.NewList()
	from.Append(nbt.NewString("a"))
	from.Append(nbt.NewString("b"))
	to := nbt.NewList()
	to.Append(nbt.NewString("b"))
	to.Append(nbt.NewString("a"))

	changes := Diff(from, to)
	if len(changes) != 0 {
		t.Fatalf("expected reordered identical elements to diff clean, got %+v", changes)
	}
}

func TestDiffNestedCompoundInList(t *testing.T) {
	item := nbt.NewCompound()
	item.Put("id", nbt.NewString("stick"))
	item.Put("Count", nbt.NewByte(1))

	from := nbt.NewList()
	from.Append(item)

	item2 := nbt.NewCompound()
	item2.Put("id", nbt.NewString("stick"))
	item2.Put("Count", nbt.NewByte(2))
	to := nbt.NewList()
	to.Append(item2)

	changes := Diff(from, to)
	if len(changes) != 1 || changes[0].Kind != Changed || changes[0].Path != "[0].Count" {
		t.Fatalf("got %+v", changes)
	}
}
