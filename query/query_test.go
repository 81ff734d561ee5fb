package query

import (
	"testing"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
)

func buildInventory() *nbt.Node {
	root := nbt.NewCompound()
	inv := nbt.NewList()
	for i, count := range []int8{1, 5, 2} {
		item := nbt.NewCompound()
		item.Put("Slot", nbt.NewByte(int8(i)))
		item.Put("Count", nbt.NewByte(count))
		inv.Append(item)
	}
	root.Put("Inventory", inv)
	root.Put("Pos", nbt.NewIntArray([]int32{10, 64, -20}))
	return root
}

func TestGetNestedPath(t *testing.T) {
	root := buildInventory()
	v, err := Get(root, "Inventory[1].Count")
	if err != nil {
		t.Fatal(err)
	}
	got, _ := v.AsByte()
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestGetArrayIndex(t *testing.T) {
	root := buildInventory()
	v, err := Get(root, "Pos[2]")
	if err != nil {
		t.Fatal(err)
	}
	_ = v
}

func TestGetMissingField(t *testing.T) {
	root := buildInventory()
	if _, err := Get(root, "Nope"); err == nil {
		t.Fatal("expected error for missing field")
	}
}

func TestEvalExpression(t *testing.T) {
	root := buildInventory()
	result, err := Eval(root, `len(Inventory)`)
	if err != nil {
		t.Fatal(err)
	}
	if result.(int) != 3 {
		t.Fatalf("got %v, want 3", result)
	}
}

func TestFilterList(t *testing.T) {
	root := buildInventory()
	inv, _ := root.Get("Inventory")
	indices, err := Filter(inv, `value.Count > 1`)
	if err != nil {
		t.Fatal(err)
	}
	if len(indices) != 2 {
		t.Fatalf("got %v, want 2 matches", indices)
	}
}
