package yaml

import (
	"testing"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	c := nbt.NewCompound()
	c.Put("name", nbt.NewString("Hello"))
	c.Put("health", nbt.NewByte(20))
	ints := nbt.NewIntArray([]int32{1, 2, 3})
	c.Put("uuid", ints)

	data, err := Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v\nyaml:\n%s", err, data)
	}
	if !nbt.Equal(c, got) {
		t.Fatalf("round trip mismatch: %+v vs %+v", c, got)
	}
}

func TestListRoundTrip(t *testing.T) {
	list := nbt.NewList()
	list.Append(nbt.NewDouble(1.5))
	list.Append(nbt.NewDouble(2.5))

	data, err := Marshal(list)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if !nbt.Equal(list, got) {
		t.Fatalf("round trip mismatch: %+v vs %+v", list, got)
	}
}
