package xml

import (
	"testing"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	c := nbt.NewCompound()
	c.Put("name", nbt.NewString("Hello"))
	c.Put("health", nbt.NewByte(20))
	list := nbt.NewList()
	list.Append(nbt.NewLong(10))
	list.Append(nbt.NewLong(20))
	c.Put("scores", list)
	c.Put("uuid", nbt.NewIntArray([]int32{1, 2, 3, 4}))

	data, err := Marshal("root", c)
	if err != nil {
		t.Fatal(err)
	}
	name, got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v\nxml:\n%s", err, data)
	}
	if name != "root" {
		t.Fatalf("name = %q, want %q", name, "root")
	}
	if !nbt.Equal(c, got) {
		t.Fatalf("round trip mismatch: %+v vs %+v", c, got)
	}
}

func TestEmptyArrayRoundTrip(t *testing.T) {
	c := nbt.NewCompound()
	c.Put("empty", nbt.NewIntArray(nil))

	data, err := Marshal("", c)
	if err != nil {
		t.Fatal(err)
	}
	_, got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if !nbt.Equal(c, got) {
		t.Fatalf("round trip mismatch: %+v vs %+v", c, got)
	}
}
