package json

import (
	"testing"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	c := nbt.NewCompound()
	c.Put("name", nbt.NewString("Hello"))
	c.Put("health", nbt.NewByte(20))
	list := nbt.NewList()
	list.Append(nbt.NewInt(1))
	list.Append(nbt.NewInt(2))
	c.Put("scores", list)

	data, err := Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if !nbt.Equal(c, got) {
		t.Fatalf("round trip mismatch: %+v vs %+v", c, got)
	}
}

func TestMergePatch(t *testing.T) {
	c := nbt.NewCompound()
	c.Put("health", nbt.NewByte(20))

	patched, err := MergePatch(c, []byte(`{"value":[{"name":"health","value":{"type":"byte","value":5}}]}`))
	if err != nil {
		t.Fatal(err)
	}
	health, err := patched.GetStrict("health", tag.Byte)
	if err != nil {
		t.Fatal(err)
	}
	v, _ := health.AsByte()
	if v != 5 {
		t.Fatalf("health = %d, want 5", v)
	}
}
