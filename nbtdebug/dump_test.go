package nbtdebug

import (
	"strings"
	"testing"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
)

func TestDumpCompoundNoColor(t *testing.T) {
	c := nbt.NewCompound()
	c.Put("name", nbt.NewString("Hello"))
	c.Put("health", nbt.NewByte(20))

	var sb strings.Builder
	off := false
	if err := Dump(&sb, "root", c, &Options{Color: &off}); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{"root", "TAG_Compound", `name: "Hello"`, "health: 20b"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump output missing %q, got:\n%s", want, out)
		}
	}
}

func TestDumpListNoColor(t *testing.T) {
	list := nbt.NewList()
	list.Append(nbt.NewInt(1))
	list.Append(nbt.NewInt(2))

	var sb strings.Builder
	off := false
	if err := Dump(&sb, "nums", list, &Options{Color: &off}); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "[0]: 1") || !strings.Contains(out, "[1]: 2") {
		t.Fatalf("dump output missing indexed elements, got:\n%s", out)
	}
}

func TestLogfRendersNode(t *testing.T) {
	var sb strings.Builder
	Logf(&sb, "value=%s\n", nbt.NewInt(42))
	if !strings.Contains(sb.String(), "42") {
		t.Fatalf("Logf output missing rendered node: %q", sb.String())
	}
}
