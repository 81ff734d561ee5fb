package snbt

import (
	"strings"
	"testing"

	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

func TestModernScalarsRoundTrip(t *testing.T) {
	in := `{a:1b,b:2s,c:3,d:4L,e:5.0f,f:6.0d,g:"x"}`
	v, err := Parse(in, V1_21_5)
	if err != nil {
		t.Fatal(err)
	}

	wantKinds := map[string]tag.Kind{
		"a": tag.Byte, "b": tag.Short, "c": tag.Int, "d": tag.Long,
		"e": tag.Float, "f": tag.Double, "g": tag.String,
	}
	for name, k := range wantKinds {
		entry, ok := v.Get(name)
		if !ok {
			t.Fatalf("missing key %q", name)
		}
		if entry.Kind() != k {
			t.Fatalf("%s kind = %v, want %v", name, entry.Kind(), k)
		}
	}

	out := Write(v, V1_21_5)
	if out != in {
		t.Fatalf("round-trip = %q, want %q", out, in)
	}
}

func TestLegacyToleranceCrossParser(t *testing.T) {
	in := `{id:35,Damage:0s}`

	legacy, err := Parse(in, V1_8)
	if err != nil {
		t.Fatal(err)
	}
	idNode, _ := legacy.Get("id")
	if idNode.Kind() != tag.Int {
		t.Fatalf("legacy id kind = %v, want Int", idNode.Kind())
	}
	idVal, _ := idNode.AsInt()
	if idVal != 35 {
		t.Fatalf("legacy id = %d, want 35", idVal)
	}
	dmgNode, _ := legacy.Get("Damage")
	if dmgNode.Kind() != tag.Short {
		t.Fatalf("legacy Damage kind = %v, want Short", dmgNode.Kind())
	}

	modern, err := Parse(in, V1_21_5)
	if err != nil {
		t.Fatalf("modern parser should also accept this string: %v", err)
	}
	idNode2, _ := modern.Get("id")
	if idNode2.Kind() != tag.Int {
		t.Fatalf("modern id kind = %v, want Int", idNode2.Kind())
	}
}

func TestTypedIntArray(t *testing.T) {
	v, err := Parse("[I;1,2,3]", V1_21_5)
	if err != nil {
		t.Fatal(err)
	}
	got, err := v.AsIntArray()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}

	legacyArr, err := Parse("[I;1,2,3]", V1_8)
	if err != nil {
		t.Fatal(err)
	}
	got2, err := legacyArr.AsIntArray()
	if err != nil {
		t.Fatal(err)
	}
	if len(got2) != 3 {
		t.Fatalf("legacy array len = %d, want 3", len(got2))
	}
}

func TestParseErrorExcerpt(t *testing.T) {
	_, err := Parse(`{id:"incomplete`, V1_21_5)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasSuffix(err.Error(), `id:"incomplete<--[HERE]`) {
		t.Fatalf("error = %q, want suffix ...id:\"incomplete<--[HERE]", err.Error())
	}
}

func TestListInternTypeMismatch(t *testing.T) {
	_, err := Parse(`[1,"two"]`, V1_21_5)
	if err == nil {
		t.Fatal("expected error for mixed-kind list")
	}
}
