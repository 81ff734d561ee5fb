package binary

import (
	"bytes"
	"testing"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

func TestSimpleCompoundRoundTrip(t *testing.T) {
	want := []byte{
		0x0A, 0x00, 0x00,
		0x08, 0x00, 0x04, 'n', 'a', 'm', 'e', 0x00, 0x05, 'H', 'e', 'l', 'l', 'o',
		0x00,
	}

	name, value, err := ReadRoot(bytes.NewReader(want), true)
	if err != nil {
		t.Fatal(err)
	}
	if name != "" {
		t.Fatalf("root name = %q, want \"\"", name)
	}
	s, err := value.GetStrict("name", tag.String)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := s.AsString()
	if got != "Hello" {
		t.Fatalf("name = %q, want Hello", got)
	}

	var buf bytes.Buffer
	if err := WriteRoot(&buf, "", value); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("WriteRoot = % X, want % X", buf.Bytes(), want)
	}
}

func TestEmptyList(t *testing.T) {
	c := nbt.NewCompound()
	_, _ = c.Put("xs", nbt.NewList())

	var buf bytes.Buffer
	if err := WriteRoot(&buf, "", c); err != nil {
		t.Fatal(err)
	}

	_, value, err := ReadRoot(bytes.NewReader(buf.Bytes()), true)
	if err != nil {
		t.Fatal(err)
	}
	xs, ok := value.Get("xs")
	if !ok {
		t.Fatal("missing xs")
	}
	if xs.Len() != 0 {
		t.Fatalf("len = %d, want 0", xs.Len())
	}
}

func TestLongArrayWire(t *testing.T) {
	want := []byte{
		0x00, 0x00, 0x00, 0x02,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88,
	}
	n := nbt.NewLongArray([]int64{0x0102030405060708, 0x1122334455667788})

	var buf bytes.Buffer
	w := &writer{w: &buf}
	v, _ := n.AsLongArray()
	if err := writeLongArrayPayload(w, v); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("payload = % X, want % X", buf.Bytes(), want)
	}

	r := &reader{r: bytes.NewReader(want)}
	got, err := readLongArray(r)
	if err != nil {
		t.Fatal(err)
	}
	if !nbt.Equal(got, n) {
		t.Fatal("round-trip mismatch")
	}
}

func TestSizeEstimateMatchesWriterExactly(t *testing.T) {
	c := nbt.NewCompound()
	_, _ = c.Put("name", nbt.NewString("Hello"))
	l := nbt.NewList()
	_ = l.Append(nbt.NewInt(1))
	_ = l.Append(nbt.NewInt(2))
	_, _ = c.Put("xs", l)
	_, _ = c.Put("big", nbt.NewLongArray([]int64{1, 2, 3}))

	var buf bytes.Buffer
	if err := WriteRoot(&buf, "root", c); err != nil {
		t.Fatal(err)
	}
	got := EstimateNamed("root", c)
	if got != buf.Len() {
		t.Fatalf("EstimateNamed = %d, want exactly %d", got, buf.Len())
	}
}

func TestUnknownTagID(t *testing.T) {
	bad := []byte{0x7F, 0x00, 0x00}
	_, _, err := ReadRoot(bytes.NewReader(bad), false)
	var ute *UnknownTagError
	if err == nil {
		t.Fatal("expected error")
	}
	if !asUnknownTagError(err, &ute) {
		t.Fatalf("err = %v, want *UnknownTagError", err)
	}
	if ute.ID != 0x7F {
		t.Fatalf("ID = %x, want 0x7F", ute.ID)
	}
}

func asUnknownTagError(err error, target **UnknownTagError) bool {
	if e, ok := err.(*UnknownTagError); ok {
		*target = e
		return true
	}
	return false
}
