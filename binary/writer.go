package binary

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

// writer wraps an io.Writer with the big-endian primitives the wire
// format is built from.
type writer struct {
	w io.Writer
}

func (w *writer) write(b []byte) error {
	_, err := w.w.Write(b)
	return err
}

func (w *writer) writeByte(b byte) error {
	return w.write([]byte{b})
}

func (w *writer) writeUint16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return w.write(b[:])
}

func (w *writer) writeInt32(v int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return w.write(b[:])
}

func (w *writer) writeInt64(v int64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return w.write(b[:])
}

// WriteRoot encodes name/value as a single named tag: id byte, name, then
// payload. Passing a nil value writes a bare TAG_End.
func WriteRoot(w io.Writer, name string, value *nbt.Node) error {
	wr := &writer{w: w}
	if value == nil {
		return wr.writeByte(byte(tag.End))
	}
	return writeNamedTag(wr, name, value)
}

func writeNamedTag(w *writer, name string, value *nbt.Node) error {
	if err := w.writeByte(byte(value.Kind())); err != nil {
		return err
	}
	if err := writeStringPayload(w, name); err != nil {
		return err
	}
	return writePayload(w, value)
}

func writePayload(w *writer, n *nbt.Node) error {
	switch n.Kind() {
	case tag.Byte:
		v, _ := n.AsByte()
		return w.writeByte(byte(v))
	case tag.Short:
		v, _ := n.AsShort()
		return w.writeUint16(uint16(v))
	case tag.Int:
		v, _ := n.AsInt()
		return w.writeInt32(v)
	case tag.Long:
		v, _ := n.AsLong()
		return w.writeInt64(v)
	case tag.Float:
		v, _ := n.AsFloat()
		return w.writeInt32(int32(math32Bits(v)))
	case tag.Double:
		v, _ := n.AsDouble()
		return w.writeInt64(int64(math64Bits(v)))
	case tag.String:
		v, _ := n.AsString()
		return writeStringPayload(w, v)
	case tag.ByteArray:
		v, _ := n.AsByteArray()
		return writeByteArrayPayload(w, v)
	case tag.IntArray:
		v, _ := n.AsIntArray()
		return writeIntArrayPayload(w, v)
	case tag.LongArray:
		v, _ := n.AsLongArray()
		return writeLongArrayPayload(w, v)
	case tag.List:
		return writeListPayload(w, n)
	case tag.Compound:
		return writeCompoundPayload(w, n)
	default:
		return fmt.Errorf("nbt/binary: cannot write unknown tag kind %s", n.Kind())
	}
}

func writeStringPayload(w *writer, s string) error {
	if len(s) > 65535 {
		return fmt.Errorf("%w: %d bytes", nbt.ErrStringTooLong, len(s))
	}
	if err := w.writeUint16(uint16(len(s))); err != nil {
		return err
	}
	return w.write([]byte(s))
}

func writeByteArrayPayload(w *writer, v []int8) error {
	if err := w.writeInt32(int32(len(v))); err != nil {
		return err
	}
	b := make([]byte, len(v))
	for i, x := range v {
		b[i] = byte(x)
	}
	return w.write(b)
}

func writeIntArrayPayload(w *writer, v []int32) error {
	if err := w.writeInt32(int32(len(v))); err != nil {
		return err
	}
	for _, x := range v {
		if err := w.writeInt32(x); err != nil {
			return err
		}
	}
	return nil
}

func writeLongArrayPayload(w *writer, v []int64) error {
	if err := w.writeInt32(int32(len(v))); err != nil {
		return err
	}
	for _, x := range v {
		if err := w.writeInt64(x); err != nil {
			return err
		}
	}
	return nil
}

func writeListPayload(w *writer, list *nbt.Node) error {
	elemKind, _ := list.ElementKind()
	if err := w.writeByte(byte(elemKind)); err != nil {
		return err
	}
	items, _ := list.Items()
	if err := w.writeInt32(int32(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := writePayload(w, item); err != nil {
			return err
		}
	}
	return nil
}

func writeCompoundPayload(w *writer, c *nbt.Node) error {
	var err error
	c.Range(func(name string, v *nbt.Node) bool {
		err = writeNamedTag(w, name, v)
		return err == nil
	})
	if err != nil {
		return err
	}
	return w.writeByte(byte(tag.End))
}
