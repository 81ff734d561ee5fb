package binary

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

// reader wraps an io.Reader with the offset tracking UnknownTagError needs
// and the small big-endian primitives the wire format is built from.
type reader struct {
	r      io.Reader
	offset int64
}

func (r *reader) readFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: wanted %d bytes at offset %d", ErrUnexpectedEOF, n, r.offset)
		}
		return nil, err
	}
	r.offset += int64(n)
	return buf, nil
}

func (r *reader) readByte() (byte, error) {
	b, err := r.readFull(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) readUint16() (uint16, error) {
	b, err := r.readFull(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) readInt32() (int32, error) {
	b, err := r.readFull(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (r *reader) readInt64() (int64, error) {
	b, err := r.readFull(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// ReadRoot decodes the canonical "named tag" framing used at the top of an
// NBT document: a single tag id, its name, and its payload. trailing
// controls whether leftover bytes after the root tag cause ErrTrailingData.
func ReadRoot(r io.Reader, trailing bool) (name string, value *nbt.Node, err error) {
	rd := &reader{r: r}
	name, value, err = readNamedTag(rd)
	if err != nil {
		return "", nil, err
	}
	if trailing {
		var probe [1]byte
		if n, _ := r.Read(probe[:]); n > 0 {
			return "", nil, ErrTrailingData
		}
	}
	return name, value, nil
}

func readNamedTag(r *reader) (string, *nbt.Node, error) {
	idByte, err := r.readByte()
	if err != nil {
		return "", nil, err
	}
	k := tag.Kind(idByte)
	if k == tag.End {
		return "", nil, nil
	}
	if !k.Valid() {
		return "", nil, &UnknownTagError{ID: idByte, Offset: r.offset - 1}
	}
	name, err := readStringPayload(r)
	if err != nil {
		return "", nil, err
	}
	v, err := readPayload(r, k)
	if err != nil {
		return "", nil, err
	}
	return name, v, nil
}

func readPayload(r *reader, k tag.Kind) (*nbt.Node, error) {
	switch k {
	case tag.Byte:
		b, err := r.readByte()
		if err != nil {
			return nil, err
		}
		return nbt.NewByte(int8(b)), nil
	case tag.Short:
		v, err := r.readUint16()
		if err != nil {
			return nil, err
		}
		return nbt.NewShort(int16(v)), nil
	case tag.Int:
		v, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		return nbt.NewInt(v), nil
	case tag.Long:
		v, err := r.readInt64()
		if err != nil {
			return nil, err
		}
		return nbt.NewLong(v), nil
	case tag.Float:
		v, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		return nbt.NewFloat(math32FromBits(uint32(v))), nil
	case tag.Double:
		v, err := r.readInt64()
		if err != nil {
			return nil, err
		}
		return nbt.NewDouble(math64FromBits(uint64(v))), nil
	case tag.String:
		s, err := readStringPayload(r)
		if err != nil {
			return nil, err
		}
		return nbt.NewString(s), nil
	case tag.ByteArray:
		return readByteArray(r)
	case tag.IntArray:
		return readIntArray(r)
	case tag.LongArray:
		return readLongArray(r)
	case tag.List:
		return readList(r)
	case tag.Compound:
		return readCompound(r)
	default:
		return nil, &UnknownTagError{ID: byte(k), Offset: r.offset}
	}
}

func readStringPayload(r *reader) (string, error) {
	n, err := r.readUint16()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	b, err := r.readFull(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

func readByteArray(r *reader) (*nbt.Node, error) {
	n, err := r.readInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &NegativeLengthError{Kind: tag.ByteArray, Length: n}
	}
	b, err := r.readFull(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]int8, len(b))
	for i, x := range b {
		out[i] = int8(x)
	}
	return nbt.NewByteArray(out), nil
}

func readIntArray(r *reader) (*nbt.Node, error) {
	n, err := r.readInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &NegativeLengthError{Kind: tag.IntArray, Length: n}
	}
	out := make([]int32, n)
	for i := range out {
		v, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return nbt.NewIntArray(out), nil
}

func readLongArray(r *reader) (*nbt.Node, error) {
	n, err := r.readInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &NegativeLengthError{Kind: tag.LongArray, Length: n}
	}
	out := make([]int64, n)
	for i := range out {
		v, err := r.readInt64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return nbt.NewLongArray(out), nil
}

func readList(r *reader) (*nbt.Node, error) {
	idByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	elemKind := tag.Kind(idByte)
	n, err := r.readInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &NegativeLengthError{Kind: tag.List, Length: n}
	}
	list := nbt.NewList()
	if elemKind == tag.End {
		return list, nil
	}
	if !elemKind.Valid() {
		return nil, &UnknownTagError{ID: idByte, Offset: r.offset - 5}
	}
	for i := int32(0); i < n; i++ {
		v, err := readPayload(r, elemKind)
		if err != nil {
			return nil, err
		}
		if err := list.Append(v); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func readCompound(r *reader) (*nbt.Node, error) {
	c := nbt.NewCompound()
	for {
		name, v, err := readNamedTag(r)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return c, nil
		}
		if _, err := c.Put(name, v); err != nil {
			return nil, err
		}
	}
}
