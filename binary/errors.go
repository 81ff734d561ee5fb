package binary

import (
	"errors"
	"fmt"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

var (
	// ErrUnexpectedEOF is returned when a read would need more bytes than
	// the underlying reader has available.
	ErrUnexpectedEOF = errors.New("nbt/binary: unexpected end of input")

	// ErrInvalidUTF8 is returned when a string payload's bytes are not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("nbt/binary: invalid utf-8 in string payload")

	// ErrTrailingData is returned by ReadRoot (in strict mode) when bytes
	// remain after the root tag has been fully read.
	ErrTrailingData = errors.New("nbt/binary: trailing data after root tag")
)

// UnknownTagError reports an id byte that does not correspond to any
// defined tag.Kind, together with the byte offset at which it was read.
type UnknownTagError struct {
	ID     byte
	Offset int64
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("nbt/binary: unknown tag id 0x%02x at offset %d", e.ID, e.Offset)
}

// NegativeLengthError reports a length-prefixed payload (list or array)
// whose declared length was negative. It wraps nbt.ErrNegativeLength.
type NegativeLengthError struct {
	Kind   tag.Kind
	Length int32
}

func (e *NegativeLengthError) Error() string {
	return fmt.Sprintf("nbt/binary: negative length %d for %s", e.Length, e.Kind)
}

func (e *NegativeLengthError) Unwrap() error { return nbt.ErrNegativeLength }
