package nbt

import "errors"

var (
	// ErrTypeMismatch is returned when an operation requires a tag of a
	// specific kind but finds one of another kind.
	ErrTypeMismatch = errors.New("nbt: type mismatch")

	// ErrMissing is returned by strict compound accessors when the
	// requested key is absent.
	ErrMissing = errors.New("nbt: missing key")

	// ErrNegativeLength is returned when a length-prefixed payload (list or
	// array) declares a negative length.
	ErrNegativeLength = errors.New("nbt: negative length")

	// ErrStringTooLong is returned when a string's UTF-8 encoding exceeds
	// 65535 bytes, the maximum representable by the wire format's
	// unsigned 16-bit length prefix.
	ErrStringTooLong = errors.New("nbt: string exceeds 65535 bytes")
)
