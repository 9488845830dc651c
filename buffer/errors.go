package buffer

import "errors"

var (
	// ErrShortBuffer indicates a read past the end of the buffer.
	ErrShortBuffer = errors.New("buffer: read past end of buffer")

	// ErrInvalidVarInt indicates a malformed variable-length integer prefix.
	ErrInvalidVarInt = errors.New("buffer: invalid varint encoding")
)
