package buffer

import (
	"encoding/binary"
	"fmt"
)

// Reader consumes wire-format bytes front to back. It does not copy the
// underlying slice on construction; callers must not mutate it while reading.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining reports how many unread bytes are left.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadBytes reads the next n bytes. The returned slice is a copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, n, r.Remaining())
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// ReadReverse reads the next n bytes in reversed order. Inverse of
// Writer.WriteReverse.
func (r *Reader) ReadReverse(n int) ([]byte, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b, nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16LE reads 2 little-endian bytes.
func (r *Reader) ReadUint16LE() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32LE reads 4 little-endian bytes.
func (r *Reader) ReadUint32LE() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64LE reads 8 little-endian bytes.
func (r *Reader) ReadUint64LE() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadVarInt reads a Bitcoin variable-length integer.
func (r *Reader) ReadVarInt() (uint64, error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return 0, err
	}
	switch tag {
	case 0xfd:
		v, err := r.ReadUint16LE()
		if err != nil {
			return 0, fmt.Errorf("%w: truncated uint16 varint", ErrInvalidVarInt)
		}
		return uint64(v), nil
	case 0xfe:
		v, err := r.ReadUint32LE()
		if err != nil {
			return 0, fmt.Errorf("%w: truncated uint32 varint", ErrInvalidVarInt)
		}
		return uint64(v), nil
	case 0xff:
		v, err := r.ReadUint64LE()
		if err != nil {
			return 0, fmt.Errorf("%w: truncated uint64 varint", ErrInvalidVarInt)
		}
		return v, nil
	default:
		return uint64(tag), nil
	}
}
