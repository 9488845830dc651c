// Package buffer provides the little-endian byte reader and writer used to
// build and parse transaction wire data.
//
// Multi-byte integers are little-endian on the wire. 32-byte hash
// identifiers (txids, block hashes) are displayed big-endian but carried
// little-endian, so they cross the boundary via WriteReverse/ReadReverse.
package buffer

import (
	"bytes"
	"encoding/binary"
)

// Writer accumulates wire-format bytes. The zero value is ready to use.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBytes appends b as-is.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// WriteReverse appends b in reversed byte order. Used for 32-byte hash
// identifiers, which are displayed big-endian but serialized little-endian.
func (w *Writer) WriteReverse(b []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		w.buf.WriteByte(b[i])
	}
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf.WriteByte(v)
}

// WriteUint16LE appends v as 2 little-endian bytes.
func (w *Writer) WriteUint16LE(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint32LE appends v as 4 little-endian bytes.
func (w *Writer) WriteUint32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint64LE appends v as 8 little-endian bytes.
func (w *Writer) WriteUint64LE(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteVarInt appends v in Bitcoin variable-length integer encoding:
//
//	< 0xfd            1 byte
//	<= 0xffff         0xfd + uint16 LE
//	<= 0xffffffff     0xfe + uint32 LE
//	otherwise         0xff + uint64 LE
func (w *Writer) WriteVarInt(v uint64) {
	switch {
	case v < 0xfd:
		w.buf.WriteByte(byte(v))
	case v <= 0xffff:
		w.buf.WriteByte(0xfd)
		w.WriteUint16LE(uint16(v))
	case v <= 0xffffffff:
		w.buf.WriteByte(0xfe)
		w.WriteUint32LE(uint32(v))
	default:
		w.buf.WriteByte(0xff)
		w.WriteUint64LE(v)
	}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes flattens the accumulated writes into a single byte slice.
// The returned slice is a copy; further writes do not alias it.
func (w *Writer) Bytes() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	return out
}
