// Package script provides the opaque locking/unlocking script type consumed
// by transaction serialization and sighash computation. Scripts are treated
// as byte programs; no interpretation happens here beyond push-aware walking,
// which code-separator removal needs to avoid splitting push data.
package script

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Opcodes this package needs by name. Values are the protocol byte values.
const (
	Op0             = 0x00
	OpPUSHDATA1     = 0x4c
	OpPUSHDATA2     = 0x4d
	OpPUSHDATA4     = 0x4e
	OpTRUE          = 0x51
	OpRETURN        = 0x6a
	OpDUP           = 0x76
	OpEQUALVERIFY   = 0x88
	OpHASH160       = 0xa9
	OpCODESEPARATOR = 0xab
	OpCHECKSIG      = 0xac
)

// Script is an opaque byte-serializable program.
type Script []byte

// NewFromBytes wraps b as a Script without copying.
func NewFromBytes(b []byte) Script {
	return Script(b)
}

// NewFromHex decodes a hex-encoded script.
func NewFromHex(s string) (Script, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return Script(b), nil
}

// Bytes returns the raw serialized script bytes.
func (s Script) Bytes() []byte {
	return []byte(s)
}

// Hex returns the script as lowercase hex.
func (s Script) Hex() string {
	return hex.EncodeToString(s)
}

// AppendPushData appends data with the minimal push opcode for its length.
func (s *Script) AppendPushData(data []byte) error {
	n := len(data)
	switch {
	case n <= 0x4b:
		*s = append(*s, byte(n))
	case n <= 0xff:
		*s = append(*s, OpPUSHDATA1, byte(n))
	case n <= 0xffff:
		var l [2]byte
		binary.LittleEndian.PutUint16(l[:], uint16(n))
		*s = append(*s, OpPUSHDATA2, l[0], l[1])
	case n <= 0x7fffffff:
		var l [4]byte
		binary.LittleEndian.PutUint32(l[:], uint32(n))
		*s = append(*s, OpPUSHDATA4, l[0], l[1], l[2], l[3])
	default:
		return ErrPushTooLarge
	}
	*s = append(*s, data...)
	return nil
}

// AppendOpcodes appends raw opcode bytes.
func (s *Script) AppendOpcodes(ops ...byte) {
	*s = append(*s, ops...)
}

// RemoveCodeSeparators returns a copy of the script with every
// OP_CODESEPARATOR opcode stripped. The walk is push-aware so a 0xab byte
// inside push data is left alone. A truncated trailing push is kept verbatim.
func (s Script) RemoveCodeSeparators() Script {
	out := make(Script, 0, len(s))
	i := 0
	for i < len(s) {
		op := s[i]
		adv := 1
		switch {
		case op <= 0x4b:
			adv = 1 + int(op)
		case op == OpPUSHDATA1:
			if i+1 < len(s) {
				adv = 2 + int(s[i+1])
			} else {
				adv = len(s) - i
			}
		case op == OpPUSHDATA2:
			if i+2 < len(s) {
				adv = 3 + int(binary.LittleEndian.Uint16(s[i+1:i+3]))
			} else {
				adv = len(s) - i
			}
		case op == OpPUSHDATA4:
			if i+4 < len(s) {
				adv = 5 + int(binary.LittleEndian.Uint32(s[i+1:i+5]))
			} else {
				adv = len(s) - i
			}
		case op == OpCODESEPARATOR:
			i++
			continue
		}
		if i+adv > len(s) {
			adv = len(s) - i
		}
		out = append(out, s[i:i+adv]...)
		i += adv
	}
	return out
}
