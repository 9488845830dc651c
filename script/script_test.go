package script

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Construction tests ---

func TestNewFromHex(t *testing.T) {
	s, err := NewFromHex("76a914")
	require.NoError(t, err)
	assert.Equal(t, []byte{OpDUP, OpHASH160, 0x14}, s.Bytes())
	assert.Equal(t, "76a914", s.Hex())
}

func TestNewFromHex_Invalid(t *testing.T) {
	_, err := NewFromHex("zz")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestAppendPushData(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		prefix []byte
	}{
		{"direct push", 0x4b, []byte{0x4b}},
		{"pushdata1", 0x4c, []byte{OpPUSHDATA1, 0x4c}},
		{"pushdata1 max", 0xff, []byte{OpPUSHDATA1, 0xff}},
		{"pushdata2", 0x100, []byte{OpPUSHDATA2, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := bytes.Repeat([]byte{0xee}, tt.n)
			s := Script{}
			require.NoError(t, s.AppendPushData(data))
			assert.Equal(t, append(tt.prefix, data...), s.Bytes())
		})
	}
}

// --- RemoveCodeSeparators tests ---

func TestRemoveCodeSeparators(t *testing.T) {
	s := Script{OpCODESEPARATOR, OpDUP, OpCODESEPARATOR, OpHASH160, OpCODESEPARATOR}
	assert.Equal(t, Script{OpDUP, OpHASH160}, s.RemoveCodeSeparators())
}

func TestRemoveCodeSeparators_NoSeparators(t *testing.T) {
	s := Script{OpDUP, OpHASH160, OpCHECKSIG}
	assert.Equal(t, s, s.RemoveCodeSeparators())
}

func TestRemoveCodeSeparators_PreservesPushData(t *testing.T) {
	// 0xab inside push data is data, not an opcode.
	s := Script{}
	require.NoError(t, s.AppendPushData([]byte{OpCODESEPARATOR, OpCODESEPARATOR}))
	assert.Equal(t, s, s.RemoveCodeSeparators())
}

func TestRemoveCodeSeparators_PushData1(t *testing.T) {
	payload := bytes.Repeat([]byte{OpCODESEPARATOR}, 0x60)
	s := Script{}
	require.NoError(t, s.AppendPushData(payload))
	s.AppendOpcodes(OpCODESEPARATOR, OpCHECKSIG)

	want := Script{}
	require.NoError(t, want.AppendPushData(payload))
	want.AppendOpcodes(OpCHECKSIG)

	assert.Equal(t, want, s.RemoveCodeSeparators())
}

func TestRemoveCodeSeparators_Empty(t *testing.T) {
	assert.Empty(t, Script{}.RemoveCodeSeparators())
}

func TestRemoveCodeSeparators_TruncatedPush(t *testing.T) {
	// Push opcode claims more data than remains; tail kept verbatim.
	s := Script{OpCODESEPARATOR, 0x05, 0x01, 0x02}
	assert.Equal(t, Script{0x05, 0x01, 0x02}, s.RemoveCodeSeparators())
}
