package transaction

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkPayCoin/darkpay-bitcore-lib/script"
)

// --- Serialization tests ---

func TestTransaction_SerializeRoundTrip(t *testing.T) {
	tx := twoInputTx(t)
	tx.Inputs[0].UnlockingScript = script.Script{0x01, 0xaa}

	parsed, err := NewTransactionFromBytes(tx.Bytes())
	require.NoError(t, err)

	assert.Equal(t, tx.Version, parsed.Version)
	assert.Equal(t, tx.LockTime, parsed.LockTime)
	require.Len(t, parsed.Inputs, 2)
	require.Len(t, parsed.Outputs, 2)
	assert.Equal(t, tx.Inputs[0].PrevTxID, parsed.Inputs[0].PrevTxID)
	assert.Equal(t, tx.Inputs[0].OutputIndex, parsed.Inputs[0].OutputIndex)
	assert.Equal(t, tx.Inputs[0].SequenceNumber, parsed.Inputs[0].SequenceNumber)
	assert.Equal(t, tx.Inputs[0].UnlockingScript, parsed.Inputs[0].UnlockingScript)
	assert.Equal(t, tx.Outputs[0].Satoshis, parsed.Outputs[0].Satoshis)
	assert.Equal(t, tx.Outputs[0].LockingScript, parsed.Outputs[0].LockingScript)

	assert.Equal(t, tx.Bytes(), parsed.Bytes())
}

func TestTransaction_HexRoundTrip(t *testing.T) {
	tx := simpleTx()
	parsed, err := NewTransactionFromHex(tx.Hex())
	require.NoError(t, err)
	assert.Equal(t, tx.Hex(), parsed.Hex())
}

func TestTransaction_SimpleTxWireFormat(t *testing.T) {
	// Hand-assembled wire form of simpleTx.
	want := "01000000" + // version
		"01" + // input count
		hex.EncodeToString(make([]byte, 32)) + // prevout txid
		"00000000" + // prevout index
		"00" + // empty unlocking script
		"ffffffff" + // sequence
		"01" + // output count
		"00f2052a01000000" + // 5 000 000 000 satoshis LE
		"00" + // empty locking script
		"00000000" // lock time
	assert.Equal(t, want, simpleTx().Hex())
}

func TestNewTransactionFromBytes_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short version", []byte{0x01, 0x00}},
		{"truncated after count", []byte{0x01, 0x00, 0x00, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransactionFromBytes(tt.data)
			assert.ErrorIs(t, err, ErrMalformedTx)
		})
	}
}

func TestNewTransactionFromBytes_TrailingBytes(t *testing.T) {
	raw := append(simpleTx().Bytes(), 0x00)
	_, err := NewTransactionFromBytes(raw)
	assert.ErrorIs(t, err, ErrMalformedTx)
}

func TestNewTransactionFromHex_Invalid(t *testing.T) {
	_, err := NewTransactionFromHex("not hex")
	assert.ErrorIs(t, err, ErrMalformedTx)
}

// --- TxID tests ---

func TestTransaction_TxID(t *testing.T) {
	tx := simpleTx()

	// TxID is the reversed double-SHA256 of the serialized tx.
	first := sha256.Sum256(tx.Bytes())
	second := sha256.Sum256(first[:])
	want := make([]byte, 32)
	for i := range want {
		want[i] = second[31-i]
	}

	assert.Equal(t, want, tx.TxID())
	assert.Equal(t, hex.EncodeToString(want), tx.TxIDHex())
}

func TestTransaction_TxIDChangesWithContent(t *testing.T) {
	a := simpleTx()
	b := simpleTx()
	b.LockTime = 1
	assert.NotEqual(t, a.TxID(), b.TxID())
}

// --- Input construction tests ---

func TestNewInput(t *testing.T) {
	id := make([]byte, 32)
	id[0] = 0xde

	in, err := NewInput(id, 3)
	require.NoError(t, err)
	assert.Equal(t, id, in.PrevTxID)
	assert.Equal(t, uint32(3), in.OutputIndex)
	assert.Equal(t, uint32(0xffffffff), in.SequenceNumber)

	// The input must own its txid copy.
	id[0] = 0x00
	assert.Equal(t, byte(0xde), in.PrevTxID[0])
}

func TestNewInput_BadLength(t *testing.T) {
	_, err := NewInput(make([]byte, 31), 0)
	assert.ErrorIs(t, err, ErrInvalidPrevTxID)
}

func TestNewInputFromTxIDHex(t *testing.T) {
	txid := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	in, err := NewInputFromTxIDHex(txid, 1)
	require.NoError(t, err)
	assert.Equal(t, txid, hex.EncodeToString(in.PrevTxID))

	_, err = NewInputFromTxIDHex("zz", 0)
	assert.ErrorIs(t, err, ErrInvalidPrevTxID)
}
