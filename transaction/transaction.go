// Package transaction provides transaction value types, wire serialization,
// and the signature-hash ("sighash") digest with its Sign/Verify call sites.
//
// All operations are pure functions over caller-owned values: nothing here
// mutates, caches, or retains a Transaction, and concurrent use across
// independent calls needs no locking.
package transaction

import (
	"encoding/hex"
	"fmt"

	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"

	"github.com/DarkPayCoin/darkpay-bitcore-lib/buffer"
)

// Transaction is an ordered set of inputs and outputs plus version and
// lock-time. InputAmounts, when non-nil, overrides the spent amount per
// input (aligned by index) for sighash computation; it takes precedence
// over each input's linked Output.
type Transaction struct {
	Version      uint32
	Inputs       []*Input
	Outputs      []*Output
	LockTime     uint32
	InputAmounts []uint64
}

// NewTransaction returns an empty version-1 transaction.
func NewTransaction() *Transaction {
	return &Transaction{Version: 1}
}

// AddInput appends in to the input list.
func (tx *Transaction) AddInput(in *Input) {
	tx.Inputs = append(tx.Inputs, in)
}

// AddOutput appends out to the output list.
func (tx *Transaction) AddOutput(out *Output) {
	tx.Outputs = append(tx.Outputs, out)
}

// Bytes serializes the transaction in standard wire format:
// version, varint input count, inputs, varint output count, outputs,
// lock-time.
func (tx *Transaction) Bytes() []byte {
	w := buffer.NewWriter()
	w.WriteUint32LE(tx.Version)
	w.WriteVarInt(uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		in.serializeTo(w)
	}
	w.WriteVarInt(uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		out.serializeTo(w)
	}
	w.WriteUint32LE(tx.LockTime)
	return w.Bytes()
}

// Hex returns the serialized transaction as hex.
func (tx *Transaction) Hex() string {
	return hex.EncodeToString(tx.Bytes())
}

// TxID returns the transaction id in display byte order (the reverse of
// the double-SHA256 of the serialized transaction).
func (tx *Transaction) TxID() []byte {
	return reverseBytes(bsvhash.Sha256d(tx.Bytes()))
}

// TxIDHex returns the transaction id as the conventional hex string.
func (tx *Transaction) TxIDHex() string {
	return hex.EncodeToString(tx.TxID())
}

// NewTransactionFromBytes deserializes a standard wire-format transaction.
func NewTransactionFromBytes(b []byte) (*Transaction, error) {
	r := buffer.NewReader(b)
	tx := &Transaction{}

	var err error
	if tx.Version, err = r.ReadUint32LE(); err != nil {
		return nil, fmt.Errorf("%w: version: %w", ErrMalformedTx, err)
	}

	nIn, err := r.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("%w: input count: %w", ErrMalformedTx, err)
	}
	for i := uint64(0); i < nIn; i++ {
		in, err := readInput(r)
		if err != nil {
			return nil, fmt.Errorf("%w: input %d: %w", ErrMalformedTx, i, err)
		}
		tx.Inputs = append(tx.Inputs, in)
	}

	nOut, err := r.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("%w: output count: %w", ErrMalformedTx, err)
	}
	for i := uint64(0); i < nOut; i++ {
		out, err := readOutput(r)
		if err != nil {
			return nil, fmt.Errorf("%w: output %d: %w", ErrMalformedTx, i, err)
		}
		tx.Outputs = append(tx.Outputs, out)
	}

	if tx.LockTime, err = r.ReadUint32LE(); err != nil {
		return nil, fmt.Errorf("%w: lock time: %w", ErrMalformedTx, err)
	}
	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedTx, r.Remaining())
	}
	return tx, nil
}

// NewTransactionFromHex deserializes a hex-encoded transaction.
func NewTransactionFromHex(s string) (*Transaction, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTx, err)
	}
	return NewTransactionFromBytes(b)
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
