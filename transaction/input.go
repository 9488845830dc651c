package transaction

import (
	"encoding/hex"
	"fmt"

	"github.com/DarkPayCoin/darkpay-bitcore-lib/buffer"
	"github.com/DarkPayCoin/darkpay-bitcore-lib/script"
)

// Input spends one output of a previous transaction.
//
// PrevTxID is held in display byte order (as txids appear in hex) and is
// reversed on the wire. Output, when set, links the spent output so its
// amount is available to sighash computation.
type Input struct {
	PrevTxID        []byte
	OutputIndex     uint32
	SequenceNumber  uint32
	UnlockingScript script.Script
	Output          *Output
}

// NewInput builds an input from a display-order txid. The sequence number
// defaults to final (0xffffffff).
func NewInput(prevTxID []byte, outputIndex uint32) (*Input, error) {
	if len(prevTxID) != 32 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidPrevTxID, len(prevTxID))
	}
	id := make([]byte, 32)
	copy(id, prevTxID)
	return &Input{
		PrevTxID:       id,
		OutputIndex:    outputIndex,
		SequenceNumber: 0xffffffff,
	}, nil
}

// NewInputFromTxIDHex builds an input from a conventional txid hex string.
func NewInputFromTxIDHex(txidHex string, outputIndex uint32) (*Input, error) {
	id, err := hex.DecodeString(txidHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrevTxID, err)
	}
	return NewInput(id, outputIndex)
}

func (in *Input) serializeTo(w *buffer.Writer) {
	w.WriteReverse(in.PrevTxID)
	w.WriteUint32LE(in.OutputIndex)
	w.WriteVarInt(uint64(len(in.UnlockingScript)))
	w.WriteBytes(in.UnlockingScript.Bytes())
	w.WriteUint32LE(in.SequenceNumber)
}

func readInput(r *buffer.Reader) (*Input, error) {
	in := &Input{}

	id, err := r.ReadReverse(32)
	if err != nil {
		return nil, err
	}
	in.PrevTxID = id

	if in.OutputIndex, err = r.ReadUint32LE(); err != nil {
		return nil, err
	}

	scriptLen, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}
	scriptBytes, err := r.ReadBytes(int(scriptLen))
	if err != nil {
		return nil, err
	}
	in.UnlockingScript = script.NewFromBytes(scriptBytes)

	if in.SequenceNumber, err = r.ReadUint32LE(); err != nil {
		return nil, err
	}
	return in, nil
}
