package transaction

import (
	"fmt"

	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	sighash "github.com/bsv-blockchain/go-sdk/transaction/sighash"

	"github.com/DarkPayCoin/darkpay-bitcore-lib/buffer"
	"github.com/DarkPayCoin/darkpay-bitcore-lib/script"
)

// blankedOutputAmount is the amount serialized for outputs blanked by a
// Single-type digest (-1 as an unsigned 64-bit value).
const blankedOutputAmount = 0xffffffffffffffff

// LegacySigHash computes the historical whole-transaction-copy digest for
// input inputIndex, returned in display byte order like SigHash.
//
// Unlike SigHash, the serialized copy branches on the flag: every input's
// script is blanked except the target, which carries the code-separator-
// stripped subscript; None drops all outputs and zeroes the other inputs'
// sequence numbers; Single truncates the outputs to the target index,
// blanks the preceding ones, and zeroes the other inputs' sequence
// numbers; AnyOneCanPay serializes only the target input.
//
// Callers select this variant explicitly; it is never a fallback for
// SigHash.
func LegacySigHash(tx *Transaction, flag sighash.Flag, inputIndex int, subscript script.Script) ([]byte, error) {
	if tx == nil {
		return nil, fmt.Errorf("%w: tx", ErrNilParam)
	}
	if inputIndex < 0 || inputIndex >= len(tx.Inputs) {
		return nil, fmt.Errorf("%w: index %d with %d inputs", ErrIndexOutOfRange, inputIndex, len(tx.Inputs))
	}

	base := flag & sighashBaseMask
	anyoneCanPay := flag&sighash.AnyOneCanPay != 0

	// Historical quirk kept for compatibility: a Single-type digest for an
	// input with no matching output is the constant 1, not a hash.
	if base == sighash.Single && inputIndex >= len(tx.Outputs) {
		digest := make([]byte, 32)
		digest[31] = 0x01
		return digest, nil
	}

	scriptBuf := subscript.RemoveCodeSeparators().Bytes()

	w := buffer.NewWriter()
	w.WriteUint32LE(tx.Version)

	if anyoneCanPay {
		w.WriteVarInt(1)
		writeLegacyInput(w, tx.Inputs[inputIndex], scriptBuf, tx.Inputs[inputIndex].SequenceNumber)
	} else {
		w.WriteVarInt(uint64(len(tx.Inputs)))
		for i, in := range tx.Inputs {
			if i == inputIndex {
				writeLegacyInput(w, in, scriptBuf, in.SequenceNumber)
				continue
			}
			seq := in.SequenceNumber
			if base == sighash.None || base == sighash.Single {
				seq = 0
			}
			writeLegacyInput(w, in, nil, seq)
		}
	}

	switch base {
	case sighash.None:
		w.WriteVarInt(0)
	case sighash.Single:
		w.WriteVarInt(uint64(inputIndex + 1))
		for i := 0; i < inputIndex; i++ {
			w.WriteUint64LE(blankedOutputAmount)
			w.WriteVarInt(0)
		}
		tx.Outputs[inputIndex].serializeTo(w)
	default:
		w.WriteVarInt(uint64(len(tx.Outputs)))
		for _, out := range tx.Outputs {
			out.serializeTo(w)
		}
	}

	w.WriteUint32LE(tx.LockTime)
	w.WriteUint32LE(uint32(flag))

	return reverseBytes(bsvhash.Sha256d(w.Bytes())), nil
}

func writeLegacyInput(w *buffer.Writer, in *Input, scriptBuf []byte, sequence uint32) {
	w.WriteReverse(in.PrevTxID)
	w.WriteUint32LE(in.OutputIndex)
	w.WriteVarInt(uint64(len(scriptBuf)))
	w.WriteBytes(scriptBuf)
	w.WriteUint32LE(sequence)
}
