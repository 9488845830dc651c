package transaction

import (
	"fmt"

	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	sighash "github.com/bsv-blockchain/go-sdk/transaction/sighash"

	"github.com/DarkPayCoin/darkpay-bitcore-lib/buffer"
	"github.com/DarkPayCoin/darkpay-bitcore-lib/script"
)

// sighashBaseMask extracts the base flag (All/None/Single) from a sighash
// flag that may carry modifier bits.
const sighashBaseMask = 0x1f

// SigHash computes the 32-byte digest a signature over input inputIndex
// commits to, returned in display byte order.
//
// The preimage is the structured form: version, an aggregate hash of all
// prevouts, an aggregate hash of all sequence numbers, the target input's
// prevout, the code-separator-stripped subscript (length-prefixed), the
// spent amount, the target input's sequence number, an aggregate hash of
// all outputs, lock-time, and the 4-byte sighash flag. Every multi-byte
// integer is little-endian and each aggregate is a double SHA-256.
//
// The three aggregates always cover all inputs and outputs: the flag is
// committed to in the preimage tail but does not restrict them, so None,
// Single, and AnyOneCanPay produce distinct digests without changing which
// prevouts, sequences, or outputs are hashed. LegacySigHash is the variant
// whose serialization branches per flag.
//
// The spent amount for inputIndex comes from tx.InputAmounts when that
// list is present, otherwise from the input's linked Output, otherwise 0.
func SigHash(tx *Transaction, flag sighash.Flag, inputIndex int, subscript script.Script) ([]byte, error) {
	if tx == nil {
		return nil, fmt.Errorf("%w: tx", ErrNilParam)
	}
	if inputIndex < 0 || inputIndex >= len(tx.Inputs) {
		return nil, fmt.Errorf("%w: index %d with %d inputs", ErrIndexOutOfRange, inputIndex, len(tx.Inputs))
	}

	in := tx.Inputs[inputIndex]
	scriptBuf := subscript.RemoveCodeSeparators().Bytes()

	w := buffer.NewWriter()
	w.WriteUint32LE(tx.Version)
	w.WriteBytes(hashPrevouts(tx))
	w.WriteBytes(hashSequence(tx))
	w.WriteReverse(in.PrevTxID)
	w.WriteUint32LE(in.OutputIndex)
	w.WriteVarInt(uint64(len(scriptBuf)))
	w.WriteBytes(scriptBuf)
	w.WriteUint64LE(resolveInputAmount(tx, inputIndex))
	w.WriteUint32LE(in.SequenceNumber)
	w.WriteBytes(hashOutputs(tx))
	w.WriteUint32LE(tx.LockTime)
	w.WriteUint32LE(uint32(flag))

	return reverseBytes(bsvhash.Sha256d(w.Bytes())), nil
}

// hashPrevouts aggregates every input's (txid, output index) pair.
func hashPrevouts(tx *Transaction) []byte {
	w := buffer.NewWriter()
	for _, in := range tx.Inputs {
		w.WriteReverse(in.PrevTxID)
		w.WriteUint32LE(in.OutputIndex)
	}
	return bsvhash.Sha256d(w.Bytes())
}

// hashSequence aggregates every input's sequence number.
func hashSequence(tx *Transaction) []byte {
	w := buffer.NewWriter()
	for _, in := range tx.Inputs {
		w.WriteUint32LE(in.SequenceNumber)
	}
	return bsvhash.Sha256d(w.Bytes())
}

// hashOutputs aggregates every output in canonical serialized form.
func hashOutputs(tx *Transaction) []byte {
	w := buffer.NewWriter()
	for _, out := range tx.Outputs {
		out.serializeTo(w)
	}
	return bsvhash.Sha256d(w.Bytes())
}

// resolveInputAmount returns the spent amount for input idx. The
// transaction-level override list wins over the input's linked Output;
// with neither present the amount is zero satoshis.
func resolveInputAmount(tx *Transaction, idx int) uint64 {
	if tx.InputAmounts != nil && idx < len(tx.InputAmounts) {
		return tx.InputAmounts[idx]
	}
	if out := tx.Inputs[idx].Output; out != nil {
		return out.Satoshis
	}
	return 0
}
