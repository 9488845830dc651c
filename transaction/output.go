package transaction

import (
	"github.com/DarkPayCoin/darkpay-bitcore-lib/buffer"
	"github.com/DarkPayCoin/darkpay-bitcore-lib/script"
)

// Output carries a satoshi amount and the locking script that encumbers it.
type Output struct {
	Satoshis      uint64
	LockingScript script.Script
}

// serializeTo writes the canonical output form: 8-byte LE amount followed
// by the length-prefixed locking script. The same layout feeds both wire
// serialization and the sighash outputs aggregate.
func (out *Output) serializeTo(w *buffer.Writer) {
	w.WriteUint64LE(out.Satoshis)
	w.WriteVarInt(uint64(len(out.LockingScript)))
	w.WriteBytes(out.LockingScript.Bytes())
}

func readOutput(r *buffer.Reader) (*Output, error) {
	out := &Output{}

	var err error
	if out.Satoshis, err = r.ReadUint64LE(); err != nil {
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
	out.LockingScript = script.NewFromBytes(scriptBytes)
	return out, nil
}
