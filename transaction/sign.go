package transaction

import (
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	sighash "github.com/bsv-blockchain/go-sdk/transaction/sighash"

	"github.com/DarkPayCoin/darkpay-bitcore-lib/script"
)

// Signature is an ECDSA signature tagged with the sighash flag it was
// produced under. The flag is required to recompute the digest at
// verification time, so a Signature without it cannot be verified.
type Signature struct {
	Sig      *ec.Signature
	HashType sighash.Flag
}

// Serialize returns the DER-encoded signature with the sighash flag
// appended as the trailing byte, the form scripts carry.
func (s *Signature) Serialize() []byte {
	return append(s.Sig.Serialize(), byte(s.HashType))
}

// NewSignatureFromBytes parses the script form produced by Serialize:
// DER signature followed by a single sighash flag byte.
func NewSignatureFromBytes(b []byte) (*Signature, error) {
	if len(b) < 2 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSignature, len(b))
	}
	sig, err := ec.ParseSignature(b[:len(b)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return &Signature{Sig: sig, HashType: sighash.Flag(b[len(b)-1])}, nil
}

// Sign computes the sighash digest for input inputIndex and signs it with
// priv. The returned Signature carries flag so it is self-describing for
// later verification.
func Sign(tx *Transaction, priv *ec.PrivateKey, flag sighash.Flag, inputIndex int, subscript script.Script) (*Signature, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: private key", ErrNilParam)
	}
	digest, err := SigHash(tx, flag, inputIndex, subscript)
	if err != nil {
		return nil, err
	}
	// The ECDSA primitive takes the digest in wire order; SigHash returns
	// display order, so reverse before signing.
	sig, err := priv.Sign(reverseBytes(digest))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	return &Signature{Sig: sig, HashType: flag}, nil
}

// Verify recomputes the digest for input inputIndex under the signature's
// own sighash flag and checks sig against pub. A structurally valid but
// non-matching signature is (false, nil); missing arguments and a missing
// hash type are precondition errors.
func Verify(tx *Transaction, sig *Signature, pub *ec.PublicKey, inputIndex int, subscript script.Script) (bool, error) {
	if tx == nil {
		return false, fmt.Errorf("%w: tx", ErrNilParam)
	}
	if sig == nil || sig.Sig == nil {
		return false, fmt.Errorf("%w: signature", ErrNilParam)
	}
	if pub == nil {
		return false, fmt.Errorf("%w: public key", ErrNilParam)
	}
	if sig.HashType == 0 {
		return false, ErrMissingHashType
	}
	digest, err := SigHash(tx, sig.HashType, inputIndex, subscript)
	if err != nil {
		return false, err
	}
	return sig.Sig.Verify(reverseBytes(digest), pub), nil
}
