// Package address implements P2PKH addresses and WIF private key encoding.
package address

import (
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"github.com/btcsuite/btcutil/base58"

	"github.com/DarkPayCoin/darkpay-bitcore-lib/script"
)

// Base58check version bytes.
const (
	PrefixMainnet = 0x00
	PrefixTestnet = 0x6f

	wifPrefixMainnet = 0x80
	wifPrefixTestnet = 0xef

	// Trailing WIF byte marking a compressed public key.
	wifCompressedFlag = 0x01
)

// Address is a P2PKH address: the HASH160 of a compressed public key plus
// a network version byte.
type Address struct {
	PubKeyHash []byte
	Prefix     byte
}

// FromPublicKey derives the P2PKH address of a compressed public key.
func FromPublicKey(pub *ec.PublicKey, mainnet bool) (*Address, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: public key", ErrNilParam)
	}
	prefix := byte(PrefixTestnet)
	if mainnet {
		prefix = PrefixMainnet
	}
	return &Address{
		PubKeyHash: bsvhash.Hash160(pub.Compressed()),
		Prefix:     prefix,
	}, nil
}

// FromString decodes a base58check address string.
func FromString(s string) (*Address, error) {
	payload, prefix, err := base58.CheckDecode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if len(payload) != 20 {
		return nil, fmt.Errorf("%w: payload is %d bytes", ErrInvalidAddress, len(payload))
	}
	return &Address{PubKeyHash: payload, Prefix: prefix}, nil
}

// String returns the base58check form of the address.
func (a *Address) String() string {
	return base58.CheckEncode(a.PubKeyHash, a.Prefix)
}

// LockingScript returns the P2PKH locking script for the address:
// OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG.
func (a *Address) LockingScript() script.Script {
	s := script.Script{}
	s.AppendOpcodes(script.OpDUP, script.OpHASH160)
	_ = s.AppendPushData(a.PubKeyHash) // 20 bytes, always a direct push
	s.AppendOpcodes(script.OpEQUALVERIFY, script.OpCHECKSIG)
	return s
}

// EncodeWIF encodes a private key in compressed-key WIF form.
func EncodeWIF(priv *ec.PrivateKey, mainnet bool) (string, error) {
	if priv == nil {
		return "", fmt.Errorf("%w: private key", ErrNilParam)
	}
	prefix := byte(wifPrefixTestnet)
	if mainnet {
		prefix = wifPrefixMainnet
	}
	payload := append(priv.Serialize(), wifCompressedFlag)
	return base58.CheckEncode(payload, prefix), nil
}

// DecodeWIF decodes a WIF string back to a private key. Both the 32-byte
// uncompressed and 33-byte compressed payload forms are accepted.
func DecodeWIF(wif string) (*ec.PrivateKey, error) {
	payload, prefix, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWIF, err)
	}
	if prefix != wifPrefixMainnet && prefix != wifPrefixTestnet {
		return nil, fmt.Errorf("%w: unknown prefix %#x", ErrInvalidWIF, prefix)
	}
	switch len(payload) {
	case 32:
	case 33:
		if payload[32] != wifCompressedFlag {
			return nil, fmt.Errorf("%w: bad compression flag %#x", ErrInvalidWIF, payload[32])
		}
		payload = payload[:32]
	default:
		return nil, fmt.Errorf("%w: payload is %d bytes", ErrInvalidWIF, len(payload))
	}
	priv, _ := ec.PrivateKeyFromBytes(payload)
	return priv, nil
}
