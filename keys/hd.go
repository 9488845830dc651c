// Package keys derives signing keys from BIP39 mnemonics via BIP32.
//
// Key hierarchy: m/44'/{coin}'/{account}'/{chain}/{index}.
package keys

import (
	"fmt"

	bip32 "github.com/bsv-blockchain/go-sdk/compat/bip32"
	"github.com/bsv-blockchain/go-sdk/compat/bip39"
	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	chaincfg "github.com/bsv-blockchain/go-sdk/transaction/chaincfg"
)

const (
	// Mnemonic entropy sizes.
	Mnemonic12Words = 128
	Mnemonic24Words = 256

	// BIP44 path constants.
	PurposeBIP44 = 44
	CoinType     = 0

	// Chain indices.
	ExternalChain = 0 // Receive addresses
	InternalChain = 1 // Change addresses

	// BIP32 hardened offset.
	Hardened = 0x80000000
)

// KeyChain wraps a BIP32 master key and derives key pairs along the BIP44
// hierarchy.
type KeyChain struct {
	masterKey *bip32.ExtendedKey
}

// KeyPair holds a derived public/private key pair and its derivation path.
type KeyPair struct {
	PrivateKey *ec.PrivateKey `json:"-"`
	PublicKey  *ec.PublicKey  `json:"public_key"`
	Path       string         `json:"path"`
}

// GenerateMnemonic creates a new BIP39 mnemonic. Use Mnemonic12Words (128)
// for 12 words or Mnemonic24Words (256) for 24 words.
func GenerateMnemonic(entropyBits int) (string, error) {
	if entropyBits != Mnemonic12Words && entropyBits != Mnemonic24Words {
		return "", ErrInvalidEntropy
	}

	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", fmt.Errorf("keys: failed to generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("keys: failed to generate mnemonic: %w", err)
	}

	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic string is valid BIP39.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// SeedFromMnemonic derives the 64-byte BIP39 seed from mnemonic + optional
// passphrase. An empty passphrase still participates in derivation.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if !ValidateMnemonic(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("keys: failed to derive seed: %w", err)
	}

	return seed, nil
}

// NewKeyChain creates a KeyChain from a BIP39 seed.
func NewKeyChain(seed []byte, mainnet bool) (*KeyChain, error) {
	if len(seed) == 0 {
		return nil, ErrInvalidSeed
	}

	net := &chaincfg.TestNet
	if mainnet {
		net = &chaincfg.MainNet
	}

	masterKey, err := bip32.NewMaster(seed, net)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}

	return &KeyChain{masterKey: masterKey}, nil
}

// DeriveKey derives the key pair at m/44'/{CoinType}'/{account}'/{chain}/{index}.
//
//	chain: ExternalChain (0) for receive, InternalChain (1) for change
//	index: address index, below the hardened boundary
func (kc *KeyChain) DeriveKey(account, chain, index uint32) (*KeyPair, error) {
	if account >= Hardened {
		return nil, fmt.Errorf("%w: account %d", ErrIndexOutOfRange, account)
	}
	if index >= Hardened {
		return nil, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, index)
	}

	// m/44'
	purpose, err := kc.masterKey.Child(PurposeBIP44 + Hardened)
	if err != nil {
		return nil, fmt.Errorf("%w: purpose derivation: %w", ErrDerivationFailed, err)
	}

	// m/44'/{coin}'
	coinType, err := purpose.Child(CoinType + Hardened)
	if err != nil {
		return nil, fmt.Errorf("%w: coin type derivation: %w", ErrDerivationFailed, err)
	}

	// m/44'/{coin}'/{account}'
	accountKey, err := coinType.Child(account + Hardened)
	if err != nil {
		return nil, fmt.Errorf("%w: account derivation: %w", ErrDerivationFailed, err)
	}

	// m/44'/{coin}'/{account}'/{chain}
	chainKey, err := accountKey.Child(chain)
	if err != nil {
		return nil, fmt.Errorf("%w: chain derivation: %w", ErrDerivationFailed, err)
	}

	// m/44'/{coin}'/{account}'/{chain}/{index}
	childKey, err := chainKey.Child(index)
	if err != nil {
		return nil, fmt.Errorf("%w: index derivation: %w", ErrDerivationFailed, err)
	}

	privKey, err := childKey.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to extract EC private key: %w", ErrDerivationFailed, err)
	}

	return &KeyPair{
		PrivateKey: privKey,
		PublicKey:  privKey.PubKey(),
		Path:       fmt.Sprintf("m/44'/%d'/%d'/%d/%d", CoinType, account, chain, index),
	}, nil
}
