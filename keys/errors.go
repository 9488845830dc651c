package keys

import "errors"

var (
	// ErrInvalidEntropy indicates an unsupported mnemonic entropy size.
	ErrInvalidEntropy = errors.New("keys: entropy must be 128 or 256 bits")

	// ErrInvalidMnemonic indicates the mnemonic fails BIP39 validation.
	ErrInvalidMnemonic = errors.New("keys: invalid mnemonic")

	// ErrInvalidSeed indicates the seed is empty.
	ErrInvalidSeed = errors.New("keys: invalid seed")

	// ErrDerivationFailed indicates BIP32 child derivation failed.
	ErrDerivationFailed = errors.New("keys: derivation failed")

	// ErrIndexOutOfRange indicates a child index at or above the hardened
	// boundary was passed where a non-hardened index is required.
	ErrIndexOutOfRange = errors.New("keys: child index out of range")
)
