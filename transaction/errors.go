package transaction

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("transaction: required parameter is nil")

	// ErrIndexOutOfRange indicates the input index is not within the
	// transaction's input list.
	ErrIndexOutOfRange = errors.New("transaction: input index out of range")

	// ErrMissingHashType indicates a signature carries no sighash type,
	// so the digest it was made over cannot be recomputed.
	ErrMissingHashType = errors.New("transaction: signature has no sighash type")

	// ErrMalformedTx indicates transaction bytes failed to deserialize.
	ErrMalformedTx = errors.New("transaction: malformed transaction bytes")

	// ErrInvalidPrevTxID indicates a previous txid is not 32 bytes.
	ErrInvalidPrevTxID = errors.New("transaction: previous txid must be 32 bytes")

	// ErrSigningFailed indicates the ECDSA primitive rejected the operation.
	ErrSigningFailed = errors.New("transaction: signing failed")

	// ErrInvalidSignature indicates signature bytes failed to parse.
	ErrInvalidSignature = errors.New("transaction: invalid signature encoding")
)
