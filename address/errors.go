package address

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("address: required parameter is nil")

	// ErrInvalidAddress indicates the address string failed base58check
	// decoding or has a wrong payload length.
	ErrInvalidAddress = errors.New("address: invalid address")

	// ErrInvalidWIF indicates the WIF string failed decoding.
	ErrInvalidWIF = errors.New("address: invalid WIF")
)
