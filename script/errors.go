package script

import "errors"

var (
	// ErrInvalidHex indicates the script hex string could not be decoded.
	ErrInvalidHex = errors.New("script: invalid hex")

	// ErrPushTooLarge indicates push data exceeds the PUSHDATA4 limit.
	ErrPushTooLarge = errors.New("script: push data too large")
)
