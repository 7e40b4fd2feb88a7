package symmetric

import "errors"

var (
	// ErrInvalidPadding is returned when PKCS7 padding is malformed, which usually means a wrong key or IV.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when encrypted data length is not aligned with AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
)
