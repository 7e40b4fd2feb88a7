// Package errdefs defines the error kinds shared by every algorithm family.
//
// Callers classify failures with errors.Is:
//
//	if errors.Is(err, errdefs.ErrInvalidArgument) { ... }
//
// Validation errors are returned before any cryptographic work is done.
// Failures of the underlying primitives (padding, key decoding, key type) are
// reported as ErrCrypto.
package errdefs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for empty or malformed input and out-of-range parameters.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCrypto is returned when a cipher, padding or key-decoding step fails.
	ErrCrypto = errors.New("cryptographic failure")
)

// InvalidArgument formats a message and wraps it as ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Crypto wraps err as ErrCrypto with a short description of the failing step.
// Both ErrCrypto and err match with errors.Is.
func Crypto(err error, step string) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrCrypto, step)
	}

	return fmt.Errorf("%w: %s: %w", ErrCrypto, step, err)
}
