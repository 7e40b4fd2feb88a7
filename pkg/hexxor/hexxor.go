// Package hexxor implements a single-nibble XOR stream cipher over hex strings.
//
// Every hex digit of the plaintext is XORed with one random key nibble, and
// the key nibble is appended as the last digit of the ciphertext, so the
// ciphertext carries its own key.
//
// Output is always uppercase, so decryption returns the canonical spelling of
// the plaintext. Letter case cannot be carried through: with key A both "a"
// and "A" become "0".
//
// This cipher offers no security: there are only 16 keys and the key travels
// with the data. Use it for obfuscation and demonstrations only.
package hexxor

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/idelchi/enigma/pkg/codec"
	"github.com/idelchi/enigma/pkg/errdefs"
)

const digits = "0123456789ABCDEF"

// Cipher draws key nibbles from its random source.
type Cipher struct {
	random io.Reader
}

// New returns a Cipher using random for key nibbles. A nil reader selects crypto/rand.
func New(random io.Reader) *Cipher {
	if random == nil {
		random = rand.Reader
	}

	return &Cipher{random: random}
}

// Encrypt XORs each digit of hexPlaintext with a fresh key nibble and appends the key.
// The result is uppercase and one digit longer than the input.
func (c *Cipher) Encrypt(hexPlaintext string) (string, error) {
	if !codec.IsHex(hexPlaintext) {
		return "", errdefs.InvalidArgument("plaintext must be a non-empty hex string")
	}

	var b [1]byte
	if _, err := io.ReadFull(c.random, b[:]); err != nil {
		return "", fmt.Errorf("drawing key nibble: %w", err)
	}

	key := b[0] & 0x0F

	return xorDigits(hexPlaintext, key) + string(digits[key]), nil
}

// Decrypt splits off the trailing key digit and XORs the remaining digits with it.
func (c *Cipher) Decrypt(hexCiphertext string) (string, error) {
	return Decrypt(hexCiphertext)
}

// Encrypt uses crypto/rand for the key nibble.
func Encrypt(hexPlaintext string) (string, error) {
	return New(nil).Encrypt(hexPlaintext)
}

// Decrypt reverses Encrypt. No randomness is involved.
func Decrypt(hexCiphertext string) (string, error) {
	if len(hexCiphertext) < 2 || !codec.IsHex(hexCiphertext) {
		return "", errdefs.InvalidArgument("ciphertext must be a hex string of at least two digits")
	}

	last := len(hexCiphertext) - 1

	return xorDigits(hexCiphertext[:last], nibble(hexCiphertext[last])), nil
}

// xorDigits expects s to be validated hex.
func xorDigits(s string, key byte) string {
	var sb strings.Builder

	sb.Grow(len(s) + 1)

	for i := range len(s) {
		sb.WriteByte(digits[nibble(s[i])^key])
	}

	return sb.String()
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
