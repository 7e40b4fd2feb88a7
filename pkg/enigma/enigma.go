// Package enigma is a flat, stateless surface over the algorithm packages.
//
// Functions that need randomness draw it from crypto/rand. Callers that need
// a deterministic source use the underlying packages directly.
package enigma

import (
	"crypto/rand"
	"math/big"

	"github.com/idelchi/enigma/pkg/asymmetric"
	"github.com/idelchi/enigma/pkg/classical"
	"github.com/idelchi/enigma/pkg/codec"
	"github.com/idelchi/enigma/pkg/hashing"
	"github.com/idelchi/enigma/pkg/hexxor"
	"github.com/idelchi/enigma/pkg/symmetric"
)

// RsaKey is a Base64 SPKI public key and PKCS#8 private key.
type RsaKey = asymmetric.KeyPair

// MD5 returns the uppercase hex MD5 digest of text.
func MD5(text string) string { return hashing.MD5Hex(text) }

// SHA1 returns the uppercase hex SHA-1 digest of text.
func SHA1(text string) string { return hashing.SHA1Hex(text) }

// SHA256 returns the uppercase hex SHA-256 digest of text.
func SHA256(text string) string { return hashing.SHA256Hex(text) }

// SHA384 returns the uppercase hex SHA-384 digest of text.
func SHA384(text string) string { return hashing.SHA384Hex(text) }

// SHA512 returns the uppercase hex SHA-512 digest of text.
func SHA512(text string) string { return hashing.SHA512Hex(text) }

// EncryptCaesar shifts every code point of text forward by shift.
func EncryptCaesar(text string, shift int) (string, error) {
	return classical.EncryptCaesar(text, shift)
}

// DecryptCaesar shifts every code point of text back by shift.
func DecryptCaesar(text string, shift int) (string, error) {
	return classical.DecryptCaesar(text, shift)
}

// EncryptVigenere enciphers the ASCII letters of text with keyword.
func EncryptVigenere(text, keyword string) (string, error) {
	return classical.EncryptVigenere(text, keyword)
}

// DecryptVigenere reverses EncryptVigenere.
func DecryptVigenere(text, keyword string) (string, error) {
	return classical.DecryptVigenere(text, keyword)
}

// EncryptFence writes text in a zig-zag over rails and reads it row by row.
func EncryptFence(text string, rails int) (string, error) {
	return classical.EncryptFence(text, rails)
}

// DecryptFence reverses EncryptFence.
func DecryptFence(text string, rails int) (string, error) {
	return classical.DecryptFence(text, rails)
}

// EncryptAes encrypts data with AES-CBC and PKCS#7 padding.
func EncryptAes(data []byte, key, iv string) ([]byte, error) {
	return symmetric.Encrypt(data, key, iv)
}

// DecryptAes reverses EncryptAes.
func DecryptAes(data []byte, key, iv string) ([]byte, error) {
	return symmetric.Decrypt(data, key, iv)
}

// EncryptAesHex is EncryptAes over text, returning uppercase hex.
func EncryptAesHex(text, key, iv string) (string, error) {
	return symmetric.EncryptString(text, key, iv)
}

// DecryptAesHex reverses EncryptAesHex.
func DecryptAesHex(hexText, key, iv string) (string, error) {
	return symmetric.DecryptString(hexText, key, iv)
}

// CreateRsaKey generates a key pair. A non-positive bits selects asymmetric.DefaultBits.
func CreateRsaKey(bits int) (RsaKey, error) {
	if bits <= 0 {
		bits = asymmetric.DefaultBits
	}

	return asymmetric.GenerateKeyPair(rand.Reader, bits)
}

// EncryptRsaPublic encrypts text for the holder of the private key.
func EncryptRsaPublic(text, publicKey string) (string, error) {
	return asymmetric.EncryptPublic(rand.Reader, text, publicKey)
}

// DecryptRsaPrivate reverses EncryptRsaPublic.
func DecryptRsaPrivate(text, privateKey string) (string, error) {
	return asymmetric.DecryptPrivate(text, privateKey)
}

// EncryptRsaPrivate encrypts text so that anyone with the public key can read it.
func EncryptRsaPrivate(text, privateKey string) (string, error) {
	return asymmetric.EncryptPrivate(text, privateKey)
}

// DecryptRsaPublic reverses EncryptRsaPrivate.
func DecryptRsaPublic(text, publicKey string) (string, error) {
	return asymmetric.DecryptPublic(text, publicKey)
}

// EncodeBase64 encodes the UTF-8 bytes of text.
func EncodeBase64(text string) string { return codec.EncodeBase64(text) }

// DecodeBase64 reverses EncodeBase64.
func DecodeBase64(text string) (string, error) { return codec.DecodeBase64(text) }

// EncodeBase64Bytes encodes data with the padded standard alphabet.
func EncodeBase64Bytes(data []byte) string { return codec.EncodeBase64Bytes(data) }

// DecodeBase64Bytes reverses EncodeBase64Bytes.
func DecodeBase64Bytes(text string) ([]byte, error) { return codec.DecodeBase64Bytes(text) }

// ByteToHex renders data as uppercase hex.
func ByteToHex(data []byte) string { return codec.ByteToHex(data) }

// HexToByte returns an empty slice for empty, odd-length or non-hex input.
func HexToByte(hexText string) []byte { return codec.HexToByte(hexText) }

// HexToDec parses hexText as an unsigned big integer.
func HexToDec(hexText string) (*big.Int, error) { return codec.HexToDec(hexText) }

// DecToHex renders a decimal string as uppercase hex.
func DecToHex(decimal string) (string, error) { return codec.DecToHex(decimal) }

// EncryptHexXor is a demonstration cipher with no real security, see package hexxor.
func EncryptHexXor(hexText string) (string, error) { return hexxor.Encrypt(hexText) }

// DecryptHexXor reverses EncryptHexXor, returning uppercase hex.
func DecryptHexXor(hexText string) (string, error) { return hexxor.Decrypt(hexText) }
