package symmetric

import (
	"crypto/aes"
	"crypto/cipher"
	"slices"
	"unicode/utf8"

	"github.com/idelchi/enigma/pkg/codec"
	"github.com/idelchi/enigma/pkg/errdefs"
)

// IVSize is the required IV length in bytes.
const IVSize = aes.BlockSize

// ValidKeySizes lists the accepted key lengths in bytes.
//
//nolint:gochecknoglobals
var ValidKeySizes = []int{16, 24, 32}

// Encrypt encrypts plaintext with AES-CBC under key and iv.
func Encrypt(plaintext []byte, key, iv string) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, errdefs.InvalidArgument("plaintext cannot be empty")
	}

	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))

	cipher.NewCBCEncrypter(block, []byte(iv)).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// Decrypt decrypts ciphertext produced by Encrypt with the same key and iv.
func Decrypt(ciphertext []byte, key, iv string) ([]byte, error) {
	if len(ciphertext) == 0 {
		return nil, errdefs.InvalidArgument("ciphertext cannot be empty")
	}

	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, errdefs.Crypto(ErrInvalidBlockSize, "decrypting")
	}

	plaintext := make([]byte, len(ciphertext))

	cipher.NewCBCDecrypter(block, []byte(iv)).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, errdefs.Crypto(err, "removing padding")
	}

	return unpadded, nil
}

// EncryptString encrypts the UTF-8 bytes of plaintext and returns uppercase hex.
func EncryptString(plaintext, key, iv string) (string, error) {
	if plaintext == "" {
		return "", errdefs.InvalidArgument("plaintext cannot be empty")
	}

	ciphertext, err := Encrypt([]byte(plaintext), key, iv)
	if err != nil {
		return "", err
	}

	return codec.ByteToHex(ciphertext), nil
}

// DecryptString decrypts the hex output of EncryptString.
func DecryptString(hexCiphertext, key, iv string) (string, error) {
	if hexCiphertext == "" {
		return "", errdefs.InvalidArgument("ciphertext cannot be empty")
	}

	ciphertext, err := codec.DecodeHex(hexCiphertext)
	if err != nil {
		return "", err
	}

	plaintext, err := Decrypt(ciphertext, key, iv)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(plaintext) {
		return "", errdefs.Crypto(nil, "decrypted data is not valid UTF-8")
	}

	return string(plaintext), nil
}

// ValidateKeyAndIV checks key and iv lengths in bytes.
func ValidateKeyAndIV(key, iv string) error {
	switch {
	case key == "":
		return errdefs.InvalidArgument("key cannot be empty")
	case !slices.Contains(ValidKeySizes, len(key)):
		return errdefs.InvalidArgument("key length must be 16, 24 or 32 bytes, got %d", len(key))
	case iv == "":
		return errdefs.InvalidArgument("iv cannot be empty")
	case len(iv) != IVSize:
		return errdefs.InvalidArgument("iv length must be %d bytes, got %d", IVSize, len(iv))
	}

	return nil
}

func newBlock(key, iv string) (cipher.Block, error) {
	if err := ValidateKeyAndIV(key, iv); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, errdefs.Crypto(err, "creating cipher")
	}

	return block, nil
}
