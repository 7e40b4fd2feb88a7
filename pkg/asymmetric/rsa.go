package asymmetric

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"io"
	"math/big"

	"github.com/idelchi/enigma/pkg/codec"
	"github.com/idelchi/enigma/pkg/errdefs"
)

// pkcs1Overhead is the minimum PKCS#1 v1.5 padding: 00 || BT || PS(8) || 00.
const pkcs1Overhead = 11

// ErrDecryption is returned when a ciphertext does not decrypt to a well-formed padded block.
var ErrDecryption = errors.New("rsa decryption error")

// EncryptPublic encrypts plaintext for the holder of the private key
// (PKCS#1 v1.5 type 2 padding) and returns Base64 ciphertext.
func EncryptPublic(random io.Reader, plaintext, publicKey string) (string, error) {
	key, err := ParsePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	if err := checkMessageLength(plaintext, key.Size()-pkcs1Overhead); err != nil {
		return "", err
	}

	ciphertext, err := rsa.EncryptPKCS1v15(random, key, []byte(plaintext))
	if err != nil {
		return "", errdefs.Crypto(err, "encrypting")
	}

	return codec.EncodeBase64Bytes(ciphertext), nil
}

// DecryptPrivate reverses EncryptPublic.
func DecryptPrivate(ciphertext, privateKey string) (string, error) {
	data, err := decodeCiphertext(ciphertext)
	if err != nil {
		return "", err
	}

	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}

	plaintext, err := rsa.DecryptPKCS1v15(nil, key, data)
	if err != nil {
		return "", errdefs.Crypto(err, "decrypting")
	}

	return string(plaintext), nil
}

// EncryptPrivate produces a ciphertext that only the private-key holder can
// create and anyone with the public key can read (PKCS#1 v1.5 type 1 padding).
// The result is deterministic for a given key and plaintext.
func EncryptPrivate(plaintext, privateKey string) (string, error) {
	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}

	if err := checkMessageLength(plaintext, key.Size()-pkcs1Overhead); err != nil {
		return "", err
	}

	// A zero hash makes SignPKCS1v15 pad and exponentiate the raw message.
	ciphertext, err := rsa.SignPKCS1v15(nil, key, crypto.Hash(0), []byte(plaintext))
	if err != nil {
		return "", errdefs.Crypto(err, "encrypting")
	}

	return codec.EncodeBase64Bytes(ciphertext), nil
}

// DecryptPublic reverses EncryptPrivate.
func DecryptPublic(ciphertext, publicKey string) (string, error) {
	data, err := decodeCiphertext(ciphertext)
	if err != nil {
		return "", err
	}

	key, err := ParsePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	plaintext, err := recoverType1(key, data)
	if err != nil {
		return "", errdefs.Crypto(err, "decrypting")
	}

	return string(plaintext), nil
}

// EncryptPublicOAEP is the randomized alternative to EncryptPublic using
// OAEP with SHA-256 and an empty label.
func EncryptPublicOAEP(random io.Reader, plaintext, publicKey string) (string, error) {
	key, err := ParsePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	if err := checkMessageLength(plaintext, key.Size()-2*sha256.Size-2); err != nil {
		return "", err
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), random, key, []byte(plaintext), nil)
	if err != nil {
		return "", errdefs.Crypto(err, "encrypting")
	}

	return codec.EncodeBase64Bytes(ciphertext), nil
}

// DecryptPrivateOAEP reverses EncryptPublicOAEP.
func DecryptPrivateOAEP(ciphertext, privateKey string) (string, error) {
	data, err := decodeCiphertext(ciphertext)
	if err != nil {
		return "", err
	}

	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, key, data, nil)
	if err != nil {
		return "", errdefs.Crypto(err, "decrypting")
	}

	return string(plaintext), nil
}

func checkMessageLength(plaintext string, limit int) error {
	if len(plaintext) > limit {
		return errdefs.InvalidArgument("message of %d bytes exceeds the %d bytes this key can encrypt", len(plaintext), limit)
	}

	return nil
}

func decodeCiphertext(ciphertext string) ([]byte, error) {
	if ciphertext == "" {
		return nil, errdefs.InvalidArgument("ciphertext cannot be empty")
	}

	data, err := codec.DecodeBase64Bytes(ciphertext)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// recoverType1 applies the public exponent and strips the
// 00 || 01 || FF.. || 00 block written by EncryptPrivate.
func recoverType1(key *rsa.PublicKey, ciphertext []byte) ([]byte, error) {
	k := key.Size()
	if len(ciphertext) != k {
		return nil, ErrDecryption
	}

	c := new(big.Int).SetBytes(ciphertext)
	if c.Cmp(key.N) >= 0 {
		return nil, ErrDecryption
	}

	m := new(big.Int).Exp(c, big.NewInt(int64(key.E)), key.N)
	em := m.FillBytes(make([]byte, k))

	if subtle.ConstantTimeByteEq(em[0], 0x00)&subtle.ConstantTimeByteEq(em[1], 0x01) != 1 {
		return nil, ErrDecryption
	}

	i := 2
	for i < k && em[i] == 0xFF {
		i++
	}

	if i == k || em[i] != 0x00 || i-2 < 8 {
		return nil, ErrDecryption
	}

	return em[i+1:], nil
}
