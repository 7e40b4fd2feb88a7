// Package asymmetric implements RSA key-pair generation and the four
// encrypt/decrypt directions allowed by a public/private key pair.
//
// Public-key encryption with private-key decryption gives confidentiality.
// Private-key encryption with public-key decryption gives authentication:
// only the private-key holder can produce the ciphertext, and anyone with the
// public key can recover the plaintext. Keys travel as Base64 text of their
// DER encodings: SPKI (X.509 SubjectPublicKeyInfo) for public keys and PKCS#8
// for private keys. Ciphertexts are Base64 text.
//
// Padding is PKCS#1 v1.5. The OAEP functions are a stronger, randomized
// alternative for the confidentiality direction.
package asymmetric

import (
	"crypto/rsa"
	"crypto/x509"
	"io"

	"github.com/idelchi/enigma/pkg/codec"
	"github.com/idelchi/enigma/pkg/errdefs"
)

const (
	// DefaultBits is the modulus size used when callers have no preference.
	DefaultBits = 2048
	// MinBits is the smallest modulus accepted by GenerateKeyPair.
	MinBits = 1024
)

// KeyPair holds Base64-encoded SPKI public and PKCS#8 private keys.
type KeyPair struct {
	PublicKey  string `json:"publicKey"  yaml:"publicKey"`
	PrivateKey string `json:"privateKey" yaml:"privateKey"`
}

// GenerateKeyPair creates an RSA key pair with public exponent 65537.
// Generation of large keys can take noticeable time.
func GenerateKeyPair(random io.Reader, bits int) (KeyPair, error) {
	if bits < MinBits {
		return KeyPair{}, errdefs.InvalidArgument("key size must be at least %d bits, got %d", MinBits, bits)
	}

	key, err := rsa.GenerateKey(random, bits)
	if err != nil {
		return KeyPair{}, errdefs.Crypto(err, "generating key")
	}

	public, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return KeyPair{}, errdefs.Crypto(err, "encoding public key")
	}

	private, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return KeyPair{}, errdefs.Crypto(err, "encoding private key")
	}

	return KeyPair{
		PublicKey:  codec.EncodeBase64Bytes(public),
		PrivateKey: codec.EncodeBase64Bytes(private),
	}, nil
}

// ParsePublicKey decodes a Base64 SPKI public key.
func ParsePublicKey(encoded string) (*rsa.PublicKey, error) {
	der, err := codec.DecodeBase64Bytes(encoded)
	if err != nil {
		return nil, errdefs.Crypto(err, "decoding public key")
	}

	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, errdefs.Crypto(err, "parsing public key")
	}

	public, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, errdefs.Crypto(nil, "public key is not an RSA key")
	}

	return public, nil
}

// ParsePrivateKey decodes a Base64 PKCS#8 private key.
func ParsePrivateKey(encoded string) (*rsa.PrivateKey, error) {
	der, err := codec.DecodeBase64Bytes(encoded)
	if err != nil {
		return nil, errdefs.Crypto(err, "decoding private key")
	}

	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, errdefs.Crypto(err, "parsing private key")
	}

	private, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errdefs.Crypto(nil, "private key is not an RSA key")
	}

	return private, nil
}
