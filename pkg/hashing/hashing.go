// Package hashing computes one-way digests rendered as uppercase hex.
//
// MD5, SHA-1, SHA-256, SHA-384 and SHA-512 are built in, along with SHA3-256,
// SHA3-512 and BLAKE2b-256. Further algorithms can be added with Register.
package hashing

import (
	"crypto/md5"  //nolint:gosec // MD5 is part of the supported digest set
	"crypto/sha1" //nolint:gosec // SHA-1 is part of the supported digest set
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"slices"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/idelchi/enigma/pkg/codec"
	"github.com/idelchi/enigma/pkg/errdefs"
)

// Algorithm names a registered digest algorithm.
type Algorithm string

const (
	// MD5 is the 128-bit MD5 digest.
	MD5 Algorithm = "md5"
	// SHA1 is the 160-bit SHA-1 digest.
	SHA1 Algorithm = "sha1"
	// SHA256 is the 256-bit SHA-2 digest.
	SHA256 Algorithm = "sha256"
	// SHA384 is the 384-bit SHA-2 digest.
	SHA384 Algorithm = "sha384"
	// SHA512 is the 512-bit SHA-2 digest.
	SHA512 Algorithm = "sha512"
	// SHA3_256 is the 256-bit SHA-3 digest.
	SHA3_256 Algorithm = "sha3-256"
	// SHA3_512 is the 512-bit SHA-3 digest.
	SHA3_512 Algorithm = "sha3-512"
	// BLAKE2b256 is the unkeyed 256-bit BLAKE2b digest.
	BLAKE2b256 Algorithm = "blake2b-256"
)

// NewFunc returns a fresh hash.Hash for one digest computation.
type NewFunc func() hash.Hash

// ErrAlgorithmExists is returned by Register for a name already in use.
var ErrAlgorithmExists = errors.New("algorithm already registered")

//nolint:gochecknoglobals // registry of digest constructors
var (
	mu       sync.RWMutex
	registry = map[Algorithm]NewFunc{
		MD5:      md5.New,
		SHA1:     sha1.New,
		SHA256:   sha256.New,
		SHA384:   sha512.New384,
		SHA512:   sha512.New,
		SHA3_256: sha3.New256,
		SHA3_512: sha3.New512,
		BLAKE2b256: func() hash.Hash {
			h, _ := blake2b.New256(nil) //nolint:errcheck // only fails for keys longer than 64 bytes
			return h
		},
	}
)

// Register adds a digest algorithm under name.
func Register(name Algorithm, fn NewFunc) error {
	if name == "" {
		return errdefs.InvalidArgument("algorithm name cannot be empty")
	}

	if fn == nil {
		return errdefs.InvalidArgument("constructor for %q cannot be nil", name)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, ok := registry[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlgorithmExists, name)
	}

	registry[name] = fn

	return nil
}

// Supported returns the registered algorithm names in sorted order.
func Supported() []Algorithm {
	mu.RLock()
	defer mu.RUnlock()

	list := make([]Algorithm, 0, len(registry))
	for name := range registry {
		list = append(list, name)
	}

	slices.Sort(list)

	return list
}

// IsSupported reports whether name is registered.
func IsSupported(name Algorithm) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registry[name]

	return ok
}

// New returns a fresh hash for the given algorithm.
func New(name Algorithm) (hash.Hash, error) {
	mu.RLock()
	fn, ok := registry[name]
	mu.RUnlock()

	if !ok {
		return nil, errdefs.InvalidArgument("unsupported hash algorithm %q", name)
	}

	return fn(), nil
}

// Digest hashes the UTF-8 bytes of plaintext.
func Digest(name Algorithm, plaintext string) (string, error) {
	return DigestBytes(name, []byte(plaintext))
}

// DigestBytes hashes data.
func DigestBytes(name Algorithm, data []byte) (string, error) {
	h, err := New(name)
	if err != nil {
		return "", err
	}

	h.Write(data)

	return codec.ByteToHex(h.Sum(nil)), nil
}

func mustDigest(name Algorithm, plaintext string) string {
	sum, err := Digest(name, plaintext)
	if err != nil {
		panic(err)
	}

	return sum
}

// MD5Hex returns the 128-bit MD5 digest of plaintext.
func MD5Hex(plaintext string) string { return mustDigest(MD5, plaintext) }

// SHA1Hex returns the 160-bit SHA-1 digest of plaintext.
func SHA1Hex(plaintext string) string { return mustDigest(SHA1, plaintext) }

// SHA256Hex returns the SHA-256 digest of plaintext.
func SHA256Hex(plaintext string) string { return mustDigest(SHA256, plaintext) }

// SHA384Hex returns the SHA-384 digest of plaintext.
func SHA384Hex(plaintext string) string { return mustDigest(SHA384, plaintext) }

// SHA512Hex returns the SHA-512 digest of plaintext.
func SHA512Hex(plaintext string) string { return mustDigest(SHA512, plaintext) }
