package asymmetric_test

import (
	"crypto/rand"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/enigma/pkg/asymmetric"
	"github.com/idelchi/enigma/pkg/codec"
	"github.com/idelchi/enigma/pkg/errdefs"
)

type fixture struct {
	RSA     asymmetric.KeyPair `yaml:"rsa"`
	EC      asymmetric.KeyPair `yaml:"ec"`
	Vectors []struct {
		Name       string `yaml:"name"`
		Direction  string `yaml:"direction"`
		Plaintext  string `yaml:"plaintext"`
		Ciphertext string `yaml:"ciphertext"`
	} `yaml:"vectors"`
}

func loadFixture(t *testing.T) fixture {
	t.Helper()

	data, err := os.ReadFile("testdata/keys.yml")
	require.NoError(t, err)

	var fx fixture
	require.NoError(t, yaml.Unmarshal(data, &fx))

	return fx
}

//nolint:gochecknoglobals // key generation is slow, share one pair across tests
var generated = sync.OnceValues(func() (asymmetric.KeyPair, error) {
	return asymmetric.GenerateKeyPair(rand.Reader, asymmetric.MinBits)
})

func generatedPair(t *testing.T) asymmetric.KeyPair {
	t.Helper()

	pair, err := generated()
	require.NoError(t, err)

	return pair
}

func TestGenerateKeyPair(t *testing.T) {
	t.Parallel()

	pair := generatedPair(t)

	public, err := asymmetric.ParsePublicKey(pair.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, 1024, public.N.BitLen())
	assert.Equal(t, 65537, public.E)

	private, err := asymmetric.ParsePrivateKey(pair.PrivateKey)
	require.NoError(t, err)
	assert.True(t, private.PublicKey.Equal(public))

	_, err = asymmetric.GenerateKeyPair(rand.Reader, 512)
	require.ErrorIs(t, err, errdefs.ErrInvalidArgument)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	pair := generatedPair(t)

	plaintexts := []string{
		"",
		"Hello, World!",
		"你好, 世界 🌍",
		strings.Repeat("x", 117),
	}

	for _, plaintext := range plaintexts {
		ciphertext, err := asymmetric.EncryptPublic(rand.Reader, plaintext, pair.PublicKey)
		require.NoError(t, err)

		got, err := asymmetric.DecryptPrivate(ciphertext, pair.PrivateKey)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)

		ciphertext, err = asymmetric.EncryptPrivate(plaintext, pair.PrivateKey)
		require.NoError(t, err)

		got, err = asymmetric.DecryptPublic(ciphertext, pair.PublicKey)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestOAEPRoundTrip(t *testing.T) {
	t.Parallel()

	pair := generatedPair(t)

	first, err := asymmetric.EncryptPublicOAEP(rand.Reader, "confidential", pair.PublicKey)
	require.NoError(t, err)

	second, err := asymmetric.EncryptPublicOAEP(rand.Reader, "confidential", pair.PublicKey)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "oaep must be randomized")

	got, err := asymmetric.DecryptPrivateOAEP(first, pair.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, "confidential", got)

	// A v1.5 ciphertext does not decrypt as OAEP.
	legacy, err := asymmetric.EncryptPublic(rand.Reader, "confidential", pair.PublicKey)
	require.NoError(t, err)

	_, err = asymmetric.DecryptPrivateOAEP(legacy, pair.PrivateKey)
	require.ErrorIs(t, err, errdefs.ErrCrypto)
}

func TestKnownVectors(t *testing.T) {
	t.Parallel()

	fx := loadFixture(t)
	require.NotEmpty(t, fx.Vectors)

	for _, vector := range fx.Vectors {
		t.Run(vector.Name, func(t *testing.T) {
			t.Parallel()

			switch vector.Direction {
			case "private":
				got, err := asymmetric.EncryptPrivate(vector.Plaintext, fx.RSA.PrivateKey)
				require.NoError(t, err)
				assert.Equal(t, vector.Ciphertext, got, "type 1 padding is deterministic")

				plaintext, err := asymmetric.DecryptPublic(vector.Ciphertext, fx.RSA.PublicKey)
				require.NoError(t, err)
				assert.Equal(t, vector.Plaintext, plaintext)
			case "public":
				plaintext, err := asymmetric.DecryptPrivate(vector.Ciphertext, fx.RSA.PrivateKey)
				require.NoError(t, err)
				assert.Equal(t, vector.Plaintext, plaintext)
			case "oaep":
				plaintext, err := asymmetric.DecryptPrivateOAEP(vector.Ciphertext, fx.RSA.PrivateKey)
				require.NoError(t, err)
				assert.Equal(t, vector.Plaintext, plaintext)
			default:
				t.Fatalf("unknown direction %q", vector.Direction)
			}
		})
	}
}

func TestMessageTooLong(t *testing.T) {
	t.Parallel()

	fx := loadFixture(t)

	_, err := asymmetric.EncryptPublic(rand.Reader, strings.Repeat("x", 118), fx.RSA.PublicKey)
	require.ErrorIs(t, err, errdefs.ErrInvalidArgument)

	_, err = asymmetric.EncryptPrivate(strings.Repeat("x", 118), fx.RSA.PrivateKey)
	require.ErrorIs(t, err, errdefs.ErrInvalidArgument)

	_, err = asymmetric.EncryptPublicOAEP(rand.Reader, strings.Repeat("x", 63), fx.RSA.PublicKey)
	require.ErrorIs(t, err, errdefs.ErrInvalidArgument)

	_, err = asymmetric.EncryptPublicOAEP(rand.Reader, strings.Repeat("x", 62), fx.RSA.PublicKey)
	require.NoError(t, err)
}

func TestKeyFailures(t *testing.T) {
	t.Parallel()

	fx := loadFixture(t)

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "public key is not base64",
			call: func() error {
				_, err := asymmetric.EncryptPublic(rand.Reader, "x", "%%%")

				return err
			},
		},
		{
			name: "public key is not der",
			call: func() error {
				_, err := asymmetric.EncryptPublic(rand.Reader, "x", codec.EncodeBase64("not a key"))

				return err
			},
		},
		{
			name: "public key is not rsa",
			call: func() error {
				_, err := asymmetric.EncryptPublic(rand.Reader, "x", fx.EC.PublicKey)

				return err
			},
		},
		{
			name: "private key is not rsa",
			call: func() error {
				_, err := asymmetric.EncryptPrivate("x", fx.EC.PrivateKey)

				return err
			},
		},
		{
			name: "public key passed as private key",
			call: func() error {
				_, err := asymmetric.EncryptPrivate("x", fx.RSA.PublicKey)

				return err
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, tc.call(), errdefs.ErrCrypto)
		})
	}
}

func TestDecryptFailures(t *testing.T) {
	t.Parallel()

	fx := loadFixture(t)
	pair := generatedPair(t)

	_, err := asymmetric.DecryptPrivate("", fx.RSA.PrivateKey)
	require.ErrorIs(t, err, errdefs.ErrInvalidArgument)

	_, err = asymmetric.DecryptPublic("not base64!", fx.RSA.PublicKey)
	require.ErrorIs(t, err, errdefs.ErrInvalidArgument)

	// Ciphertext of the wrong length.
	_, err = asymmetric.DecryptPublic(codec.EncodeBase64("short"), fx.RSA.PublicKey)
	require.ErrorIs(t, err, errdefs.ErrCrypto)
	require.ErrorIs(t, err, asymmetric.ErrDecryption)

	// Private-encrypted under another key does not unpad.
	foreign, err := asymmetric.EncryptPrivate("hello", pair.PrivateKey)
	require.NoError(t, err)

	_, err = asymmetric.DecryptPublic(foreign, fx.RSA.PublicKey)
	require.ErrorIs(t, err, errdefs.ErrCrypto)

	// Type 2 blocks are rejected by the type 1 path.
	public, err := asymmetric.EncryptPublic(rand.Reader, "hello", fx.RSA.PublicKey)
	require.NoError(t, err)

	_, err = asymmetric.DecryptPublic(public, fx.RSA.PublicKey)
	require.ErrorIs(t, err, errdefs.ErrCrypto)

	_, err = asymmetric.DecryptPrivate(foreign, fx.RSA.PrivateKey)
	require.ErrorIs(t, err, errdefs.ErrCrypto)
}
