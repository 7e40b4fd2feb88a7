package symmetric_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/enigma/pkg/errdefs"
	"github.com/idelchi/enigma/pkg/symmetric"
)

const (
	key16 = "0123456789abcdef"
	key24 = "0123456789abcdef01234567"
	key32 = "0123456789abcdef0123456789abcdef"
	iv    = "fedcba9876543210"
)

func TestEncryptStringKnownVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		plaintext string
		key       string
		want      string
	}{
		{
			name:      "aes-128",
			plaintext: "Hello, World!",
			key:       key16,
			want:      "F50747844105CB294517B02D8E571933",
		},
		{
			name:      "aes-256 with a full padding block",
			plaintext: "exactly16bytes!!",
			key:       key32,
			want:      "2EE75000256F526D4DAAECAD7BEC8FD48BF8A165B9A8DB4179D17D2E68B1277E",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := symmetric.EncryptString(tc.plaintext, tc.key, iv)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			back, err := symmetric.DecryptString(got, tc.key, iv)
			require.NoError(t, err)
			assert.Equal(t, tc.plaintext, back)

			back, err = symmetric.DecryptString(strings.ToLower(got), tc.key, iv)
			require.NoError(t, err)
			assert.Equal(t, tc.plaintext, back)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	plaintexts := [][]byte{
		{0x00},
		[]byte("short"),
		[]byte("你好, 世界"),
		bytes.Repeat([]byte{0xAB}, 16),
		bytes.Repeat([]byte("block"), 100),
	}

	for _, key := range []string{key16, key24, key32} {
		for _, plaintext := range plaintexts {
			ciphertext, err := symmetric.Encrypt(plaintext, key, iv)
			require.NoError(t, err)
			require.Zero(t, len(ciphertext)%16)
			require.Greater(t, len(ciphertext), len(plaintext))

			decrypted, err := symmetric.Decrypt(ciphertext, key, iv)
			require.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)
		}
	}
}

func TestEncryptDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 5, 64)
	copy(buf, "hello")

	_, err := symmetric.Encrypt(buf, key16, iv)
	require.NoError(t, err)

	assert.Equal(t, []byte("hello"), buf)
	assert.Equal(t, make([]byte, 59), buf[5:64], "spare capacity must stay untouched")
}

func TestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		iv   string
	}{
		{name: "empty key", key: "", iv: iv},
		{name: "key length 15", key: key16[:15], iv: iv},
		{name: "key length 17", key: key16 + "x", iv: iv},
		{name: "multi-byte key counted in bytes", key: "abcdefghijklmnoё", iv: iv},
		{name: "empty iv", key: key16, iv: ""},
		{name: "short iv", key: key16, iv: iv[:15]},
		{name: "long iv", key: key16, iv: iv + "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := symmetric.Encrypt([]byte("data"), tc.key, tc.iv)
			require.ErrorIs(t, err, errdefs.ErrInvalidArgument)

			_, err = symmetric.Decrypt(make([]byte, 16), tc.key, tc.iv)
			require.ErrorIs(t, err, errdefs.ErrInvalidArgument)
		})
	}

	_, err := symmetric.Encrypt(nil, key16, iv)
	require.ErrorIs(t, err, errdefs.ErrInvalidArgument)

	_, err = symmetric.EncryptString("", key16, iv)
	require.ErrorIs(t, err, errdefs.ErrInvalidArgument)

	_, err = symmetric.DecryptString("", key16, iv)
	require.ErrorIs(t, err, errdefs.ErrInvalidArgument)

	_, err = symmetric.DecryptString("XYZ1", key16, iv)
	require.ErrorIs(t, err, errdefs.ErrInvalidArgument)
}

func TestDecryptFailures(t *testing.T) {
	t.Parallel()

	ciphertext, err := symmetric.Encrypt([]byte("attack at dawn"), key16, iv)
	require.NoError(t, err)

	_, err = symmetric.Decrypt(ciphertext[:15], key16, iv)
	require.ErrorIs(t, err, errdefs.ErrCrypto)
	require.ErrorIs(t, err, symmetric.ErrInvalidBlockSize)

	tampered := bytes.Clone(ciphertext)
	tampered[len(tampered)-1] ^= 0xFF

	// Flipping the last byte of the final block scrambles the whole decrypted
	// block, so the padding check fails.
	_, err = symmetric.Decrypt(tampered, key16, iv)
	require.ErrorIs(t, err, errdefs.ErrCrypto)
	require.ErrorIs(t, err, symmetric.ErrInvalidPadding)
}
