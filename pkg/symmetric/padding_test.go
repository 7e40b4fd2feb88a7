package symmetric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPKCS7(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   []byte
		padLen int
	}{
		{name: "empty", data: []byte{}, padLen: 16},
		{name: "one byte", data: []byte{0x42}, padLen: 15},
		{name: "aligned", data: make([]byte, 16), padLen: 16},
		{name: "unaligned", data: make([]byte, 21), padLen: 11},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			padded := pkcs7Pad(tc.data, 16)
			require.Len(t, padded, len(tc.data)+tc.padLen)

			for _, b := range padded[len(tc.data):] {
				assert.Equal(t, byte(tc.padLen), b)
			}

			unpadded, err := pkcs7Unpad(padded, 16)
			require.NoError(t, err)
			assert.Equal(t, tc.data, unpadded)
		})
	}
}

func TestPKCS7UnpadInvalid(t *testing.T) {
	t.Parallel()

	block := func(last ...byte) []byte {
		b := make([]byte, 16)
		copy(b[16-len(last):], last)

		return b
	}

	_, err := pkcs7Unpad(nil, 16)
	require.ErrorIs(t, err, ErrInvalidBlockSize)

	_, err = pkcs7Unpad(make([]byte, 15), 16)
	require.ErrorIs(t, err, ErrInvalidBlockSize)

	_, err = pkcs7Unpad(block(0x00), 16)
	require.ErrorIs(t, err, ErrInvalidPadding)

	_, err = pkcs7Unpad(block(0x11), 16)
	require.ErrorIs(t, err, ErrInvalidPadding)

	_, err = pkcs7Unpad(block(0x01, 0x03, 0x03), 16)
	require.ErrorIs(t, err, ErrInvalidPadding)
}
