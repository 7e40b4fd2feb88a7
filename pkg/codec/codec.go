// Package codec provides the Base64, hex and big-integer conversions shared by
// every algorithm family.
//
// Base64 uses the standard padded alphabet without line wrapping. Hex output
// is always uppercase, two digits per byte.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"math/big"
	"regexp"
	"strings"

	"github.com/idelchi/enigma/pkg/errdefs"
)

var (
	hexPattern     = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	decimalPattern = regexp.MustCompile(`^\d+$`)
)

// EncodeBase64 encodes the UTF-8 bytes of plaintext.
func EncodeBase64(plaintext string) string {
	return base64.StdEncoding.EncodeToString([]byte(plaintext))
}

// EncodeBase64Bytes encodes raw bytes.
func EncodeBase64Bytes(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes encoded into a string.
func DecodeBase64(encoded string) (string, error) {
	data, err := DecodeBase64Bytes(encoded)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// DecodeBase64Bytes decodes encoded into raw bytes.
func DecodeBase64Bytes(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errdefs.InvalidArgument("decoding base64: %v", err)
	}

	return data, nil
}

// ByteToHex renders data as uppercase hex.
func ByteToHex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// HexToByte converts an even-length hex string to bytes.
// Empty, odd-length or non-hex input yields an empty, non-nil slice; callers
// that need to tell those cases apart should use DecodeHex.
func HexToByte(s string) []byte {
	data, err := DecodeHex(s)
	if err != nil {
		return []byte{}
	}

	return data
}

// DecodeHex is the strict form of HexToByte.
func DecodeHex(s string) ([]byte, error) {
	switch {
	case s == "":
		return nil, errdefs.InvalidArgument("hex string is empty")
	case len(s)%2 != 0:
		return nil, errdefs.InvalidArgument("hex string has odd length %d", len(s))
	case !IsHex(s):
		return nil, errdefs.InvalidArgument("not a hex string: %q", s)
	}

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errdefs.InvalidArgument("decoding hex: %v", err)
	}

	return data, nil
}

// IsHex reports whether s is a non-empty string of hex digits.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// HexToDec parses a hex string of arbitrary length.
func HexToDec(s string) (*big.Int, error) {
	if !IsHex(s) {
		return nil, errdefs.InvalidArgument("invalid hex string: %q", s)
	}

	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, errdefs.InvalidArgument("invalid hex string: %q", s)
	}

	return n, nil
}

// DecToHex converts a decimal string of arbitrary length to uppercase hex.
func DecToHex(s string) (string, error) {
	if !decimalPattern.MatchString(s) {
		return "", errdefs.InvalidArgument("invalid decimal string: %q", s)
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return "", errdefs.InvalidArgument("invalid decimal string: %q", s)
	}

	return strings.ToUpper(n.Text(16)), nil
}
