package classical

import (
	"strings"
	"unicode/utf8"

	"github.com/idelchi/enigma/pkg/errdefs"
)

// EncryptCaesar adds shift to every code point of text.
//
// There is no alphabet wraparound: 'z' shifted by 1 becomes '{'. When a
// shifted value falls outside the valid Unicode scalar range (negative,
// a surrogate, or above U+10FFFF) it cannot be held in a Go string, and
// the call fails with errdefs.ErrInvalidArgument instead of substituting
// U+FFFD. ShiftRunes performs the raw arithmetic without that check.
func EncryptCaesar(text string, shift int) (string, error) {
	return shiftString(text, int64(shift))
}

// DecryptCaesar subtracts shift from every code point of text.
func DecryptCaesar(text string, shift int) (string, error) {
	return shiftString(text, -int64(shift))
}

// ShiftRunes returns a copy of runes with shift added to each element.
// The result may contain values that are not valid scalar values.
func ShiftRunes(runes []rune, shift int) []rune {
	out := make([]rune, len(runes))

	for i, r := range runes {
		out[i] = r + rune(shift) //nolint:gosec // raw code point arithmetic
	}

	return out
}

func shiftString(text string, delta int64) (string, error) {
	var sb strings.Builder

	sb.Grow(len(text))

	pos := 0

	for _, r := range text {
		code := int64(r) + delta
		if code < 0 || code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
			return "", errdefs.InvalidArgument(
				"shift turns %q at position %d into %#x, which is not a valid code point", r, pos, code)
		}

		sb.WriteRune(rune(code))

		pos++
	}

	return sb.String(), nil
}
