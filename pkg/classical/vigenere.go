package classical

import (
	"strings"

	"github.com/idelchi/enigma/pkg/errdefs"
)

const alphabetSize = 26

// EncryptVigenere enciphers the ASCII letters of text with keyword.
//
// Letters keep their case. Every other character is copied unchanged and
// does not consume a keyword letter. The keyword must be non-empty and
// consist of ASCII letters only; its case is ignored.
func EncryptVigenere(text, keyword string) (string, error) {
	return vigenere(text, keyword, false)
}

// DecryptVigenere reverses EncryptVigenere.
func DecryptVigenere(text, keyword string) (string, error) {
	return vigenere(text, keyword, true)
}

func vigenere(text, keyword string, decrypt bool) (string, error) {
	if err := validateKeyword(keyword); err != nil {
		return "", err
	}

	key := []byte(strings.ToLower(keyword))

	var sb strings.Builder

	sb.Grow(len(text))

	j := 0

	for _, c := range text {
		base, ok := letterBase(c)
		if !ok {
			sb.WriteRune(c)

			continue
		}

		shift := rune(key[j%len(key)] - 'a')
		if decrypt {
			shift = alphabetSize - shift
		}

		sb.WriteRune((c-base+shift)%alphabetSize + base)

		j++
	}

	return sb.String(), nil
}

func validateKeyword(keyword string) error {
	if keyword == "" {
		return errdefs.InvalidArgument("keyword cannot be empty")
	}

	for i, c := range keyword {
		if _, ok := letterBase(c); !ok {
			return errdefs.InvalidArgument("keyword must contain only ASCII letters, got %q at index %d", c, i)
		}
	}

	return nil
}

// letterBase returns 'A' or 'a' for ASCII letters.
func letterBase(c rune) (rune, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return 'A', true
	case c >= 'a' && c <= 'z':
		return 'a', true
	default:
		return 0, false
	}
}
