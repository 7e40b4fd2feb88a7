package classical

import (
	"github.com/idelchi/enigma/pkg/errdefs"
)

const minRails = 2

// EncryptFence writes text along a zig-zag of rails and reads the rails top to bottom.
// rails must be between 2 and the number of code points in text.
func EncryptFence(text string, rails int) (string, error) {
	runes := []rune(text)
	if err := validateRails(rails, len(runes)); err != nil {
		return "", err
	}

	rows := make([][]rune, rails)

	z := newZigzag(rails)
	for _, r := range runes {
		rows[z.rail] = append(rows[z.rail], r)
		z.step()
	}

	out := make([]rune, 0, len(runes))
	for _, row := range rows {
		out = append(out, row...)
	}

	return string(out), nil
}

// DecryptFence reverses EncryptFence.
//
// The first pass replays the zig-zag to count how many characters each rail
// holds, the ciphertext is then sliced into those rails, and a second pass
// replays the zig-zag again taking the next character from the current rail.
func DecryptFence(text string, rails int) (string, error) {
	runes := []rune(text)
	if err := validateRails(rails, len(runes)); err != nil {
		return "", err
	}

	counts := make([]int, rails)

	z := newZigzag(rails)
	for range runes {
		counts[z.rail]++
		z.step()
	}

	rows := make([][]rune, rails)

	offset := 0
	for i, n := range counts {
		rows[i] = runes[offset : offset+n]
		offset += n
	}

	pos := make([]int, rails)
	out := make([]rune, 0, len(runes))

	z = newZigzag(rails)
	for range runes {
		out = append(out, rows[z.rail][pos[z.rail]])
		pos[z.rail]++
		z.step()
	}

	return string(out), nil
}

func validateRails(rails, length int) error {
	if rails < minRails || rails > length {
		return errdefs.InvalidArgument("rails must be >= %d and <= message length %d, got %d", minRails, length, rails)
	}

	return nil
}

// zigzag walks rail indices 0, 1, ..., n-1, n-2, ..., 0, 1, ...
type zigzag struct {
	rails int
	rail  int
	down  bool
}

func newZigzag(rails int) *zigzag {
	return &zigzag{rails: rails, down: true}
}

func (z *zigzag) step() {
	switch z.rail {
	case 0:
		z.down = true
	case z.rails - 1:
		z.down = false
	}

	if z.down {
		z.rail++
	} else {
		z.rail--
	}
}
