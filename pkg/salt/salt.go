// Package salt draws random strings and integers from an injected random source.
//
// All draws use rejection sampling, so results are uniform for any range.
package salt

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/bits"
	"strings"

	"github.com/idelchi/enigma/pkg/errdefs"
)

// MaxSpan bounds the range accepted by UniqueInts.
const MaxSpan = math.MaxInt32

const (
	lower  = "abcdefghijklmnopqrstuvwxyz"
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits = "0123456789"
)

// Charset selects the alphabet of RandomString.
type Charset string

// Supported alphabets.
const (
	Lower        Charset = "lower"
	Upper        Charset = "upper"
	Digits       Charset = "digits"
	LowerUpper   Charset = "lower-upper"
	LowerDigits  Charset = "lower-digits"
	UpperDigits  Charset = "upper-digits"
	Alphanumeric Charset = "alphanumeric"
)

//nolint:gochecknoglobals // fixed lookup table
var alphabets = map[Charset]string{
	Lower:        lower,
	Upper:        upper,
	Digits:       digits,
	LowerUpper:   lower + upper,
	LowerDigits:  lower + digits,
	UpperDigits:  upper + digits,
	Alphanumeric: lower + upper + digits,
}

// Charsets lists the supported alphabets.
func Charsets() []Charset {
	return []Charset{Lower, Upper, Digits, LowerUpper, LowerDigits, UpperDigits, Alphanumeric}
}

// Alphabet returns the characters of c, or false if c is unknown.
func (c Charset) Alphabet() (string, bool) {
	alphabet, ok := alphabets[c]

	return alphabet, ok
}

// RandomString returns length characters drawn from charset.
// A nil reader selects crypto/rand.
func RandomString(random io.Reader, length int, charset Charset) (string, error) {
	alphabet, ok := charset.Alphabet()
	if !ok {
		return "", errdefs.InvalidArgument("unknown charset %q", charset)
	}

	if length < 0 {
		return "", errdefs.InvalidArgument("length must not be negative, got %d", length)
	}

	random = orDefault(random)

	var sb strings.Builder

	sb.Grow(length)

	for range length {
		i, err := uniform(random, uint64(len(alphabet)))
		if err != nil {
			return "", err
		}

		sb.WriteByte(alphabet[i])
	}

	return sb.String(), nil
}

// RandomInt returns a value in the inclusive range [low, high].
// The bounds are swapped when given in reverse.
func RandomInt(random io.Reader, low, high int) (int, error) {
	if low > high {
		low, high = high, low
	}

	n, err := uniformSpan(orDefault(random), low, high)
	if err != nil {
		return 0, err
	}

	return low + int(n), nil
}

// UniqueInts returns count distinct values from the inclusive range
// [start, end] that are not listed in exclude. The bounds are swapped when
// given in reverse, and count is reduced to the number of values available.
func UniqueInts(random io.Reader, count, start, end int, exclude ...int) ([]int, error) {
	if count < 0 {
		return nil, errdefs.InvalidArgument("count must not be negative, got %d", count)
	}

	if start > end {
		start, end = end, start
	}

	span := uint64(end) - uint64(start) + 1
	if span == 0 || span > MaxSpan {
		return nil, errdefs.InvalidArgument("range [%d, %d] exceeds %d values", start, end, MaxSpan)
	}

	excluded := make(map[int]struct{}, len(exclude))

	for _, v := range exclude {
		if v >= start && v <= end {
			excluded[v] = struct{}{}
		}
	}

	available := int(span) - len(excluded)
	count = min(count, available)

	random = orDefault(random)

	// Sparse Fisher-Yates over the offsets 0..span-1: swapped holds only the
	// positions that no longer hold their own offset.
	swapped := make(map[uint64]uint64)
	at := func(i uint64) uint64 {
		if v, ok := swapped[i]; ok {
			return v
		}

		return i
	}

	out := make([]int, 0, count)

	for i := uint64(0); len(out) < count; i++ {
		j, err := uniform(random, span-i)
		if err != nil {
			return nil, err
		}

		j += i

		vi, vj := at(i), at(j)
		swapped[i], swapped[j] = vj, vi

		value := start + int(vj)
		if _, skip := excluded[value]; !skip {
			out = append(out, value)
		}
	}

	return out, nil
}

func orDefault(random io.Reader) io.Reader {
	if random == nil {
		return rand.Reader
	}

	return random
}

// uniformSpan returns a value in [0, high-low], covering the full 64-bit span.
func uniformSpan(random io.Reader, low, high int) (uint64, error) {
	span := uint64(high) - uint64(low)
	if span == ^uint64(0) {
		return readUint64(random)
	}

	return uniform(random, span+1)
}

// uniform returns a value in [0, n) by masking to the bit length of n-1 and
// rejecting values out of range.
func uniform(random io.Reader, n uint64) (uint64, error) {
	if n == 0 {
		return 0, errdefs.InvalidArgument("empty range")
	}

	if n == 1 {
		return 0, nil
	}

	mask := uint64(1)<<bits.Len64(n-1) - 1

	for {
		v, err := readUint64(random)
		if err != nil {
			return 0, err
		}

		if v &= mask; v < n {
			return v, nil
		}
	}
}

func readUint64(random io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(random, buf[:]); err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}

	return binary.BigEndian.Uint64(buf[:]), nil
}
