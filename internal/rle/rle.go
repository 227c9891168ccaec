// Package rle implements run-length encoding over lowercase letters and spaces.
//
// A run of L >= 2 copies of a character c is written as the decimal L followed
// by c. Single characters are written as-is:
//
//	"heloooooooo there"        -> "hel8o there"
//	"footloose and fancy free" -> "f2otl2ose and fancy fr2e"
package rle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCharacter is returned when the input contains a byte outside a-z and space.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrMalformedEncoding is returned by Decode for input Encode could not have produced.
	ErrMalformedEncoding = errors.New("malformed encoding")
)

// Run is a maximal sequence of one repeated character
type Run struct {
	Char   byte
	Length int
}

// String renders the run the way Encode writes it
func (r Run) String() string {
	if r.Length > 1 {
		return strconv.Itoa(r.Length) + string(r.Char)
	}
	return string(r.Char)
}

func allowed(c byte) bool {
	return c == ' ' || (c >= 'a' && c <= 'z')
}

// Validate reports the first byte outside the codec alphabet
func Validate(text string) error {
	for i := 0; i < len(text); i++ {
		if !allowed(text[i]) {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, text[i], i)
		}
	}
	return nil
}

// Runs splits text into maximal runs in scan order.
// It does not validate; callers that need the alphabet check use Validate first.
func Runs(text string) []Run {
	if text == "" {
		return nil
	}

	var runs []Run
	cur := Run{Char: text[0], Length: 1}
	for i := 1; i < len(text); i++ {
		if text[i] == cur.Char {
			cur.Length++
			continue
		}
		runs = append(runs, cur)
		cur = Run{Char: text[i], Length: 1}
	}
	return append(runs, cur)
}

// Encode run-length encodes text. Nothing is produced when validation fails.
func Encode(text string) (string, error) {
	if err := Validate(text); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(text))

	i := 0
	for i < len(text) {
		c := text[i]
		j := i + 1
		for j < len(text) && text[j] == c {
			j++
		}
		if n := j - i; n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
		sb.WriteByte(c)
		i = j
	}

	return sb.String(), nil
}

// Decode expands the output of Encode back to the original text
func Decode(encoded string) (string, error) {
	var sb strings.Builder

	i := 0
	for i < len(encoded) {
		start := i
		for i < len(encoded) && encoded[i] >= '0' && encoded[i] <= '9' {
			i++
		}
		digits := encoded[start:i]

		if i == len(encoded) {
			return "", fmt.Errorf("%w: count %q at offset %d has no character", ErrMalformedEncoding, digits, start)
		}
		c := encoded[i]
		if !allowed(c) {
			return "", fmt.Errorf("%w: %q at offset %d", ErrMalformedEncoding, c, i)
		}
		i++

		if digits == "" {
			sb.WriteByte(c)
			continue
		}
		if digits[0] == '0' {
			return "", fmt.Errorf("%w: count %q at offset %d has a leading zero", ErrMalformedEncoding, digits, start)
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n < 2 {
			return "", fmt.Errorf("%w: bad count %q at offset %d", ErrMalformedEncoding, digits, start)
		}
		sb.WriteString(strings.Repeat(string(c), n))
	}

	return sb.String(), nil
}
