// Package alphabet holds the fixed 26-letter alphabet every machine component
// works over, together with the text preparation and grouping helpers used
// around the cipher.
package alphabet

import (
	"fmt"
	"strings"
)

// Size is the number of letters in the alphabet
const Size = 26

// Letters is the alphabet in index order
const Letters = "abcdefghijklmnopqrstuvwxyz"

// IsLetter reports whether c is a lowercase alphabet letter
func IsLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// Index returns the position of a lowercase letter in the alphabet.
// ok is false for anything else.
func Index(c byte) (i int, ok bool) {
	if !IsLetter(c) {
		return 0, false
	}
	return int(c - 'a'), true
}

// MustIndex is Index for callers that already hold a letter.
// It panics otherwise.
func MustIndex(c byte) int {
	i, ok := Index(c)
	if !ok {
		panic(fmt.Sprintf("alphabet: %q is not a lowercase letter", c))
	}
	return i
}

// Letter returns the letter at index i, reduced modulo Size
func Letter(i int) byte {
	return Letters[Mod(i)]
}

// Mod reduces i into [0, Size), negative values included
func Mod(i int) int {
	i %= Size
	if i < 0 {
		i += Size
	}
	return i
}

// Fold lower-cases an ASCII letter and reports whether c was one
func Fold(c byte) (byte, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return c, true
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A'), true
	default:
		return c, false
	}
}

// Prepare keeps only ASCII letters from s and lower-cases them.
// This is the form the machine accepts.
func Prepare(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c, ok := Fold(s[i]); ok {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Group upper-cases s and splits it into blocks of size letters separated by a
// single space, the way operators wrote messages down.
// A size below 1 returns s upper-cased and unsplit.
func Group(s string, size int) string {
	upper := strings.ToUpper(s)
	if size < 1 || len(upper) <= size {
		return upper
	}

	var b strings.Builder
	b.Grow(len(upper) + len(upper)/size)
	for i := 0; i < len(upper); i++ {
		if i > 0 && i%size == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(upper[i])
	}
	return b.String()
}
