// Package keying turns a shared passphrase into a deterministic random
// source, so two operators can draw the same random machine configuration
// without exchanging it.
package keying

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	mrand "math/rand/v2"

	"golang.org/x/crypto/pbkdf2"
)

// GenerateSalt generates a cryptographically secure random salt
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// EncodeSalt renders a salt as lowercase hex
func EncodeSalt(salt []byte) string {
	return hex.EncodeToString(salt)
}

// DecodeSalt parses a hex salt of SaltSize bytes
func DecodeSalt(s string) ([]byte, error) {
	salt, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSalt, err)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltSize)
	}
	return salt, nil
}

// DeriveSeed stretches passphrase and salt into a ChaCha8 seed
func DeriveSeed(passphrase string, salt []byte) ([SeedSize]byte, error) {
	var seed [SeedSize]byte
	if passphrase == "" {
		return seed, ErrEmptyPassphrase
	}
	if len(salt) != SaltSize {
		return seed, fmt.Errorf("%w: salt must be %d bytes", ErrInvalidSalt, SaltSize)
	}

	key := pbkdf2.Key([]byte(passphrase), salt, PBKDF2Iterations, SeedSize, sha256.New)
	copy(seed[:], key)
	return seed, nil
}

// NewRand returns a random source fully determined by passphrase and salt
func NewRand(passphrase string, salt []byte) (*mrand.Rand, error) {
	seed, err := DeriveSeed(passphrase, salt)
	if err != nil {
		return nil, err
	}
	return mrand.New(mrand.NewChaCha8(seed)), nil
}
