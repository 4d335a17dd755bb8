package keying

import "errors"

const (
	SeedSize         = 32     // ChaCha8 seed
	SaltSize         = 16     // Salt for PBKDF2
	PBKDF2Iterations = 600000 // OWASP recommended minimum
)

var (
	ErrEmptyPassphrase = errors.New("empty passphrase")
	ErrInvalidSalt     = errors.New("invalid salt")
)
