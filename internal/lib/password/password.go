package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes is the longest password bcrypt can hash.
const MaxBytes = 72

// Cost is the bcrypt cost used for new hashes.
var Cost = bcrypt.DefaultCost

var ErrTooLong = errors.New("password is longer than 72 bytes")

func Hash(plain string) (string, error) {
	if len(plain) > MaxBytes {
		return "", fmt.Errorf("lib.password.Hash: %w", ErrTooLong)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("lib.password.Hash: %w", err)
	}

	return string(hash), nil
}

// Matches reports whether plain is the password behind hash. A malformed
// hash is reported as a mismatch.
func Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
