package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHash wraps catastrophic hashing failures (malformed stored hash,
// internal bcrypt error). A plain password mismatch is not an error.
var ErrHash = errors.New("password hashing failed")

// HashPassword produces a salted bcrypt hash of the plaintext at the
// library's default cost. Any input is hashable.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHash, err)
	}
	return string(b), nil
}

// CheckPassword recomputes and compares. Returns (false, nil) when the
// password simply does not match, and a non-nil error only when the stored
// hash is malformed.
func CheckPassword(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrHash, err)
	}
}
