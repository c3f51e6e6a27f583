package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor the existing account base was hashed with.
// Changing it only affects newly stored hashes.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext. The salt is
// embedded in the output, so two calls with the same input produce different
// hashes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash. A wrong
// password returns false with a nil error; a non-nil error means the stored
// hash itself is malformed.
func CheckPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
