// Package password wraps bcrypt hashing for customer credentials. Guest
// customers carry an empty hash, which never verifies.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password does not match")
	ErrInvalidPassword  = errors.New("password must not be empty")
)

// HashPassword returns a bcrypt hash of the plaintext at the default cost.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hash), nil
}

// ComparePassword verifies the plaintext against a stored hash. An empty
// stored hash fails closed so guest rows cannot authenticate.
func ComparePassword(storedHash, plain string) error {
	if storedHash == "" || plain == "" {
		return ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}
	return nil
}
