package password

import (
	"library-management/internal/core/domain"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// MinLength is the minimum accepted password length
	MinLength = 6

	// MaxLength is the longest password bcrypt accepts, in bytes
	MaxLength = 72
)

// ErrTooLong is returned by Hash for passwords bcrypt cannot hash
var ErrTooLong = domain.Validation("Password must be at most 72 bytes")

// Cost is the bcrypt cost used by Hash. Tests lower it to keep hashing fast.
var Cost = DefaultCost

// Hash hashes a password using bcrypt
func Hash(password string) (string, error) {
	if len(password) > MaxLength {
		return "", ErrTooLong
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if password meets requirements
func ValidatePassword(password string) bool {
	return len(password) >= MinLength && len(password) <= MaxLength
}
