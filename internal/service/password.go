package service

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash of the plaintext. bcrypt salts every
// call, so hashing the same password twice yields different outputs.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// The comparison is constant-time inside bcrypt. A stored hash that bcrypt
// cannot parse counts as a non-match rather than an error, so callers cannot
// distinguish a corrupt hash from a wrong password; the corruption is logged
// for the operator.
func CheckPassword(plaintext, passwordHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(plaintext))
	if err == nil {
		return true
	}
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		log.Printf("stored password hash is not a valid bcrypt hash: %v", err)
	}
	return false
}
