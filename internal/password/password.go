// Package password hashes user passwords before they are stored.
package password

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of plain. Values that are already bcrypt
// hashes are returned unchanged.
func Hash(plain string) (string, error) {
	if IsHash(plain) {
		return plain, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// IsHash reports whether s looks like a bcrypt hash.
func IsHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			_, err := bcrypt.Cost([]byte(s))
			return err == nil
		}
	}
	return false
}

// Matches reports whether plain is the password behind hash.
func Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
