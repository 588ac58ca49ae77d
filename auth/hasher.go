// Package auth is responsible for authentication: hashing and checking
// passwords, issuing and verifying bearer tokens, the request gate that turns a
// bearer token into an identity, and the public registration/sign-in endpoints.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashing is returned when the password hash could not be computed.
var ErrHashing = errors.New("hashing failed")

// Hasher hashes passwords with bcrypt at a fixed work factor.
// It holds no mutable state and is safe for concurrent use.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher. The cost must be within bcrypt's supported range.
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{cost: cost}, nil
}

// Hash returns a salted bcrypt hash of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return string(hashed), nil
}

// Compare reports whether plaintext matches hashed. A malformed hash is
// simply a mismatch.
func (h *Hasher) Compare(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
