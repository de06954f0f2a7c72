// Package password provides the digest functions used by the credential store.
//
// SHA256 is the default and is deliberately unsalted: stored digests are the
// plain hex SHA-256 of the password, so identical passwords share a digest.
// Bcrypt is an opt-in replacement selected through configuration.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/flexfit/fitness-buddy/internal/core/ports"
)

const (
	AlgorithmSHA256 = "sha256"
	AlgorithmBcrypt = "bcrypt"
)

// SHA256 hashes passwords as an unsalted hex digest.
type SHA256 struct{}

func (SHA256) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256) Compare(hash, password string) bool {
	want, _ := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(want)) == 1
}

// Bcrypt hashes passwords with a per-password salt.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (Bcrypt) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// New returns the hasher registered under name.
func New(name string) (ports.PasswordHasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AlgorithmSHA256:
		return SHA256{}, nil
	case AlgorithmBcrypt:
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("password: unknown hasher %q", name)
	}
}
