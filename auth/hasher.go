package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a plaintext password into a stored digest and checks a
// submitted password against one. Implementations are swappable so deployments
// are not stuck with a weak scheme.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(digest, plaintext string) bool
}

// BcryptHasher is the production hasher: salted, with a configurable cost.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.Cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *BcryptHasher) Verify(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// LegacyHasher reproduces the original platform's digest: a single-round,
// unsalted SHA-256 hex string. It is deterministic by contract, which also
// makes it unsuitable for new passwords (no salt, no iteration cost). It
// exists only so digests migrated from the old system keep verifying; do not
// wire it as the default.
type LegacyHasher struct{}

func (LegacyHasher) Hash(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

func (LegacyHasher) Verify(digest, plaintext string) bool {
	sum := sha256.Sum256([]byte(plaintext))
	want := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(digest), []byte(want)) == 1
}
