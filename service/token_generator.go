// file: service/token_generator.go

package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

const defaultTokenBytes = 32

// TokenGenerator mints opaque refresh secrets and digests them for storage.
// Refresh secrets are high-entropy random strings, not passwords, so a fast
// deterministic SHA-256 digest is used for lookups instead of bcrypt.
type TokenGenerator struct{}

// Generate returns byteLength bytes of CSPRNG output as base64url text.
// A non-positive byteLength falls back to 32 bytes (256 bits of entropy).
func (TokenGenerator) Generate(byteLength int) (string, error) {
	if byteLength <= 0 {
		byteLength = defaultTokenBytes
	}
	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Hash is pure: the same raw token always digests to the same value, which is
// what makes stored-digest equality lookups possible.
func (TokenGenerator) Hash(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// GenerateAndHash returns a fresh raw secret together with its digest. The
// digest is what gets persisted; the raw value goes to the client once.
func (g TokenGenerator) GenerateAndHash() (rawToken, digest string, err error) {
	rawToken, err = g.Generate(defaultTokenBytes)
	if err != nil {
		return "", "", err
	}
	return rawToken, g.Hash(rawToken), nil
}
