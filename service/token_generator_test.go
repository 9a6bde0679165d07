// file: service/token_generator_test.go

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenGenerator_HashIsDeterministic(t *testing.T) {
	var gen TokenGenerator

	raw, err := gen.Generate(32)
	assert.NoError(t, err)
	assert.Equal(t, gen.Hash(raw), gen.Hash(raw))
	assert.NotEqual(t, raw, gen.Hash(raw))
}

func TestTokenGenerator_GenerateDoesNotCollide(t *testing.T) {
	var gen TokenGenerator

	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		raw, err := gen.Generate(32)
		assert.NoError(t, err)
		assert.False(t, seen[raw], "generated token collided")
		seen[raw] = true
	}
}

func TestTokenGenerator_GenerateAndHash(t *testing.T) {
	var gen TokenGenerator

	raw, digest, err := gen.GenerateAndHash()
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, gen.Hash(raw), digest)
}

func TestTokenGenerator_DefaultLength(t *testing.T) {
	var gen TokenGenerator

	raw, err := gen.Generate(0)
	assert.NoError(t, err)
	// 32 bytes encode to 43 base64url characters without padding.
	assert.Len(t, raw, 43)
}
