package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShareHash(t *testing.T) {
	hash, err := GenerateShareHash(10)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	// URL-safe: the hash goes straight into a path segment.
	assert.NotContains(t, hash, "/")
	assert.NotContains(t, hash, "+")
	assert.NotContains(t, hash, "=")
}

func TestGenerateShareHashIsRandom(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		hash, err := GenerateShareHash(10)
		require.NoError(t, err)
		assert.False(t, seen[hash], "hash collision: %s", hash)
		seen[hash] = true
	}
}
