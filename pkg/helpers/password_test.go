package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("demopass123")
	require.NoError(t, err)

	assert.NotEqual(t, "demopass123", hash)
	assert.True(t, CompareHashAndPassword(hash, "demopass123"))
	assert.False(t, CompareHashAndPassword(hash, "wrongpass"))
}

func TestCompareRejectsBadHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "demopass123"))
}
