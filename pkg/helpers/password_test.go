package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grigorev/user-directory/pkg/helpers"
)

func TestHashPassword(t *testing.T) {
	hash, err := helpers.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.NotContains(t, hash, "password123")

	assert.True(t, helpers.CompareHashAndPassword(hash, "password123"))
	assert.False(t, helpers.CompareHashAndPassword(hash, "password124"))
	assert.False(t, helpers.CompareHashAndPassword(hash, ""))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := helpers.HashPassword("password123")
	require.NoError(t, err)
	h2, err := helpers.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
