package helpers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grigorev/user-directory/pkg/helpers"
)

func TestJWTRoundTrip(t *testing.T) {
	m := helpers.NewJWTManager("test-secret", 24*time.Hour)

	token, exp, err := m.Generate(42, "alice@example.com", "active")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "active", claims.Status)
}

func TestJWTWrongSecret(t *testing.T) {
	m := helpers.NewJWTManager("test-secret", time.Hour)
	token, _, err := m.Generate(1, "a@b.c", "active")
	require.NoError(t, err)

	other := helpers.NewJWTManager("other-secret", time.Hour)
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	m := helpers.NewJWTManager("test-secret", -time.Minute)
	token, _, err := m.Generate(1, "a@b.c", "active")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	m := helpers.NewJWTManager("test-secret", time.Hour)
	_, err := m.Parse("not-a-token")
	assert.Error(t, err)
}
