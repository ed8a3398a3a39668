package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests-only")

	token, err := GenerateToken(7, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret-first-secret-first")
	token, err := GenerateToken(1, "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret-other-secret-other")
	_, err = ValidateToken(token)

	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests-only")

	_, err := ValidateToken("not-a-token")

	assert.Error(t, err)
}
