package utils

import (
	"testing"

	"farmconnect/config"
	"farmconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTConfig(t *testing.T, expiry string) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: expiry,
	}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndValidateToken(t *testing.T) {
	setupJWTConfig(t, "1h")

	token, err := GenerateToken(42, "priya@example.com", models.RoleConsumer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "priya@example.com", claims.Email)
	assert.Equal(t, models.RoleConsumer, claims.Role)
}

func TestValidateExpiredToken(t *testing.T) {
	setupJWTConfig(t, "-1h")

	token, err := GenerateToken(1, "raj@example.com", models.RoleFarmer)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	setupJWTConfig(t, "1h")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	setupJWTConfig(t, "1h")

	token, err := GenerateToken(1, "raj@example.com", models.RoleFarmer)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "different-secret"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
