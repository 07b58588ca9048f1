package jwt_service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notevault/internal/adapters/services"
)

func TestNewJWT(t *testing.T) {
	t.Run("Success - service created with a secret key", func(t *testing.T) {
		svc, err := services.NewJWT("test-secret", 30*time.Minute)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("Error - empty secret key is rejected", func(t *testing.T) {
		svc, err := services.NewJWT("", 30*time.Minute)
		assert.Nil(t, svc)
		assert.ErrorIs(t, err, services.ErrEmptySecretKey)
	})
}

func TestIssue(t *testing.T) {
	ctx := context.Background()

	svc, err := services.NewJWT("test-secret", 30*time.Minute)
	require.NoError(t, err)

	token, expiresAt, err := svc.Issue(ctx, "user@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, token)

	remaining := time.Until(expiresAt)
	assert.Greater(t, remaining, 29*time.Minute)
	assert.LessOrEqual(t, remaining, 30*time.Minute)
}
