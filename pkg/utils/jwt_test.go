package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beNeighb/backend/config"
)

func TestJWTToken(t *testing.T) {
	cfg := config.Config{JWT: config.JWT{Secret: "test-secret", ExpiredIn: 3600}}

	t.Run("round trip", func(t *testing.T) {
		profileID := uuid.New()

		token, err := GenerateJWTToken(profileID, cfg)
		require.NoError(t, err)

		got, err := VerifyJWTToken(token, cfg.JWT.Secret)
		require.NoError(t, err)
		assert.Equal(t, profileID, got)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateJWTToken(uuid.New(), cfg)
		require.NoError(t, err)

		_, err = VerifyJWTToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := cfg
		expired.JWT.ExpiredIn = -60

		token, err := GenerateJWTToken(uuid.New(), expired)
		require.NoError(t, err)

		_, err = VerifyJWTToken(token, cfg.JWT.Secret)
		assert.Error(t, err)
	})
}
