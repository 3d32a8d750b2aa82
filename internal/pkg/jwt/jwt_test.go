//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"parkshare/internal/domain/user"
	"parkshare/internal/pkg/config"
	"parkshare/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	cfg := config.NewTestConfig().JWT

	t.Run("round trip", func(t *testing.T) {
		svc := jwt.NewService(cfg)
		userID := uuid.New()

		token, err := svc.GenerateToken(userID, user.RoleSpaceOwner)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "spaceowner", claims.Role)
		assert.Equal(t, cfg.Issuer, claims.Issuer)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := cfg
		expired.Duration = -time.Minute
		token, err := jwt.NewService(expired).GenerateToken(uuid.New(), user.RoleRenter)
		require.NoError(t, err)

		_, err = jwt.NewService(cfg).ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := cfg
		other.Secret = "another-secret"
		token, err := jwt.NewService(other).GenerateToken(uuid.New(), user.RoleRenter)
		require.NoError(t, err)

		_, err = jwt.NewService(cfg).ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := cfg
		other.Issuer = "somebody-else"
		token, err := jwt.NewService(other).GenerateToken(uuid.New(), user.RoleRenter)
		require.NoError(t, err)

		_, err = jwt.NewService(cfg).ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService(cfg).ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
