//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"parkshare/internal/domain/user"
	"parkshare/internal/pkg/config"
	"parkshare/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// NewUser returns a fresh user id with a signed token for it.
func (h *JWTHelper) NewUser(t *testing.T, role user.Role) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	cfg := h.cfg
	cfg.Duration = time.Millisecond
	token, err := jwt.NewService(cfg).GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
