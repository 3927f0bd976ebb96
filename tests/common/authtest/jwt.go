//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"donbalon/internal/domain/user"
	"donbalon/internal/pkg/config"
	"donbalon/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// StaffToken signs a bearer token for the admin endpoints.
func (h *JWTHelper) StaffToken(t *testing.T, staffID string, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ExpiredToken(t *testing.T, staffID string, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}

// ForeignToken is signed with another secret and must be rejected.
func (h *JWTHelper) ForeignToken(t *testing.T, staffID string, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret+"-other", time.Hour).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}
