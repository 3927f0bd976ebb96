//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"donbalon/internal/domain/user"
	"donbalon/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	t.Run("success: round trips staff id and role", func(t *testing.T) {
		token, err := svc.GenerateToken("staff-7", user.RoleOperator)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "staff-7", claims.StaffID)
		assert.Equal(t, "operator", claims.Role)
		assert.Equal(t, "staff-7", claims.Subject)
	})

	t.Run("error: expired token", func(t *testing.T) {
		token, err := jwt.NewService("secret", -time.Minute).GenerateToken("staff-7", user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken("staff-7", user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: missing staff id", func(t *testing.T) {
		token, err := svc.GenerateToken("", user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
