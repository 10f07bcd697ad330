package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/orderflow/internal/domain"
	"github.com/dukerupert/orderflow/internal/memory"
)

func TestUserRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and authenticates", func(t *testing.T) {
		svc := NewUserService(memory.NewUserRepository())

		user, err := svc.Register(ctx, "山田太郎", "taro@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.NotEqual(t, "correct horse battery", user.PasswordHash, "password is stored hashed")

		authed, err := svc.Authenticate(ctx, "taro@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, user.ID, authed.ID)
	})

	t.Run("short password rejected", func(t *testing.T) {
		svc := NewUserService(memory.NewUserRepository())
		_, err := svc.Register(ctx, "山田太郎", "taro@example.com", "short")
		assert.Equal(t, domain.EVALIDATION, domain.ErrorCode(err))
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		svc := NewUserService(memory.NewUserRepository())
		_, err := svc.Register(ctx, "山田太郎", "not-an-email", "correct horse battery")
		assert.Equal(t, domain.EVALIDATION, domain.ErrorCode(err))
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := NewUserService(memory.NewUserRepository())
		_, err := svc.Register(ctx, "山田太郎", "taro@example.com", "correct horse battery")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "山田次郎", "taro@example.com", "another password")
		assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
	})

	t.Run("wrong password and unknown email look identical", func(t *testing.T) {
		svc := NewUserService(memory.NewUserRepository())
		_, err := svc.Register(ctx, "山田太郎", "taro@example.com", "correct horse battery")
		require.NoError(t, err)

		_, wrongPass := svc.Authenticate(ctx, "taro@example.com", "wrong password")
		_, unknown := svc.Authenticate(ctx, "nobody@example.com", "whatever")
		assert.Equal(t, domain.ErrorMessage(wrongPass), domain.ErrorMessage(unknown))
	})
}
