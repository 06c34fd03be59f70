package services

import (
	"context"
	"testing"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/model"
	"SweetOrderAPI/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc := NewAuthService(repository.NewUserRepository())
	ctx := context.Background()

	u := model.User{Username: "cliente1", Password: "password123", Name: "Maria Silva", Email: "maria@example.com", Whatsapp: "11999998888"}
	created, err := svc.Register(ctx, &u)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	_, err = svc.Register(ctx, &u)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(repository.NewUserRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.User{Username: "cliente1", Password: "password123", Name: "Maria Silva", Email: "maria@example.com", Whatsapp: "11999998888"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.Login(ctx, "cliente1", "password123")
		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", u.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "cliente1", "nope")
		require.Error(t, err)
		assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost", "password123")
		require.Error(t, err)
		assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
	})
}
