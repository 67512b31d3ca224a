package integration

import (
	"context"
	"testing"
	"time"

	"notely-be/internal/entity"
	"notely-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserActivationFlow(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)

	t.Run("lookup by identifier matches email and username", func(t *testing.T) {
		byEmail, err := uow.UserRepository().FindOne(ctx, specification.ByIdentifier{Identifier: user.Email})
		require.NoError(t, err)
		require.NotNil(t, byEmail)

		byUsername, err := uow.UserRepository().FindOne(ctx, specification.ByIdentifier{Identifier: user.Username})
		require.NoError(t, err)
		require.NotNil(t, byUsername)
		assert.Equal(t, byEmail.Id, byUsername.Id)
	})

	t.Run("activation token round trip", func(t *testing.T) {
		token := &entity.ActivationToken{
			Id:        uuid.New(),
			UserId:    user.Id,
			Token:     uuid.New().String(),
			ExpiresAt: time.Now().Add(24 * time.Hour),
			CreatedAt: time.Now(),
		}
		require.NoError(t, uow.UserRepository().CreateActivationToken(ctx, token))

		found, err := uow.UserRepository().FindActivationToken(ctx, specification.ByToken{Token: token.Token})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.Id, found.UserId)

		require.NoError(t, uow.UserRepository().ActivateUser(ctx, user.Id))
		require.NoError(t, uow.UserRepository().DeleteActivationToken(ctx, token.Id))

		activated, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
		require.NoError(t, err)
		require.NotNil(t, activated)
		assert.True(t, activated.Activated)
	})

	t.Run("refresh token revocation", func(t *testing.T) {
		refresh := &entity.UserRefreshToken{
			Id:        uuid.New(),
			UserId:    user.Id,
			TokenHash: uuid.New().String(),
			ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
			CreatedAt: time.Now(),
		}
		require.NoError(t, uow.UserRepository().CreateRefreshToken(ctx, refresh))
		require.NoError(t, uow.UserRepository().RevokeRefreshToken(ctx, refresh.TokenHash))
		require.NoError(t, uow.UserRepository().RevokeAllRefreshTokens(ctx, user.Id))
	})

	t.Run("deactivation removes user from active scope", func(t *testing.T) {
		require.NoError(t, uow.UserRepository().SoftDelete(ctx, user.Id))

		found, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestPasswordResetTokenSingleUse(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)

	token := &entity.PasswordResetToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, uow.UserRepository().CreatePasswordResetToken(ctx, token))

	found, err := uow.UserRepository().FindPasswordResetToken(ctx, specification.ByToken{Token: token.Token})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.Used)

	require.NoError(t, uow.UserRepository().MarkResetTokenUsed(ctx, token.Id))

	found, err = uow.UserRepository().FindPasswordResetToken(ctx, specification.ByToken{Token: token.Token})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.Used)
}
