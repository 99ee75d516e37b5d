package credentials

import (
	"context"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/app/services/shared/keyvalue"
	"meditrack-client/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleUser() *models.User {
	createdAt := time.Date(2025, 4, 21, 9, 0, 0, 0, time.UTC)
	return &models.User{
		ID:              "u-1",
		Email:           "a@b.com",
		Name:            "Dr. Smith",
		Role:            models.RoleDoctor,
		IsEmailVerified: true,
		TimeModel: models.TimeModel{
			CreatedAt: models.Date{Time: createdAt},
			UpdatedAt: models.Date{Time: createdAt},
		},
	}
}

func TestCredentialStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty store is unauthenticated", func(t *testing.T) {
		store := NewCredentialStore(keyvalue.NewMemoryStorage(), zap.NewNop())

		_, found := store.GetToken(ctx)
		assert.False(t, found)
		_, found = store.GetRefreshToken(ctx)
		assert.False(t, found)
		_, found = store.GetUser(ctx)
		assert.False(t, found)
		assert.False(t, store.IsAuthenticated(ctx))
	})

	t.Run("Empty access token is stored as given", func(t *testing.T) {
		store := NewCredentialStore(keyvalue.NewMemoryStorage(), zap.NewNop())
		require.NoError(t, store.SetTokens(ctx, "", "R1"))

		token, found := store.GetToken(ctx)
		assert.True(t, found)
		assert.Equal(t, "", token)
		refreshToken, found := store.GetRefreshToken(ctx)
		assert.True(t, found)
		assert.Equal(t, "R1", refreshToken)
		assert.False(t, store.IsAuthenticated(ctx))
	})

	t.Run("Tokens and user round trip", func(t *testing.T) {
		store := NewCredentialStore(keyvalue.NewMemoryStorage(), zap.NewNop())
		require.NoError(t, store.SetTokens(ctx, "T1", "R1"))
		require.NoError(t, store.SetUser(ctx, sampleUser()))

		token, found := store.GetToken(ctx)
		assert.True(t, found)
		assert.Equal(t, "T1", token)

		refreshToken, found := store.GetRefreshToken(ctx)
		assert.True(t, found)
		assert.Equal(t, "R1", refreshToken)

		user, found := store.GetUser(ctx)
		require.True(t, found)
		assert.Equal(t, sampleUser(), user)
		assert.True(t, store.IsAuthenticated(ctx))
	})

	t.Run("SetTokens overwrites without validation", func(t *testing.T) {
		store := NewCredentialStore(keyvalue.NewMemoryStorage(), zap.NewNop())
		require.NoError(t, store.SetTokens(ctx, "T1", "R1"))
		require.NoError(t, store.SetTokens(ctx, "not a jwt", "R2"))

		token, _ := store.GetToken(ctx)
		refreshToken, _ := store.GetRefreshToken(ctx)
		assert.Equal(t, "not a jwt", token)
		assert.Equal(t, "R2", refreshToken)
	})

	t.Run("Logout twice leaves the store empty", func(t *testing.T) {
		store := NewCredentialStore(keyvalue.NewMemoryStorage(), zap.NewNop())
		require.NoError(t, store.SetTokens(ctx, "T1", "R1"))
		require.NoError(t, store.SetUser(ctx, sampleUser()))

		store.Clear(ctx)
		assert.False(t, store.IsAuthenticated(ctx))
		_, found := store.GetUser(ctx)
		assert.False(t, found)

		store.Clear(ctx)
		assert.False(t, store.IsAuthenticated(ctx))
		_, found = store.GetRefreshToken(ctx)
		assert.False(t, found)
	})

	t.Run("Corrupt user reads as absent", func(t *testing.T) {
		storage := keyvalue.NewMemoryStorage()
		require.NoError(t, storage.SetMany(ctx, map[string]string{constvars.StorageKeyUser: "{not-json"}))
		store := NewCredentialStore(storage, zap.NewNop())

		user, found := store.GetUser(ctx)
		assert.False(t, found)
		assert.Nil(t, user)

		_, state := store.UserStatus(ctx)
		assert.Equal(t, models.UserStateCorrupt, state)
	})

	t.Run("UserStatus distinguishes absent from present", func(t *testing.T) {
		store := NewCredentialStore(keyvalue.NewMemoryStorage(), zap.NewNop())
		_, state := store.UserStatus(ctx)
		assert.Equal(t, models.UserStateAbsent, state)

		require.NoError(t, store.SetUser(ctx, sampleUser()))
		user, state := store.UserStatus(ctx)
		assert.Equal(t, models.UserStatePresent, state)
		assert.Equal(t, "a@b.com", user.Email)
	})

	t.Run("Instances over separate storages are isolated", func(t *testing.T) {
		first := NewCredentialStore(keyvalue.NewMemoryStorage(), zap.NewNop())
		second := NewCredentialStore(keyvalue.NewMemoryStorage(), zap.NewNop())
		require.NoError(t, first.SetTokens(ctx, "T1", "R1"))

		assert.True(t, first.IsAuthenticated(ctx))
		assert.False(t, second.IsAuthenticated(ctx))
	})
}
