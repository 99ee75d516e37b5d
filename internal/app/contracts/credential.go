package contracts

import (
	"context"
	"meditrack-client/internal/app/models"
)

type CredentialStore interface {
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
	SetUser(ctx context.Context, user *models.User) error
	GetToken(ctx context.Context) (string, bool)
	GetRefreshToken(ctx context.Context) (string, bool)
	GetUser(ctx context.Context) (*models.User, bool)
	UserStatus(ctx context.Context) (*models.User, models.UserState)
	IsAuthenticated(ctx context.Context) bool
	Clear(ctx context.Context)
}
