package contracts

import (
	"context"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/pkg/dto/responses"
)

type TokenRefresher interface {
	RefreshToken(ctx context.Context) (*models.Tokens, error)
}

type AuthClient interface {
	TokenRefresher
	Register(ctx context.Context, email, password, name string) (*responses.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*responses.AuthResponse, error)
	Logout(ctx context.Context)
}
