package contracts

import (
	"context"
	"meditrack-client/internal/app/models"
)

type SessionEventPublisher interface {
	Publish(ctx context.Context, event *models.SessionEvent) error
}
