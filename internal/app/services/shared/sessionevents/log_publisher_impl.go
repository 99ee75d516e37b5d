package sessionevents

import (
	"context"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type logPublisher struct {
	Log *zap.Logger
}

// NewLogPublisher records session events in the application log only. It is
// used when no broker is configured.
func NewLogPublisher(logger *zap.Logger) contracts.SessionEventPublisher {
	return &logPublisher{Log: logger}
}

func (p *logPublisher) Publish(ctx context.Context, event *models.SessionEvent) error {
	p.Log.Info("session event",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingEventTypeKey, string(event.Type)),
		zap.String(constvars.LoggingUserIDKey, event.UserID),
		zap.Time("occurred_at", event.OccurredAt),
	)
	return nil
}
