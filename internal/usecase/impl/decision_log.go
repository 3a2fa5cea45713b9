package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mutant-admin/internal/delivery/context"
	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/domain/service"

	"github.com/google/uuid"
)

// decisionLog records what admins decided after the backend accepted it.
// The backend stays the source of truth, so nothing here fails the caller.
type decisionLog struct {
	repo      repository.DecisionRepository
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

func newDecisionLog(repo repository.DecisionRepository, publisher service.EventPublisher, metrics service.MetricsRecorder, logger *slog.Logger) *decisionLog {
	return &decisionLog{
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

func (l *decisionLog) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func (l *decisionLog) record(ctx context.Context, resource entity.ResourceKind, resourceID string, decision entity.Decision, adminID, reason string) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	entry := &entity.ModerationDecision{
		ID:         uuid.New(),
		Resource:   resource,
		ResourceID: resourceID,
		Decision:   decision,
		AdminID:    adminID,
		Reason:     reason,
		RequestID:  requestID,
		CreatedAt:  time.Now().UTC(),
	}

	if l.repo != nil {
		if err := l.repo.Record(ctx, entry); err != nil {
			l.log(ctx).Error("Failed to record moderation decision",
				slog.String("resource", string(resource)),
				slog.String("resourceID", resourceID),
				slog.Any("error", err))
		}
	}

	if l.publisher != nil {
		event := &service.ModerationEvent{
			RequestID:  requestID,
			DecisionID: entry.ID.String(),
			Resource:   resource,
			ResourceID: resourceID,
			Decision:   decision,
			AdminID:    adminID,
			Reason:     reason,
			OccurredAt: entry.CreatedAt,
		}
		if err := l.publisher.PublishModerationEvent(ctx, event); err != nil {
			l.log(ctx).Warn("Failed to publish moderation event",
				slog.String("resource", string(resource)),
				slog.String("resourceID", resourceID),
				slog.Any("error", err))
		}
	}

	if l.metrics != nil {
		l.metrics.CountDecision(string(resource), string(decision))
	}

	l.log(ctx).Info("Moderation decision applied",
		slog.String("resource", string(resource)),
		slog.String("resourceID", resourceID),
		slog.String("decision", string(decision)),
		slog.String("adminID", adminID))
}

// actingAdmin prefers the id sent by the client and falls back to the session.
func actingAdmin(ctx context.Context, provided string) string {
	if provided != "" {
		return provided
	}

	return deliverycontext.AdminIDFromContext(ctx)
}
