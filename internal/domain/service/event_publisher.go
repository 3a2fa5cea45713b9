package service

import (
	"context"
	"time"

	"mutant-admin/internal/domain/entity"
)

// ModerationEvent announces a moderation decision to downstream consumers
type ModerationEvent struct {
	RequestID  string              `json:"request_id,omitempty"` // For distributed tracing
	DecisionID string              `json:"decision_id"`
	Resource   entity.ResourceKind `json:"resource"`
	ResourceID string              `json:"resource_id"`
	Decision   entity.Decision     `json:"decision"`
	AdminID    string              `json:"admin_id,omitempty"`
	Reason     string              `json:"reason,omitempty"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishModerationEvent publishes a decision after the backend accepted it
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
