// Package repository defines the contracts for reaching the data the gateway serves.
// Most implementations proxy to the external backend; the audit log is local.
package repository

import (
	"context"

	"mutant-admin/internal/domain/entity"
)

// KYCVerification is the body sent when an admin settles a KYC record.
type KYCVerification struct {
	Status  entity.ModerationStatus `json:"status"`
	Reason  string                  `json:"reason,omitempty"`
	AdminID string                  `json:"adminId,omitempty"`
}

// RefundDecision is the body sent when an admin settles a refund request.
type RefundDecision struct {
	Reason  string `json:"reason,omitempty"`
	AdminID string `json:"adminId,omitempty"`
}

// KYCRepository reaches the backend's KYC review endpoints.
type KYCRepository interface {
	// List returns one page of KYC records. FilterAll sends no status.
	List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.KYCRecord], error)

	// Verify moves the record of userID to approved or rejected.
	Verify(ctx context.Context, userID string, input KYCVerification) (*entity.KYCRecord, error)

	Delete(ctx context.Context, userID string) error
}

// RefundRepository reaches the backend's refund review endpoints.
type RefundRepository interface {
	List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Refund], error)
	Approve(ctx context.Context, refundID string, input RefundDecision) (*entity.Refund, error)
	Reject(ctx context.Context, refundID string, input RefundDecision) (*entity.Refund, error)
}

// DecisionQuery narrows the audit log. Empty fields match everything.
type DecisionQuery struct {
	Resource   entity.ResourceKind
	ResourceID string
	Limit      int
}

// DecisionRepository stores the gateway's own audit trail of moderation decisions.
type DecisionRepository interface {
	Record(ctx context.Context, decision *entity.ModerationDecision) error

	// List returns decisions newest first.
	List(ctx context.Context, query DecisionQuery) ([]*entity.ModerationDecision, error)
}
