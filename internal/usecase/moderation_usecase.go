package usecase

import (
	"context"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
)

// VerifyKYCInput is the body of PATCH /api/admin/kyc/verify/:userId.
type VerifyKYCInput struct {
	Status  string `json:"status" validate:"required"`
	Reason  string `json:"reason"`
	AdminID string `json:"adminId"`
}

// RefundDecisionInput is the body of the refund approve and reject routes.
type RefundDecisionInput struct {
	Reason  string `json:"reason"`
	AdminID string `json:"adminId"`
}

// ModerationUsecase settles KYC records and refund requests.
// A missing admin id is taken from the session in ctx.
type ModerationUsecase interface {
	ListKYC(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.KYCRecord], error)

	// VerifyKYC accepts approved or rejected; rejected needs a reason.
	VerifyKYC(ctx context.Context, userID string, input *VerifyKYCInput) (*entity.KYCRecord, error)

	DeleteKYC(ctx context.Context, userID string) error

	ListRefunds(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Refund], error)
	ApproveRefund(ctx context.Context, refundID string, input *RefundDecisionInput) (*entity.Refund, error)

	// RejectRefund needs a non-blank reason.
	RejectRefund(ctx context.Context, refundID string, input *RefundDecisionInput) (*entity.Refund, error)

	// History lists the decisions this gateway recorded.
	History(ctx context.Context, query repository.DecisionQuery) ([]*entity.ModerationDecision, error)
}
