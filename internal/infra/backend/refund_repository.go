package backend

import (
	"context"
	"net/http"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
)

const refundPath = "/api/admin/payment/refund"

type refundRepository struct {
	client *Client
}

// NewRefundRepository is the constructor for the backend refund repository.
func NewRefundRepository(client *Client) repository.RefundRepository {
	return &refundRepository{client: client}
}

func (r *refundRepository) List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Refund], error) {
	raw, err := r.client.do(ctx, call{
		method: http.MethodGet,
		path:   refundPath,
		route:  refundPath,
		query:  query.Values(),
	})
	if err != nil {
		return nil, err
	}

	return decodePage[entity.Refund](raw, refundPath)
}

func (r *refundRepository) Approve(ctx context.Context, refundID string, input repository.RefundDecision) (*entity.Refund, error) {
	return r.settle(ctx, refundID, "approve", input)
}

func (r *refundRepository) Reject(ctx context.Context, refundID string, input repository.RefundDecision) (*entity.Refund, error) {
	return r.settle(ctx, refundID, "reject", input)
}

func (r *refundRepository) settle(ctx context.Context, refundID, action string, input repository.RefundDecision) (*entity.Refund, error) {
	path := refundPath + "/" + segment(refundID) + "/" + action
	raw, err := r.client.do(ctx, call{
		method: http.MethodPut,
		path:   path,
		route:  refundPath + "/:refundId/" + action,
		body:   input,
	})
	if err != nil {
		return nil, err
	}

	return decodeItem[entity.Refund](raw, path, false)
}
