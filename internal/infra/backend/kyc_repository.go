package backend

import (
	"context"
	"net/http"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
)

const kycPath = "/api/admin/kyc"

type kycRepository struct {
	client *Client
}

// NewKYCRepository is the constructor for the backend KYC repository.
func NewKYCRepository(client *Client) repository.KYCRepository {
	return &kycRepository{client: client}
}

func (r *kycRepository) List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.KYCRecord], error) {
	raw, err := r.client.do(ctx, call{
		method: http.MethodGet,
		path:   kycPath,
		route:  kycPath,
		query:  query.Values(),
	})
	if err != nil {
		return nil, err
	}

	return decodePage[entity.KYCRecord](raw, kycPath)
}

func (r *kycRepository) Verify(ctx context.Context, userID string, input repository.KYCVerification) (*entity.KYCRecord, error) {
	path := kycPath + "/verify/" + segment(userID)
	raw, err := r.client.do(ctx, call{
		method: http.MethodPatch,
		path:   path,
		route:  kycPath + "/verify/:userId",
		body:   input,
	})
	if err != nil {
		return nil, err
	}

	return decodeItem[entity.KYCRecord](raw, path, false)
}

func (r *kycRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.client.do(ctx, call{
		method: http.MethodDelete,
		path:   kycPath + "/" + segment(userID),
		route:  kycPath + "/:userId",
	})

	return err
}
