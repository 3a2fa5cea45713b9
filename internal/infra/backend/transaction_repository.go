package backend

import (
	"context"
	"net/http"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
)

const transactionPath = "/api/admin/payment/transactions"

type transactionRepository struct {
	client *Client
}

// NewTransactionRepository is the constructor for the backend transaction repository.
func NewTransactionRepository(client *Client) repository.TransactionRepository {
	return &transactionRepository{client: client}
}

func (r *transactionRepository) List(ctx context.Context, query repository.TransactionQuery) (*entity.Page[entity.Transaction], error) {
	raw, err := r.client.do(ctx, call{
		method: http.MethodGet,
		path:   transactionPath,
		route:  transactionPath,
		query:  query.Values(),
	})
	if err != nil {
		return nil, err
	}

	return decodePage[entity.Transaction](raw, transactionPath)
}
