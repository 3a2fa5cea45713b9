package entity

import "time"

// TransactionStatus is the settlement state of a payment or payout.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionSucceeded TransactionStatus = "succeeded"
	TransactionFailed    TransactionStatus = "failed"
	TransactionRefunded  TransactionStatus = "refunded"
)

// IsValid checks if the status is one the backend is known to emit.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionPending, TransactionSucceeded, TransactionFailed, TransactionRefunded:
		return true
	default:
		return false
	}
}

// Transaction is an immutable payment or payout record.
type Transaction struct {
	ID        string            `json:"_id"`
	Type      string            `json:"type,omitempty"`
	User      UserRef           `json:"user"`
	Mission   Ref[Mission]      `json:"mission"`
	Amount    float64           `json:"amount"`
	Currency  string            `json:"currency,omitempty"`
	Status    TransactionStatus `json:"status"`
	Reference string            `json:"reference,omitempty"`
	Provider  string            `json:"provider,omitempty"`
	CreatedAt *time.Time        `json:"createdAt,omitempty"`
}

// Identity implements Identifiable.
func (t Transaction) Identity() string {
	return t.ID
}
