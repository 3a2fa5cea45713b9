package entity

import (
	"encoding/json"
	"time"
)

// KYCRecord is the identity and bank verification submitted by a payout-eligible user.
type KYCRecord struct {
	ID              string            `json:"_id"`
	User            UserRef           `json:"userId"`
	Status          ModerationStatus  `json:"status"`
	FullName        string            `json:"fullName,omitempty"`
	IDType          string            `json:"idType,omitempty"`
	IDNumber        string            `json:"idNumber,omitempty"`
	BankDetails     *BankDetails      `json:"bankDetails,omitempty"`
	Documents       map[string]string `json:"documents,omitempty"`
	RejectionReason string            `json:"rejectionReason,omitempty"`
	ReviewedBy      string            `json:"reviewedBy,omitempty"`
	CreatedAt       *time.Time        `json:"createdAt,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewedAt,omitempty"`
}

type BankDetails struct {
	BankName      string `json:"bankName,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

// SubjectID is the id the verify and delete routes are keyed by: the owning
// user's id, whichever shape the reference arrived in.
func (k KYCRecord) SubjectID() string {
	if id := k.User.ID(); id != "" {
		return id
	}

	return k.ID
}

// ModerationState implements Moderated.
func (k KYCRecord) ModerationState() ModerationStatus {
	return k.Status
}

// Identity implements Identifiable.
func (k KYCRecord) Identity() string {
	return k.SubjectID()
}

func (k *KYCRecord) UnmarshalJSON(data []byte) error {
	type alias KYCRecord
	aux := struct {
		*alias
		RawStatus string `json:"status"`
	}{alias: (*alias)(k)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	k.Status = normalizeStatus(aux.RawStatus)

	return nil
}

// Moderated is implemented by records that go through the review workflow.
type Moderated interface {
	Identifiable
	ModerationState() ModerationStatus
}

func normalizeStatus(raw string) ModerationStatus {
	if status, ok := ParseModerationStatus(raw); ok {
		return status
	}

	return ModerationStatus(raw)
}
