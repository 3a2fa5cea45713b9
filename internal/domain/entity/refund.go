package entity

import (
	"encoding/json"
	"time"
)

// Enrollment links a student to a mission purchase.
type Enrollment struct {
	ID      string       `json:"_id"`
	Mission Ref[Mission] `json:"mission"`
	Amount  float64      `json:"amount,omitempty"`
}

// Identity implements Identifiable.
func (e Enrollment) Identity() string {
	return e.ID
}

// Refund is a student's request to be reimbursed for an enrollment.
type Refund struct {
	ID              string           `json:"_id"`
	Student         UserRef          `json:"student"`
	Enrollment      Ref[Enrollment]  `json:"enrollment"`
	Amount          float64          `json:"amount"`
	Currency        string           `json:"currency,omitempty"`
	Reason          string           `json:"reason,omitempty"`
	Status          ModerationStatus `json:"status"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
	CreatedAt       *time.Time       `json:"createdAt,omitempty"`
	ProcessedAt     *time.Time       `json:"processedAt,omitempty"`
}

// Identity implements Identifiable.
func (r Refund) Identity() string {
	return r.ID
}

// ModerationState implements Moderated.
func (r Refund) ModerationState() ModerationStatus {
	return r.Status
}

func (r *Refund) UnmarshalJSON(data []byte) error {
	type alias Refund
	aux := struct {
		*alias
		AltID     string  `json:"id"`
		UserID    UserRef `json:"userId"`
		RawStatus string  `json:"status"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = aux.AltID
	}
	if r.Student.IsZero() {
		r.Student = aux.UserID
	}
	r.Status = normalizeStatus(aux.RawStatus)

	return nil
}
