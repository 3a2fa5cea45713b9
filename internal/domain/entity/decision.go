package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResourceKind names a moderated resource.
type ResourceKind string

const (
	ResourceKYC     ResourceKind = "kyc"
	ResourceRefund  ResourceKind = "refund"
	ResourceMission ResourceKind = "mission"
)

// IsValid checks if the kind is a known resource.
func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceKYC, ResourceRefund, ResourceMission:
		return true
	default:
		return false
	}
}

// Decision is what an admin did to a moderated resource.
type Decision string

const (
	DecisionApproved    Decision = "approved"
	DecisionRejected    Decision = "rejected"
	DecisionDeleted     Decision = "deleted"
	DecisionPublished   Decision = "published"
	DecisionUnpublished Decision = "unpublished"
)

// DecisionFor maps a terminal moderation status to its decision.
func DecisionFor(status ModerationStatus) Decision {
	if status == StatusApproved {
		return DecisionApproved
	}

	return DecisionRejected
}

// ModerationDecision is one audit entry recorded after the backend accepted a transition.
type ModerationDecision struct {
	ID         uuid.UUID    `json:"id"`
	Resource   ResourceKind `json:"resource"`
	ResourceID string       `json:"resourceId"`
	Decision   Decision     `json:"decision"`
	AdminID    string       `json:"adminId"`
	Reason     string       `json:"reason,omitempty"`
	RequestID  string       `json:"requestId,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}
