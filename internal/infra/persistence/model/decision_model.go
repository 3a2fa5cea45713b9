package model

import (
	"time"

	"github.com/google/uuid"
)

// ModerationDecisionTable holds the append-only audit log.
const ModerationDecisionTable = "moderation_decisions"

// ModerationDecisionModel is the GORM-specific struct for the 'moderation_decisions' table.
// Rows are append-only.
type ModerationDecisionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Resource   string    `gorm:"type:text;not null;index:idx_moderation_decisions_resource"`
	ResourceID string    `gorm:"type:text;not null;index:idx_moderation_decisions_resource"`
	Decision   string    `gorm:"type:text;not null"`
	AdminID    string    `gorm:"type:text;not null;index"`
	Reason     string    `gorm:"type:text"`
	RequestID  string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ModerationDecisionModel) TableName() string {
	return ModerationDecisionTable
}
