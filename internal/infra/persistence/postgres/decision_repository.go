// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultDecisionLimit = 50

// decisionRepository implements the repository.DecisionRepository interface.
type decisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository is the constructor for decisionRepository.
func NewDecisionRepository(db *gorm.DB) repository.DecisionRepository {
	return &decisionRepository{
		db: db,
	}
}

// Record appends one decision. Id and timestamp are assigned when missing.
func (repo *decisionRepository) Record(ctx context.Context, decision *entity.ModerationDecision) error {
	if decision.ID == uuid.Nil {
		decision.ID = uuid.New()
	}
	if decision.CreatedAt.IsZero() {
		decision.CreatedAt = time.Now().UTC()
	}

	decisionM := fromDecisionDomain(decision)
	if err := repo.db.WithContext(ctx).Create(decisionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(err, "decision %s already recorded", decision.ID)
		}

		return errors.Wrap(err, "failed to record moderation decision")
	}

	return nil
}

// List retrieves decisions newest first.
func (repo *decisionRepository) List(ctx context.Context, query repository.DecisionQuery) ([]*entity.ModerationDecision, error) {
	var decisionModels []*model.ModerationDecisionModel

	tx := repo.db.WithContext(ctx).Model(&model.ModerationDecisionModel{})
	if query.Resource != "" {
		tx = tx.Where("resource = ?", string(query.Resource))
	}
	if query.ResourceID != "" {
		tx = tx.Where("resource_id = ?", query.ResourceID)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultDecisionLimit
	}

	if err := tx.Order("created_at DESC").Limit(limit).Find(&decisionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list moderation decisions")
	}

	decisions := make([]*entity.ModerationDecision, 0, len(decisionModels))
	for _, decisionM := range decisionModels {
		decisions = append(decisions, toDecisionDomain(decisionM))
	}

	return decisions, nil
}

func fromDecisionDomain(decision *entity.ModerationDecision) *model.ModerationDecisionModel {
	return &model.ModerationDecisionModel{
		ID:         decision.ID,
		Resource:   string(decision.Resource),
		ResourceID: decision.ResourceID,
		Decision:   string(decision.Decision),
		AdminID:    decision.AdminID,
		Reason:     decision.Reason,
		RequestID:  decision.RequestID,
		CreatedAt:  decision.CreatedAt,
	}
}

func toDecisionDomain(decisionM *model.ModerationDecisionModel) *entity.ModerationDecision {
	return &entity.ModerationDecision{
		ID:         decisionM.ID,
		Resource:   entity.ResourceKind(decisionM.Resource),
		ResourceID: decisionM.ResourceID,
		Decision:   entity.Decision(decisionM.Decision),
		AdminID:    decisionM.AdminID,
		Reason:     decisionM.Reason,
		RequestID:  decisionM.RequestID,
		CreatedAt:  decisionM.CreatedAt,
	}
}
