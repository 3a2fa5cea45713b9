// Package memory keeps the moderation audit log in process when no database is configured.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"

	"github.com/google/uuid"
)

// maxDecisions caps the in-process log; the oldest entries are dropped first.
const maxDecisions = 1000

type decisionRepository struct {
	mu        sync.RWMutex
	decisions []entity.ModerationDecision
}

func NewDecisionRepository() repository.DecisionRepository {
	return &decisionRepository{}
}

func (r *decisionRepository) Record(_ context.Context, decision *entity.ModerationDecision) error {
	if decision.ID == uuid.Nil {
		decision.ID = uuid.New()
	}
	if decision.CreatedAt.IsZero() {
		decision.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.decisions = append(r.decisions, *decision)
	if overflow := len(r.decisions) - maxDecisions; overflow > 0 {
		r.decisions = slices.Delete(r.decisions, 0, overflow)
	}

	return nil
}

func (r *decisionRepository) List(_ context.Context, query repository.DecisionQuery) ([]*entity.ModerationDecision, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.ModerationDecision, 0, min(limit, len(r.decisions)))
	for i := len(r.decisions) - 1; i >= 0 && len(out) < limit; i-- {
		decision := r.decisions[i]
		if query.Resource != "" && decision.Resource != query.Resource {
			continue
		}
		if query.ResourceID != "" && decision.ResourceID != query.ResourceID {
			continue
		}
		out = append(out, &decision)
	}

	return out, nil
}
