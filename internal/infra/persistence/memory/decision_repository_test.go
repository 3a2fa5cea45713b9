package memory

import (
	"context"
	"testing"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionRepository_ListNewestFirstWithFilters(t *testing.T) {
	repo := NewDecisionRepository()
	ctx := context.Background()

	for _, d := range []*entity.ModerationDecision{
		{Resource: entity.ResourceKYC, ResourceID: "u1", Decision: entity.DecisionApproved},
		{Resource: entity.ResourceRefund, ResourceID: "r1", Decision: entity.DecisionRejected},
		{Resource: entity.ResourceKYC, ResourceID: "u2", Decision: entity.DecisionRejected},
	} {
		require.NoError(t, repo.Record(ctx, d))
	}

	all, err := repo.List(ctx, repository.DecisionQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "u2", all[0].ResourceID)
	assert.Equal(t, "u1", all[2].ResourceID)

	kyc, err := repo.List(ctx, repository.DecisionQuery{Resource: entity.ResourceKYC})
	require.NoError(t, err)
	assert.Len(t, kyc, 2)

	one, err := repo.List(ctx, repository.DecisionQuery{Resource: entity.ResourceKYC, ResourceID: "u1"})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, entity.DecisionApproved, one[0].Decision)

	limited, err := repo.List(ctx, repository.DecisionQuery{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestDecisionRepository_DropsOldestBeyondCap(t *testing.T) {
	repo := NewDecisionRepository().(*decisionRepository)

	for i := 0; i < maxDecisions+5; i++ {
		require.NoError(t, repo.Record(context.Background(), &entity.ModerationDecision{Resource: entity.ResourceMission}))
	}

	assert.Len(t, repo.decisions, maxDecisions)
}
