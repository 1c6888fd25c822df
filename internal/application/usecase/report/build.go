package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/usecase/household"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

// SnapshotProvider aggregates a user's household.
type SnapshotProvider interface {
	Execute(ctx context.Context, userID uuid.UUID) *household.Snapshot
}

// BuildDraftUseCase extends the household snapshot with cost groups, trend and highlights.
type BuildDraftUseCase struct {
	snapshots SnapshotProvider
	rules     []CostGroupRule
}

// NewBuildDraftUseCase creates a new BuildDraftUseCase instance.
func NewBuildDraftUseCase(snapshots SnapshotProvider, rules valueobject.ClassificationRules) *BuildDraftUseCase {
	return &BuildDraftUseCase{
		snapshots: snapshots,
		rules:     NewCostGroupRules(rules),
	}
}

// Execute builds the draft for periodKey. It never fails; missing domains leave sections empty.
func (uc *BuildDraftUseCase) Execute(ctx context.Context, userID uuid.UUID, periodKey time.Time) *Draft {
	snapshot := uc.snapshots.Execute(ctx, userID)
	period := valueobject.PeriodKeyFor(periodKey)

	groups, total := GroupCosts(uc.rules, snapshot.Records.Obligations, period)
	return &Draft{
		UserID:    userID,
		PeriodKey: period,
		Snapshot:  snapshot,
		CostAnalysis: CostAnalysis{
			Groups: groups,
			Trend:  BuildTrend(snapshot.Records.Obligations, period),
			Total:  total,
		},
		Highlights: BuildHighlights(snapshot, snapshot.GeneratedAt),
	}
}
