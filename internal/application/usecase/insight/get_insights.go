package insight

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/usecase/household"
	"github.com/homeledger/backend/internal/domain/entity"
)

// SnapshotProvider aggregates a user's household.
type SnapshotProvider interface {
	Execute(ctx context.Context, userID uuid.UUID) *household.Snapshot
}

// GetInsightsOutput represents the output of getting insights.
type GetInsightsOutput struct {
	Insights    []entity.PredictionInsight
	Generated   bool
	GeneratedAt time.Time
}

// GetInsightsUseCase aggregates the household and renders its insights.
type GetInsightsUseCase struct {
	snapshots SnapshotProvider
	renderer  *RenderUseCase
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(snapshots SnapshotProvider, renderer *RenderUseCase) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		snapshots: snapshots,
		renderer:  renderer,
	}
}

// Execute never fails; an empty list means there is nothing to show.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, userID uuid.UUID) *GetInsightsOutput {
	snapshot := uc.snapshots.Execute(ctx, userID)
	return &GetInsightsOutput{
		Insights:    uc.renderer.Execute(ctx, snapshot.Predictions),
		Generated:   uc.renderer.Generated(),
		GeneratedAt: snapshot.GeneratedAt,
	}
}
