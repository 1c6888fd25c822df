package insight

import (
	"context"
	"log/slog"
	"time"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/extrapolation"
	"github.com/homeledger/backend/internal/application/usecase/generation"
	"github.com/homeledger/backend/internal/domain/entity"
)

// RenderUseCase turns predictions into prioritized insights.
type RenderUseCase struct {
	generator adapter.TextGenerator
	timeout   time.Duration
}

// NewRenderUseCase creates a new RenderUseCase instance. generator may be nil.
func NewRenderUseCase(generator adapter.TextGenerator, timeout time.Duration) *RenderUseCase {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &RenderUseCase{
		generator: generator,
		timeout:   timeout,
	}
}

// Generated reports whether insights come from the text-generation backend.
func (uc *RenderUseCase) Generated() bool {
	return uc.generator != nil && uc.generator.IsAvailable()
}

// Execute renders at most MaxInsights insights.
// Without a backend the templates are used. With one, any failure yields an empty list.
func (uc *RenderUseCase) Execute(ctx context.Context, predictions extrapolation.RawPredictions) []entity.PredictionInsight {
	empty := []entity.PredictionInsight{}
	if predictions.IsEmpty() {
		return empty
	}
	if !uc.Generated() {
		return Fallback(predictions)
	}

	request, err := BuildRequest(predictions)
	if err != nil {
		slog.Error("Failed to build insight request", "error", err)
		return empty
	}

	text, ok := generation.Call(ctx, uc.generator, uc.timeout, request, "insights")
	if !ok {
		return empty
	}

	insights, err := ParseResponse(text, CategoryPriorities(predictions))
	if err != nil {
		slog.Warn("Discarding generated insights", "error", err)
		return empty
	}
	return SortAndCap(insights)
}
