package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/homeledger/backend/internal/application/adapter"
)

// Call runs one generation request bounded by timeout.
// It returns ok=false when the backend is missing, fails, or times out; callers then use their fallback.
func Call(
	ctx context.Context,
	generator adapter.TextGenerator,
	timeout time.Duration,
	request adapter.GenerationRequest,
	callSite string,
) (string, bool) {
	if generator == nil || !generator.IsAvailable() {
		return "", false
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	text, err := generator.Generate(callCtx, request)
	if err != nil {
		slog.Warn("Text generation failed, using fallback",
			"call_site", callSite,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return "", false
	}
	return text, true
}
