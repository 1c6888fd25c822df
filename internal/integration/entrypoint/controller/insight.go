package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homeledger/backend/internal/application/usecase/insight"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

// InsightController handles prediction insight endpoints.
type InsightController struct {
	getInsightsUseCase *insight.GetInsightsUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(getInsightsUseCase *insight.GetInsightsUseCase) *InsightController {
	return &InsightController{
		getInsightsUseCase: getInsightsUseCase,
	}
}

// GetInsights handles GET /insights requests. It always answers 200; an empty
// list means there is nothing worth showing.
func (c *InsightController) GetInsights(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output := c.getInsightsUseCase.Execute(ctx.Request.Context(), userID)

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output.Insights, output.Generated, output.GeneratedAt))
}
