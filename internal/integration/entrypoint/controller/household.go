package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homeledger/backend/internal/application/usecase/household"
)

// HouseholdController handles the household snapshot endpoint.
type HouseholdController struct {
	aggregateUseCase *household.AggregateUseCase
}

// NewHouseholdController creates a new household controller instance.
func NewHouseholdController(aggregateUseCase *household.AggregateUseCase) *HouseholdController {
	return &HouseholdController{
		aggregateUseCase: aggregateUseCase,
	}
}

// GetSnapshot handles GET /household/snapshot requests.
func (c *HouseholdController) GetSnapshot(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	snapshot := c.aggregateUseCase.Execute(ctx.Request.Context(), userID)

	ctx.JSON(http.StatusOK, snapshot)
}
