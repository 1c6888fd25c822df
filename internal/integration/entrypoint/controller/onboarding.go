package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homeledger/backend/internal/application/usecase/onboarding"
	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

// OnboardingController handles the onboarding pause/resume endpoints.
type OnboardingController struct {
	stateUseCase *onboarding.StateUseCase
}

// NewOnboardingController creates a new onboarding controller instance.
func NewOnboardingController(stateUseCase *onboarding.StateUseCase) *OnboardingController {
	return &OnboardingController{
		stateUseCase: stateUseCase,
	}
}

// GetState handles GET /onboarding/state requests.
func (c *OnboardingController) GetState(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	state, err := c.stateUseCase.Get(ctx.Request.Context(), userID)
	if err != nil {
		handleOnboardingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOnboardingStateResponse(state))
}

// SaveState handles PUT /onboarding/state requests.
func (c *OnboardingController) SaveState(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.OnboardingStateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeOnboardingInvalid),
			Details: err.Error(),
		})
		return
	}

	state, err := c.stateUseCase.Save(ctx.Request.Context(), userID, req.ToEntity())
	if err != nil {
		handleOnboardingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOnboardingStateResponse(state))
}

// ClearState handles DELETE /onboarding/state requests.
func (c *OnboardingController) ClearState(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	if err := c.stateUseCase.Clear(ctx.Request.Context(), userID); err != nil {
		handleOnboardingError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
