// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
	"github.com/homeledger/backend/internal/integration/entrypoint/middleware"
)

// requireUserID reads the authenticated user, writing a 401 when it is missing.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// handleReportError maps report errors to HTTP responses.
// Store failures are retryable and surface as 503.
func handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		slog.Error("Unexpected report error", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
			Code:  string(domainerror.ErrCodeReportInternalError),
		})
		return
	}

	status := http.StatusInternalServerError
	switch reportErr.Code {
	case domainerror.ErrCodeInvalidPeriodKey:
		status = http.StatusBadRequest
	case domainerror.ErrCodeReportNotFound, domainerror.ErrCodeShareTokenNotFound:
		status = http.StatusNotFound
	case domainerror.ErrCodeGenerationInProgress:
		status = http.StatusConflict
	case domainerror.ErrCodeReportSaveFailed, domainerror.ErrCodeReportStoreUnavailable:
		status = http.StatusServiceUnavailable
	}

	response := dto.ErrorResponse{
		Error: reportErr.Message,
		Code:  string(reportErr.Code),
	}
	if status == http.StatusServiceUnavailable {
		ctx.Header("Retry-After", "30")
		response.Details = "The report store is temporarily unavailable. Retry later."
	}
	ctx.JSON(status, response)
}

// handleOnboardingError maps onboarding errors to HTTP responses.
func handleOnboardingError(ctx *gin.Context, err error) {
	var onbErr *domainerror.OnboardingError
	if !errors.As(err, &onbErr) {
		slog.Error("Unexpected onboarding error", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
		})
		return
	}

	status := http.StatusInternalServerError
	switch onbErr.Code {
	case domainerror.ErrCodeOnboardingInvalid:
		status = http.StatusBadRequest
	case domainerror.ErrCodeOnboardingNotFound:
		status = http.StatusNotFound
	case domainerror.ErrCodeOnboardingUnavailable:
		slog.Error("Onboarding store unavailable", "error", err)
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: onbErr.Message,
		Code:  string(onbErr.Code),
	})
}
