package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homeledger/backend/internal/application/usecase/report"
	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/domain/valueobject"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles monthly report endpoints.
type ReportController struct {
	getReportUseCase       *report.GetReportUseCase
	ensureUseCase          *report.EnsureCurrentPeriodUseCase
	generateAndSaveUseCase *report.GenerateAndSaveUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	getReportUseCase *report.GetReportUseCase,
	ensureUseCase *report.EnsureCurrentPeriodUseCase,
	generateAndSaveUseCase *report.GenerateAndSaveUseCase,
) *ReportController {
	return &ReportController{
		getReportUseCase:       getReportUseCase,
		ensureUseCase:          ensureUseCase,
		generateAndSaveUseCase: generateAndSaveUseCase,
	}
}

// List handles GET /reports requests.
func (c *ReportController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "12"))
	if err != nil {
		limit = 0
	}

	reports, err := c.getReportUseCase.List(ctx.Request.Context(), userID, limit)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportListResponse(reports))
}

// Current handles GET /reports/current requests.
func (c *ReportController) Current(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	current, err := c.getReportUseCase.Current(ctx.Request.Context(), userID)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(current))
}

// ByPeriod handles GET /reports/:period requests.
func (c *ReportController) ByPeriod(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	period, ok := parsePeriodParam(ctx)
	if !ok {
		return
	}

	found, err := c.getReportUseCase.ByPeriod(ctx.Request.Context(), userID, period)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(found))
}

// Ensure handles POST /reports/ensure requests, made when the client opens on
// the first of the month.
func (c *ReportController) Ensure(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.ensureUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	response := dto.EnsureReportResponse{
		Status:    string(output.Status),
		PeriodKey: output.PeriodKey.Format("2006-01"),
	}
	if output.Report != nil {
		r := dto.ToReportResponse(output.Report)
		response.Report = &r
	}

	status := http.StatusOK
	if output.Status == report.EnsureStatusCreated {
		status = http.StatusCreated
	}
	ctx.JSON(status, response)
}

// Regenerate handles POST /reports/:period/regenerate requests.
// Pass ?notify=true to announce the regenerated report.
func (c *ReportController) Regenerate(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	period, ok := parsePeriodParam(ctx)
	if !ok {
		return
	}

	notify, _ := strconv.ParseBool(ctx.DefaultQuery("notify", "false"))

	output := c.generateAndSaveUseCase.Execute(ctx.Request.Context(), report.GenerateAndSaveInput{
		UserID:           userID,
		PeriodKey:        period,
		SendNotification: notify,
	})
	if !output.Saved {
		handleReportError(ctx, output.Err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RegenerateReportResponse{
		Created:   output.Created,
		Generated: output.Generated,
		Notified:  output.Notified,
		Report:    dto.ToReportResponse(output.Report),
	})
}

// Shared handles GET /shared/reports/:token requests. It is public and returns text only.
func (c *ReportController) Shared(ctx *gin.Context) {
	shared, err := c.getReportUseCase.Shared(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSharedReportResponse(shared))
}

func parsePeriodParam(ctx *gin.Context) (time.Time, bool) {
	period, err := valueobject.ParsePeriodKey(ctx.Param("period"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainerror.ErrInvalidPeriodKey.Error(),
			Code:  string(domainerror.ErrCodeInvalidPeriodKey),
		})
		return time.Time{}, false
	}
	return period, true
}
