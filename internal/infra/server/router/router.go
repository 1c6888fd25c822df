// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/homeledger/backend/internal/integration/entrypoint/controller"
	"github.com/homeledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	householdController   *controller.HouseholdController
	insightController     *controller.InsightController
	reportController      *controller.ReportController
	onboardingController  *controller.OnboardingController
	regenerateRateLimiter *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	householdController *controller.HouseholdController,
	insightController *controller.InsightController,
	reportController *controller.ReportController,
	onboardingController *controller.OnboardingController,
	regenerateRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		householdController:   householdController,
		insightController:     insightController,
		reportController:      reportController,
		onboardingController:  onboardingController,
		regenerateRateLimiter: regenerateRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Shared reports are public, the token is the credential
		if r.reportController != nil {
			v1.GET("/shared/reports/:token", r.reportController.Shared)
		}

		if r.authMiddleware == nil {
			return
		}

		if r.householdController != nil {
			household := v1.Group("/household")
			household.Use(r.authMiddleware.Authenticate())
			{
				household.GET("/snapshot", r.householdController.GetSnapshot)
			}
		}

		if r.insightController != nil {
			insights := v1.Group("/insights")
			insights.Use(r.authMiddleware.Authenticate())
			{
				insights.GET("", r.insightController.GetInsights)
			}
		}

		if r.reportController != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("", r.reportController.List)
				reports.GET("/current", r.reportController.Current)
				reports.POST("/ensure", r.reportController.Ensure)
				reports.GET("/:period", r.reportController.ByPeriod)

				regenerate := []gin.HandlerFunc{r.reportController.Regenerate}
				if r.regenerateRateLimiter != nil {
					regenerate = append([]gin.HandlerFunc{r.regenerateRateLimiter.Middleware()}, regenerate...)
				}
				reports.POST("/:period/regenerate", regenerate...)
			}
		}

		if r.onboardingController != nil {
			onboarding := v1.Group("/onboarding")
			onboarding.Use(r.authMiddleware.Authenticate())
			{
				onboarding.GET("/state", r.onboardingController.GetState)
				onboarding.PUT("/state", r.onboardingController.SaveState)
				onboarding.DELETE("/state", r.onboardingController.ClearState)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
