// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-advisor/backend/internal/integration/entrypoint/controller"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	debtPlanController   *controller.DebtPlanController
	cashFlowController   *controller.CashFlowController
	retirementController *controller.RetirementController
	scenarioController   *controller.ScenarioController
	householdController  *controller.HouseholdController
	planningRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	debtPlanController *controller.DebtPlanController,
	cashFlowController *controller.CashFlowController,
	retirementController *controller.RetirementController,
	scenarioController *controller.ScenarioController,
	householdController *controller.HouseholdController,
	planningRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:     healthController,
		debtPlanController:   debtPlanController,
		cashFlowController:   cashFlowController,
		retirementController: retirementController,
		scenarioController:   scenarioController,
		householdController:  householdController,
		planningRateLimiter:  planningRateLimiter,
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
		// Planning routes. All calculators are stateless POST endpoints
		// dispatching on an action discriminator in the body.
		planning := v1.Group("/planning")
		if r.planningRateLimiter != nil {
			planning.Use(r.planningRateLimiter.Middleware())
		}
		{
			if r.debtPlanController != nil {
				planning.POST("/debts", r.debtPlanController.Handle)
			}
			if r.cashFlowController != nil {
				planning.POST("/cashflow", r.cashFlowController.Handle)
			}
			if r.retirementController != nil {
				planning.POST("/retirement", r.retirementController.Handle)
			}
			if r.scenarioController != nil {
				planning.POST("/scenarios", r.scenarioController.Handle)
			}
		}

		// Household profile routes
		if r.householdController != nil {
			households := v1.Group("/households")
			{
				households.GET("/:id/profile", r.householdController.GetProfile)
				households.PUT("/:id/profile", r.householdController.SaveProfile)
				households.DELETE("/:id/profile", r.householdController.DeleteProfile)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
