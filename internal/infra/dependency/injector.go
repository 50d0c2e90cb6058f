// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-advisor/backend/config"
	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/application/usecase/cashflow"
	"github.com/finance-advisor/backend/internal/application/usecase/debtplan"
	"github.com/finance-advisor/backend/internal/application/usecase/household"
	"github.com/finance-advisor/backend/internal/application/usecase/retirement"
	"github.com/finance-advisor/backend/internal/application/usecase/scenario"
	"github.com/finance-advisor/backend/internal/infra/server/router"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/controller"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-advisor/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The database may be nil; the calculators are stateless and still serve, only
// the household profile routes are skipped. The redis client may also be nil;
// the profile cache is then bypassed.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories and cache
	var householdRepo adapter.HouseholdRepository
	if db != nil {
		householdRepo = persistence.NewHouseholdRepository(db)
	}
	var snapshotCache adapter.SnapshotCache
	if redisClient != nil {
		snapshotCache = persistence.NewSnapshotCache(redisClient)
	}

	// Create debt planning use cases
	simulateUseCase := debtplan.NewSimulateUseCase()
	compareUseCase := debtplan.NewCompareStrategiesUseCase(simulateUseCase)
	debtInsightsUseCase := debtplan.NewInsightsUseCase(simulateUseCase)

	// Create cash-flow use cases
	forecastUseCase := cashflow.NewForecastUseCase(adapter.SystemClock{})
	cashFlowScenarioUseCase := cashflow.NewRunScenarioUseCase(forecastUseCase)
	runwayUseCase := cashflow.NewRunwayUseCase()

	// Create retirement use cases
	projectUseCase := retirement.NewProjectUseCase()
	estimateBenefitUseCase := retirement.NewEstimateBenefitUseCase()

	// Create scenario use case
	evaluateUseCase := scenario.NewEvaluateUseCase()

	// Create household use cases
	var householdController *controller.HouseholdController
	if householdRepo != nil {
		getProfileUseCase := household.NewGetProfileUseCase(householdRepo, snapshotCache, cfg.Cache.ProfileTTL)
		saveProfileUseCase := household.NewSaveProfileUseCase(householdRepo, snapshotCache)
		deleteProfileUseCase := household.NewDeleteProfileUseCase(householdRepo, snapshotCache)
		householdController = controller.NewHouseholdController(getProfileUseCase, saveProfileUseCase, deleteProfileUseCase)
	}

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			if db == nil {
				return false
			}
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	debtPlanController := controller.NewDebtPlanController(
		simulateUseCase,
		compareUseCase,
		debtInsightsUseCase,
	)

	cashFlowController := controller.NewCashFlowController(
		forecastUseCase,
		cashFlowScenarioUseCase,
		runwayUseCase,
	)

	retirementController := controller.NewRetirementController(
		projectUseCase,
		estimateBenefitUseCase,
	)

	scenarioController := controller.NewScenarioController(evaluateUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var planningRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		planningRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		planningRateLimiter = middleware.NewRateLimiterWithConfig(60, 1*time.Minute)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		debtPlanController,
		cashFlowController,
		retirementController,
		scenarioController,
		householdController,
		planningRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
