// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/application/usecase/cashflow"
	"github.com/finance-advisor/backend/internal/application/usecase/debtplan"
	"github.com/finance-advisor/backend/internal/application/usecase/household"
	"github.com/finance-advisor/backend/internal/application/usecase/retirement"
	"github.com/finance-advisor/backend/internal/application/usecase/scenario"
	"github.com/finance-advisor/backend/internal/infra/server/router"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/controller"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-advisor/backend/internal/integration/persistence"
	"github.com/finance-advisor/backend/internal/integration/persistence/model"
	"github.com/finance-advisor/backend/test/integration/mock"
)

// forecastAnchor pins the forecast clock. Feature files assert month labels
// relative to this date.
var forecastAnchor = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

type testContext struct {
	uri                string
	headers            map[string]string
	client             *http.Client
	response           *response
	db                 *mock.Db
	serverPort         int
	currentHouseholdID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db:         mock.NewDb(&model.HouseholdProfileModel{}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Household setup steps
	ctx.Given(`^a household profile exists with name "([^"]*)" and monthly income (\d+)$`, test.aHouseholdProfileExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.currentHouseholdID = uuid.Nil

	if t.db != nil {
		_ = t.db.Reset()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories and cache
			householdRepo := persistence.NewHouseholdRepository(testDB.Conn)
			snapshotCache := persistence.NewSnapshotCache(mock.NewRedis())

			// Create debt planning use cases
			simulateUseCase := debtplan.NewSimulateUseCase()
			compareUseCase := debtplan.NewCompareStrategiesUseCase(simulateUseCase)
			insightsUseCase := debtplan.NewInsightsUseCase(simulateUseCase)

			// Create cash-flow use cases
			forecastUseCase := cashflow.NewForecastUseCase(mock.NewClock(forecastAnchor))
			cashFlowScenarioUseCase := cashflow.NewRunScenarioUseCase(forecastUseCase)
			runwayUseCase := cashflow.NewRunwayUseCase()

			// Create retirement use cases
			projectUseCase := retirement.NewProjectUseCase()
			estimateBenefitUseCase := retirement.NewEstimateBenefitUseCase()

			// Create scenario use case
			evaluateUseCase := scenario.NewEvaluateUseCase()

			// Create household use cases
			getProfileUseCase := household.NewGetProfileUseCase(householdRepo, snapshotCache, 0)
			saveProfileUseCase := household.NewSaveProfileUseCase(householdRepo, snapshotCache)
			deleteProfileUseCase := household.NewDeleteProfileUseCase(householdRepo, snapshotCache)

			// Create controllers
			healthController := controller.NewHealthController(
				func() bool {
					return testDB != nil && testDB.Conn != nil
				},
				func() bool {
					return true
				},
			)

			debtPlanController := controller.NewDebtPlanController(
				simulateUseCase,
				compareUseCase,
				insightsUseCase,
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

			householdController := controller.NewHouseholdController(
				getProfileUseCase,
				saveProfileUseCase,
				deleteProfileUseCase,
			)

			// Create middleware
			planningRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)

			r := router.NewRouter(
				healthController,
				debtPlanController,
				cashFlowController,
				retirementController,
				scenarioController,
				householdController,
				planningRateLimiter,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}
