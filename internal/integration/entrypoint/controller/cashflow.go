package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-advisor/backend/internal/application/usecase/cashflow"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
)

// CashFlowController handles cash-flow planning endpoints.
type CashFlowController struct {
	forecastUseCase *cashflow.ForecastUseCase
	scenarioUseCase *cashflow.RunScenarioUseCase
	runwayUseCase   *cashflow.RunwayUseCase
}

// NewCashFlowController creates a new cash-flow controller instance.
func NewCashFlowController(
	forecastUseCase *cashflow.ForecastUseCase,
	scenarioUseCase *cashflow.RunScenarioUseCase,
	runwayUseCase *cashflow.RunwayUseCase,
) *CashFlowController {
	return &CashFlowController{
		forecastUseCase: forecastUseCase,
		scenarioUseCase: scenarioUseCase,
		runwayUseCase:   runwayUseCase,
	}
}

// Handle handles POST /planning/cashflow requests, dispatching on the action field.
func (c *CashFlowController) Handle(ctx *gin.Context) {
	var req dto.CashFlowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	switch req.Action {
	case dto.CashFlowActionForecast:
		c.forecast(ctx, req)
	case dto.CashFlowActionScenario:
		c.scenario(ctx, req)
	case dto.CashFlowActionRunway:
		c.runway(ctx, req)
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("Unknown action %q", req.Action),
		})
	}
}

func (c *CashFlowController) forecast(ctx *gin.Context, req dto.CashFlowRequest) {
	snapshot, err := req.ToSnapshot()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.forecastUseCase.Execute(ctx.Request.Context(), cashflow.ForecastInput{
		Snapshot:       snapshot,
		ForecastMonths: req.ForecastMonths,
	})
	if err != nil {
		c.handleCashFlowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToForecastResponse(output))
}

func (c *CashFlowController) scenario(ctx *gin.Context, req dto.CashFlowRequest) {
	if req.Scenario == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing scenario block for scenario action",
		})
		return
	}

	snapshot, err := req.ToSnapshot()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	params, err := req.Scenario.ToScenarioParams()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.scenarioUseCase.Execute(ctx.Request.Context(), cashflow.RunScenarioInput{
		Snapshot:       snapshot,
		ForecastMonths: req.ForecastMonths,
		Type:           cashflow.CashFlowScenarioType(req.Scenario.Type),
		Params:         params,
	})
	if err != nil {
		c.handleCashFlowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashFlowScenarioResponse(output))
}

func (c *CashFlowController) runway(ctx *gin.Context, req dto.CashFlowRequest) {
	if req.Runway == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing runway block for runway action",
		})
		return
	}

	output, err := c.runwayUseCase.Execute(ctx.Request.Context(), cashflow.RunwayInput{
		CurrentBalance:     req.Runway.CurrentBalance,
		MonthlyIncome:      req.MonthlyIncome,
		AvgMonthlyExpenses: req.Runway.AvgMonthlyExpenses,
	})
	if err != nil {
		c.handleCashFlowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRunwayResponse(output))
}

// handleCashFlowError maps domain errors to HTTP responses.
func (c *CashFlowController) handleCashFlowError(ctx *gin.Context, err error) {
	var cashErr *domainerror.CashFlowError
	if errors.As(err, &cashErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: cashErr.Message,
			Code:  string(cashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to compute cash flow forecast",
	})
}
