package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-advisor/backend/internal/application/usecase/debtplan"
	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
)

// DebtPlanController handles debt planning endpoints.
type DebtPlanController struct {
	simulateUseCase *debtplan.SimulateUseCase
	compareUseCase  *debtplan.CompareStrategiesUseCase
	insightsUseCase *debtplan.InsightsUseCase
}

// NewDebtPlanController creates a new debt plan controller instance.
func NewDebtPlanController(
	simulateUseCase *debtplan.SimulateUseCase,
	compareUseCase *debtplan.CompareStrategiesUseCase,
	insightsUseCase *debtplan.InsightsUseCase,
) *DebtPlanController {
	return &DebtPlanController{
		simulateUseCase: simulateUseCase,
		compareUseCase:  compareUseCase,
		insightsUseCase: insightsUseCase,
	}
}

// Handle handles POST /planning/debts requests, dispatching on the action field.
func (c *DebtPlanController) Handle(ctx *gin.Context) {
	var req dto.DebtPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	switch req.Action {
	case dto.DebtActionCalculate:
		c.calculate(ctx, req)
	case dto.DebtActionCompare:
		c.compare(ctx, req)
	case dto.DebtActionInsights:
		c.insights(ctx, req)
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("Unknown action %q", req.Action),
		})
	}
}

func (c *DebtPlanController) calculate(ctx *gin.Context, req dto.DebtPlanRequest) {
	output, err := c.simulateUseCase.Execute(ctx.Request.Context(), debtplan.SimulateInput{
		Debts:         req.ToDebtEntities(),
		MonthlyBudget: req.MonthlyBudget,
		Strategy:      entity.PayoffStrategy(req.Strategy),
	})
	if err != nil {
		c.handleDebtPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayoffPlanResponse(output.Plan))
}

func (c *DebtPlanController) compare(ctx *gin.Context, req dto.DebtPlanRequest) {
	output, err := c.compareUseCase.Execute(ctx.Request.Context(), debtplan.CompareInput{
		Debts:         req.ToDebtEntities(),
		MonthlyBudget: req.MonthlyBudget,
	})
	if err != nil {
		c.handleDebtPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompareStrategiesResponse(output))
}

func (c *DebtPlanController) insights(ctx *gin.Context, req dto.DebtPlanRequest) {
	strategy := entity.PayoffStrategy(req.Strategy)
	if req.Strategy == "" {
		strategy = entity.StrategyAvalanche
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), debtplan.InsightsInput{
		Debts:         req.ToDebtEntities(),
		MonthlyBudget: req.MonthlyBudget,
		Strategy:      strategy,
	})
	if err != nil {
		c.handleDebtPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtInsightsResponse(output))
}

// handleDebtPlanError maps domain errors to HTTP responses.
func (c *DebtPlanController) handleDebtPlanError(ctx *gin.Context, err error) {
	var insufficientErr *domainerror.InsufficientBudgetError
	if errors.As(err, &insufficientErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: insufficientErr.Error(),
			Code:  string(domainerror.ErrCodeInsufficientBudget),
			Details: fmt.Sprintf(
				"minimum_required=%.2f budget=%.2f",
				insufficientErr.MinimumRequired, insufficientErr.Budget,
			),
		})
		return
	}

	var planErr *domainerror.DebtPlanError
	if errors.As(err, &planErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to compute debt payoff plan",
	})
}
