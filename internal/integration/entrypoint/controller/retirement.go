package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-advisor/backend/internal/application/usecase/retirement"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
)

// RetirementController handles retirement planning endpoints.
type RetirementController struct {
	projectUseCase  *retirement.ProjectUseCase
	estimateUseCase *retirement.EstimateBenefitUseCase
}

// NewRetirementController creates a new retirement controller instance.
func NewRetirementController(
	projectUseCase *retirement.ProjectUseCase,
	estimateUseCase *retirement.EstimateBenefitUseCase,
) *RetirementController {
	return &RetirementController{
		projectUseCase:  projectUseCase,
		estimateUseCase: estimateUseCase,
	}
}

// Handle handles POST /planning/retirement requests, dispatching on the action field.
func (c *RetirementController) Handle(ctx *gin.Context) {
	var req dto.RetirementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	switch req.Action {
	case dto.RetirementActionCalculate:
		c.calculate(ctx, req)
	case dto.RetirementActionEstimateSS:
		c.estimate(ctx, req)
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("Unknown action %q", req.Action),
		})
	}
}

func (c *RetirementController) calculate(ctx *gin.Context, req dto.RetirementRequest) {
	output, err := c.projectUseCase.Execute(ctx.Request.Context(), retirement.ProjectInput{
		Profile: req.ToProfile(),
	})
	if err != nil {
		c.handleRetirementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRetirementPlanResponse(output.Plan))
}

func (c *RetirementController) estimate(ctx *gin.Context, req dto.RetirementRequest) {
	output, err := c.estimateUseCase.Execute(ctx.Request.Context(), retirement.EstimateBenefitInput{
		AnnualIncome: req.AnnualIncome,
		ClaimAge:     req.ClaimAge,
	})
	if err != nil {
		c.handleRetirementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBenefitEstimateResponse(output))
}

// handleRetirementError maps domain errors to HTTP responses.
func (c *RetirementController) handleRetirementError(ctx *gin.Context, err error) {
	var retErr *domainerror.RetirementError
	if errors.As(err, &retErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: retErr.Message,
			Code:  string(retErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to compute retirement projection",
	})
}
