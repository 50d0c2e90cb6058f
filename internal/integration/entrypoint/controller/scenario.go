package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-advisor/backend/internal/application/usecase/scenario"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
)

// ScenarioController handles what-if scenario endpoints.
type ScenarioController struct {
	evaluateUseCase *scenario.EvaluateUseCase
}

// NewScenarioController creates a new scenario controller instance.
func NewScenarioController(evaluateUseCase *scenario.EvaluateUseCase) *ScenarioController {
	return &ScenarioController{evaluateUseCase: evaluateUseCase}
}

// Handle handles POST /planning/scenarios requests.
func (c *ScenarioController) Handle(ctx *gin.Context) {
	var req dto.ScenarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.evaluateUseCase.Execute(ctx.Request.Context(), req.ToEvaluateInput())
	if err != nil {
		c.handleScenarioError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScenarioResultResponse(output.Result))
}

// handleScenarioError maps domain errors to HTTP responses.
func (c *ScenarioController) handleScenarioError(ctx *gin.Context, err error) {
	var scnErr *domainerror.ScenarioError
	if errors.As(err, &scnErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: scnErr.Message,
			Code:  string(scnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to evaluate scenario",
	})
}
