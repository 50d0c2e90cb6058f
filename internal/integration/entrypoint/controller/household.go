package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/application/usecase/household"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
)

// HouseholdController handles household profile endpoints.
type HouseholdController struct {
	getProfileUseCase    *household.GetProfileUseCase
	saveProfileUseCase   *household.SaveProfileUseCase
	deleteProfileUseCase *household.DeleteProfileUseCase
}

// NewHouseholdController creates a new household controller instance.
func NewHouseholdController(
	getProfileUseCase *household.GetProfileUseCase,
	saveProfileUseCase *household.SaveProfileUseCase,
	deleteProfileUseCase *household.DeleteProfileUseCase,
) *HouseholdController {
	return &HouseholdController{
		getProfileUseCase:    getProfileUseCase,
		saveProfileUseCase:   saveProfileUseCase,
		deleteProfileUseCase: deleteProfileUseCase,
	}
}

// GetProfile handles GET /households/:id/profile requests.
func (c *HouseholdController) GetProfile(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid household ID",
		})
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), household.GetProfileInput{
		HouseholdID: id,
	})
	if err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHouseholdProfileResponse(output.Profile))
}

// SaveProfile handles PUT /households/:id/profile requests.
func (c *HouseholdController) SaveProfile(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid household ID",
		})
		return
	}

	var req dto.SaveProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	profile, err := req.ToEntity(id)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.saveProfileUseCase.Execute(ctx.Request.Context(), household.SaveProfileInput{
		Profile: profile,
	})
	if err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHouseholdProfileResponse(output.Profile))
}

// DeleteProfile handles DELETE /households/:id/profile requests.
func (c *HouseholdController) DeleteProfile(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid household ID",
		})
		return
	}

	if err := c.deleteProfileUseCase.Execute(ctx.Request.Context(), household.DeleteProfileInput{
		HouseholdID: id,
	}); err != nil {
		c.handleHouseholdError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleHouseholdError maps domain errors to HTTP responses.
func (c *HouseholdController) handleHouseholdError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrProfileNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Household profile not found",
			Code:  string(domainerror.ErrCodeProfileNotFound),
		})
	case errors.Is(err, domainerror.ErrInvalidProfile):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid household profile",
			Code:  string(domainerror.ErrCodeInvalidProfile),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process household profile",
		})
	}
}
