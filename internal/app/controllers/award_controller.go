package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/middleware"
)

// AwardController handles award-related operations
type AwardController struct {
	awardService services.AwardService
}

// NewAwardController creates a new AwardController
func NewAwardController(awardService services.AwardService) *AwardController {
	return &AwardController{
		awardService: awardService,
	}
}

// GetAllAwards retrieves all awards
func (c *AwardController) GetAllAwards(ctx *gin.Context) {
	awards, err := c.awardService.GetAllAwards(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(awards, "Awards retrieved successfully"))
}

// GetAward retrieves an award by ID
func (c *AwardController) GetAward(ctx *gin.Context) {
	id, ok := middleware.ParseInt64Param(ctx, "id")
	if !ok {
		return
	}

	award, err := c.awardService.GetAwardByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(award, "Award retrieved successfully"))
}

// CreateAward handles award creation
func (c *AwardController) CreateAward(ctx *gin.Context) {
	var req dto.AwardRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	award, err := c.awardService.CreateAward(ctx.Request.Context(), req.ToModel(0))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(award, "Student's awards added successfully"))
}

// UpdateAward replaces an award
func (c *AwardController) UpdateAward(ctx *gin.Context) {
	id, ok := middleware.ParseInt64Param(ctx, "id")
	if !ok {
		return
	}

	var req dto.AwardRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	award, err := c.awardService.UpdateAward(ctx.Request.Context(), req.ToModel(id))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(award, "Student's awards updated successfully"))
}

// DeleteAward deletes an award
func (c *AwardController) DeleteAward(ctx *gin.Context) {
	id, ok := middleware.ParseInt64Param(ctx, "id")
	if !ok {
		return
	}

	if err := c.awardService.DeleteAward(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Student's awards deleted successfully"))
}
