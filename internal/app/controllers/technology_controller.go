package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/app/services"
	"github.com/yigit/memberhub/internal/middleware"
)

// TechnologyController handles the technology catalog
type TechnologyController struct {
	technologyService services.TechnologyService
}

// NewTechnologyController creates a new TechnologyController
func NewTechnologyController(technologyService services.TechnologyService) *TechnologyController {
	return &TechnologyController{
		technologyService: technologyService,
	}
}

// CreateTechnology handles technology creation
// @Summary Create a technology
// @Tags technologies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TechnologyRequest true "Technology"
// @Success 201 {object} dto.APIResponse{data=dto.TechnologyResponse} "Technology created"
// @Failure 400 {object} dto.APIResponse "Missing name"
// @Failure 409 {object} dto.APIResponse "Name already used"
// @Router /technology/create [post]
func (c *TechnologyController) CreateTechnology(ctx *gin.Context) {
	var req dto.TechnologyRequest
	if !middleware.BindJSON(ctx, &req, "Nieprawidłowe dane technologii") {
		return
	}

	tech, err := c.technologyService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(tech, "Technologia została utworzona"))
}

// UpdateTechnology handles technology edits
// @Summary Edit a technology
// @Tags technologies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Technology ID" Format(int64) minimum(1)
// @Param request body dto.TechnologyRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=dto.TechnologyResponse} "Technology updated"
// @Failure 404 {object} dto.APIResponse "Technology not found"
// @Failure 409 {object} dto.APIResponse "Name already used"
// @Router /technology/{id}/edit [put]
func (c *TechnologyController) UpdateTechnology(ctx *gin.Context) {
	id, ok := pathID(ctx, "Technology")
	if !ok {
		return
	}
	var req dto.TechnologyRequest
	if !middleware.BindJSON(ctx, &req, "Nieprawidłowe dane technologii") {
		return
	}

	tech, err := c.technologyService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tech, "Technologia została zaktualizowana"))
}

// DeleteTechnology removes an unused technology
// @Summary Delete a technology
// @Tags technologies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Technology ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Technology deleted"
// @Failure 404 {object} dto.APIResponse "Technology not found"
// @Failure 409 {object} dto.APIResponse "Technology used by projects"
// @Router /technology/{id} [delete]
func (c *TechnologyController) DeleteTechnology(ctx *gin.Context) {
	id, ok := pathID(ctx, "Technology")
	if !ok {
		return
	}

	if err := c.technologyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Technologia została usunięta"))
}

// ListTechnologies lists the catalog by name
// @Summary List technologies
// @Tags technologies
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TechnologyResponse} "Technologies"
// @Router /technologies [get]
func (c *TechnologyController) ListTechnologies(ctx *gin.Context) {
	techs, err := c.technologyService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(techs, "Lista technologii"))
}

// GetTechnology returns a technology with the projects using it
// @Summary Get a technology
// @Tags technologies
// @Produce json
// @Param id path int true "Technology ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.TechnologyResponse} "Technology"
// @Failure 404 {object} dto.APIResponse "Technology not found"
// @Router /technology/{id} [get]
func (c *TechnologyController) GetTechnology(ctx *gin.Context) {
	id, ok := pathID(ctx, "Technology")
	if !ok {
		return
	}

	tech, err := c.technologyService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tech, "Technologia"))
}
