package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/app/services"
	"github.com/yigit/memberhub/internal/middleware"
)

// ProjectController handles project operations
type ProjectController struct {
	projectService services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

func projectInput(ctx *gin.Context) *dto.ProjectInput {
	return &dto.ProjectInput{
		Name:          formValue(ctx, "name"),
		Description:   formValue(ctx, "description"),
		Participants:  formValue(ctx, "participants"),
		Technologies:  formValue(ctx, "technologies"),
		TechnologyIDs: formValue(ctx, "technologyIds"),
		StartDate:     formValue(ctx, "startDate"),
		EndDate:       formValue(ctx, "endDate"),
		ProjectLink:   formValue(ctx, "projectLink"),
		RepoLink:      formValue(ctx, "repoLink"),
		Future:        formBool(ctx, "future"),
	}
}

// CreateProject handles project creation
// @Summary Create a project
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param description formData string true "Description"
// @Param participants formData string false "JSON array of names"
// @Param technologies formData string false "JSON array of technology names"
// @Param technologyIds formData string false "JSON array of technology IDs"
// @Param startDate formData string false "Start date" example(2024-01-15)
// @Param endDate formData string false "End date" example(2024-06-30)
// @Param projectLink formData string false "Project URL"
// @Param repoLink formData string false "Repository URL"
// @Param future formData boolean false "Planned project"
// @Param file formData file false "Project photo"
// @Success 201 {object} dto.APIResponse{data=dto.ProjectResponse} "Project created"
// @Failure 400 {object} dto.APIResponse "Missing data, bad date or rejected file"
// @Router /project/create [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	project, err := c.projectService.Create(ctx, middleware.CurrentMember(ctx), projectInput(ctx), formFile(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(project, "Projekt został utworzony"))
}

// EditProject handles project edits by staff
// @Summary Edit a project
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID" Format(int64) minimum(1)
// @Param name formData string false "Name"
// @Param description formData string false "Description"
// @Param participants formData string false "JSON array of names"
// @Param technologies formData string false "JSON array of technology names"
// @Param technologyIds formData string false "JSON array of technology IDs"
// @Param startDate formData string false "Start date"
// @Param endDate formData string false "End date"
// @Param projectLink formData string false "Project URL, empty clears"
// @Param repoLink formData string false "Repository URL, empty clears"
// @Param future formData boolean false "Planned project"
// @Param file formData file false "Replacement photo"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectResponse} "Project updated"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Router /project/{id}/edit [put]
func (c *ProjectController) EditProject(ctx *gin.Context) {
	id, ok := pathID(ctx, "Project")
	if !ok {
		return
	}

	project, err := c.projectService.Edit(ctx, middleware.CurrentMember(ctx), id, projectInput(ctx), formFile(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project, "Projekt został zaktualizowany"))
}

// SetVisibility publishes or hides a project
// @Summary Change project visibility
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID" Format(int64) minimum(1)
// @Param request body dto.VisibilityRequest true "Visibility"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectVisibilityResponse} "Visibility changed"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Router /admin/project/{id}/visibility [put]
func (c *ProjectController) SetVisibility(ctx *gin.Context) {
	id, ok := pathID(ctx, "Project")
	if !ok {
		return
	}
	var req dto.VisibilityRequest
	if !middleware.BindJSON(ctx, &req, "Brak wymaganych danych") {
		return
	}

	resp, err := c.projectService.SetVisibility(ctx, middleware.CurrentMember(ctx), id, *req.Visible)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Widoczność projektu została zmieniona"))
}

// ListVisible lists published projects
// @Summary List visible projects
// @Tags projects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ProjectResponse} "Projects"
// @Router /projects/visible [get]
func (c *ProjectController) ListVisible(ctx *gin.Context) {
	projects, err := c.projectService.ListVisible(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(projects, "Lista projektów"))
}

// ListAll lists every project for moderation
// @Summary List all projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ProjectResponse} "Projects"
// @Router /projects/all [get]
func (c *ProjectController) ListAll(ctx *gin.Context) {
	projects, err := c.projectService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(projects, "Lista projektów"))
}

// GetProject returns a project with its technologies
// @Summary Get a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ProjectResponse} "Project"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Router /project/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	id, ok := pathID(ctx, "Project")
	if !ok {
		return
	}

	project, err := c.projectService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project, "Projekt"))
}
