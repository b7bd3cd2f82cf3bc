package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/app/services"
	"github.com/yigit/memberhub/internal/middleware"
)

// FileController handles general files, technology icons and downloads
type FileController struct {
	fileService services.FileService
}

// NewFileController creates a new FileController
func NewFileController(fileService services.FileService) *FileController {
	return &FileController{
		fileService: fileService,
	}
}

// UploadGeneral stores a general file
// @Summary Upload a general file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File"
// @Param permissions formData string false "public, members_only, moderators_only or admins_only" default(members_only)
// @Success 201 {object} dto.APIResponse{data=dto.FileResponse} "File stored"
// @Failure 400 {object} dto.APIResponse "Missing or rejected file"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /file/general [post]
func (c *FileController) UploadGeneral(ctx *gin.Context) {
	file, err := c.fileService.UploadGeneral(ctx, middleware.CurrentMember(ctx), formFile(ctx), ctx.PostForm("permissions"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(file, "Plik został przesłany"))
}

// UploadTechnologyIcon replaces a technology icon
// @Summary Upload technology icon
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Technology ID" Format(int64) minimum(1)
// @Param file formData file true "Icon image"
// @Success 200 {object} dto.APIResponse{data=dto.TechnologyIconResponse} "Icon updated"
// @Failure 400 {object} dto.APIResponse "Missing or rejected file"
// @Failure 404 {object} dto.APIResponse "Technology not found"
// @Router /file/technology/{id}/icon [post]
func (c *FileController) UploadTechnologyIcon(ctx *gin.Context) {
	id, ok := pathID(ctx, "Technology")
	if !ok {
		return
	}

	resp, err := c.fileService.UploadTechnologyIcon(ctx, middleware.CurrentMember(ctx), id, formFile(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Ikona została zaktualizowana"))
}

// ListGeneral lists the general files the caller may open
// @Summary List general files
// @Tags files
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.FileResponse} "Files"
// @Router /files/general [get]
func (c *FileController) ListGeneral(ctx *gin.Context) {
	files, err := c.fileService.ListGeneral(ctx, middleware.CurrentMember(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(files, "Lista plików"))
}

// Download streams a file as an attachment
// @Summary Download a file
// @Description Anonymous callers may fetch public files only
// @Tags files
// @Produce octet-stream
// @Param id path int true "File ID" Format(int64) minimum(1)
// @Success 200 {file} binary "File content"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "File not found"
// @Router /file/{id}/download [get]
func (c *FileController) Download(ctx *gin.Context) {
	id, ok := pathID(ctx, "File")
	if !ok {
		return
	}

	file, err := c.fileService.Download(ctx, middleware.CurrentMember(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Type", file.MimeType)
	ctx.FileAttachment(file.Path, file.OriginalName)
}

// DeleteFile removes a general file
// @Summary Delete a general file
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param id path int true "File ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "File deleted"
// @Failure 400 {object} dto.APIResponse "Not a general file"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "File not found"
// @Router /file/{id} [delete]
func (c *FileController) DeleteFile(ctx *gin.Context) {
	id, ok := pathID(ctx, "File")
	if !ok {
		return
	}

	if err := c.fileService.Delete(ctx, middleware.CurrentMember(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Plik został usunięty"))
}
