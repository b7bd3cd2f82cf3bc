package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/app/services"
	"github.com/yigit/memberhub/internal/middleware"
)

// PostController handles post operations
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

func postInput(ctx *gin.Context) *dto.PostInput {
	in := &dto.PostInput{
		Title:      formValue(ctx, "title"),
		Content:    formValue(ctx, "content"),
		SuperEvent: formBool(ctx, "superEvent"),
	}
	if replace := formBool(ctx, "replaceFiles"); replace != nil {
		in.ReplaceFiles = *replace
	}
	return in
}

// CreatePost handles post creation
// @Summary Create a post
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param superEvent formData boolean false "Featured post"
// @Param files formData file false "Attachments"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse} "Post created"
// @Failure 400 {object} dto.APIResponse "Missing data or rejected file"
// @Router /post/create [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	post, err := c.postService.Create(ctx, middleware.CurrentMember(ctx), postInput(ctx), formFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post, "Post został utworzony"))
}

// EditPost handles post edits
// @Summary Edit a post
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Param title formData string false "Title"
// @Param content formData string false "Content"
// @Param superEvent formData boolean false "Featured post"
// @Param replaceFiles formData boolean false "Delete current attachments first"
// @Param files formData file false "Attachments"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post updated"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Post not found"
// @Router /post/{id}/edit [put]
func (c *PostController) EditPost(ctx *gin.Context) {
	id, ok := pathID(ctx, "Post")
	if !ok {
		return
	}

	post, err := c.postService.Edit(ctx, middleware.CurrentMember(ctx), id, postInput(ctx), formFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post, "Post został zaktualizowany"))
}

// SetVisibility publishes or hides a post
// @Summary Change post visibility
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Param request body dto.VisibilityRequest true "Visibility"
// @Success 200 {object} dto.APIResponse{data=dto.PostVisibilityResponse} "Visibility changed"
// @Failure 404 {object} dto.APIResponse "Post not found"
// @Router /admin/post/{id}/visibility [put]
func (c *PostController) SetVisibility(ctx *gin.Context) {
	id, ok := pathID(ctx, "Post")
	if !ok {
		return
	}
	var req dto.VisibilityRequest
	if !middleware.BindJSON(ctx, &req, "Brak wymaganych danych") {
		return
	}

	resp, err := c.postService.SetVisibility(ctx, middleware.CurrentMember(ctx), id, *req.Visible)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Widoczność posta została zmieniona"))
}

// ListVisible lists published posts
// @Summary List visible posts
// @Tags posts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse} "Posts"
// @Router /posts/visible [get]
func (c *PostController) ListVisible(ctx *gin.Context) {
	posts, err := c.postService.ListVisible(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts, "Lista postów"))
}

// ListAll lists every post for moderation
// @Summary List all posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse} "Posts"
// @Router /posts/all [get]
func (c *PostController) ListAll(ctx *gin.Context) {
	posts, err := c.postService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts, "Lista postów"))
}

// GetPost returns a post with its edit history
// @Summary Get a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post"
// @Failure 404 {object} dto.APIResponse "Post not found"
// @Router /post/{id} [get]
func (c *PostController) GetPost(ctx *gin.Context) {
	id, ok := pathID(ctx, "Post")
	if !ok {
		return
	}

	post, err := c.postService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post, "Post"))
}
