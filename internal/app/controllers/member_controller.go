package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/app/services"
	"github.com/yigit/memberhub/internal/middleware"
)

// MemberController handles signup, login and member administration
type MemberController struct {
	memberService services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService services.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// Register handles self-service signup
// @Summary Register a new member
// @Description Creates an inactive account and emails an activation code
// @Tags members
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Signup data"
// @Success 201 {object} dto.APIResponse "Account created"
// @Failure 400 {object} dto.APIResponse "Missing or invalid data"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /member/register [post]
func (c *MemberController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req, "Brak wymaganych danych") {
		return
	}

	if _, err := c.memberService.Register(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(nil, "Konto zostało utworzone. Sprawdź skrzynkę email, aby je aktywować"))
}

// Activate handles account activation
// @Summary Activate an account
// @Description Activates an account with the emailed activation code
// @Tags members
// @Accept json
// @Produce json
// @Param request body dto.ActivateRequest true "Email and activation code"
// @Success 200 {object} dto.APIResponse "Account activated"
// @Failure 400 {object} dto.APIResponse "Invalid activation code"
// @Router /member/activate [post]
func (c *MemberController) Activate(ctx *gin.Context) {
	var req dto.ActivateRequest
	if !middleware.BindJSON(ctx, &req, "Brak wymaganych danych") {
		return
	}

	if err := c.memberService.Activate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Konto zostało aktywowane"))
}

// CreateByAdmin creates an already active member
// @Summary Create a member
// @Description Admin creates an active member with role USER
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterRequest true "Member data"
// @Success 201 {object} dto.APIResponse "Member created"
// @Failure 400 {object} dto.APIResponse "Missing or invalid data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Router /admin/member/create [post]
func (c *MemberController) CreateByAdmin(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req, "Brak wymaganych danych") {
		return
	}

	member, err := c.memberService.CreateByAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.MemberSummary{
		ID:       member.ID,
		Email:    member.Email,
		FullName: member.FullName(),
		Role:     member.Role,
	}, "Użytkownik został utworzony"))
}

// Login authenticates a member
// @Summary Log in
// @Description Returns a bearer token and a member summary
// @Tags members
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Logged in"
// @Failure 400 {object} dto.APIResponse "Missing data"
// @Failure 401 {object} dto.APIResponse "Invalid credentials, inactive or deactivated account"
// @Router /member/login [post]
func (c *MemberController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req, "Brak wymaganych danych") {
		return
	}

	resp, err := c.memberService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Zalogowano pomyślnie"))
}

// DeactivateSelf deactivates the caller's own account
// @Summary Deactivate own account
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Account deactivated"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Staff cannot deactivate themselves"
// @Router /member/deactivate [post]
func (c *MemberController) DeactivateSelf(ctx *gin.Context) {
	if err := c.memberService.DeactivateSelf(ctx, middleware.CurrentMember(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Konto zostało dezaktywowane"))
}

// DeactivateByAdmin deactivates another member
// @Summary Deactivate a member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Member deactivated"
// @Failure 403 {object} dto.APIResponse "Cannot deactivate self or an admin"
// @Failure 404 {object} dto.APIResponse "Member not found"
// @Router /admin/member/{id}/deactivate [post]
func (c *MemberController) DeactivateByAdmin(ctx *gin.Context) {
	id, ok := pathID(ctx, "Member")
	if !ok {
		return
	}

	if err := c.memberService.DeactivateByAdmin(ctx, middleware.CurrentMember(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Konto użytkownika zostało dezaktywowane"))
}

// ChangeRole sets a member role
// @Summary Change member role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID" Format(int64) minimum(1)
// @Param request body dto.ChangeRoleRequest true "New role"
// @Success 200 {object} dto.APIResponse{data=dto.RoleResponse} "Role changed"
// @Failure 400 {object} dto.APIResponse "Invalid role"
// @Failure 404 {object} dto.APIResponse "Member not found"
// @Failure 409 {object} dto.APIResponse "Last admin cannot be demoted"
// @Router /admin/member/{id}/role [put]
func (c *MemberController) ChangeRole(ctx *gin.Context) {
	id, ok := pathID(ctx, "Member")
	if !ok {
		return
	}
	var req dto.ChangeRoleRequest
	if !middleware.BindJSON(ctx, &req, "Niepoprawna rola") {
		return
	}

	resp, err := c.memberService.ChangeRole(ctx, id, req.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Rola została zmieniona"))
}

// SetVisibility shows or hides a member on the public list
// @Summary Change member visibility
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID" Format(int64) minimum(1)
// @Param request body dto.MemberVisibilityRequest true "Visibility"
// @Success 200 {object} dto.APIResponse{data=dto.MemberVisibilityResponse} "Visibility changed"
// @Failure 404 {object} dto.APIResponse "Member not found"
// @Router /admin/member/{id}/visibility [put]
func (c *MemberController) SetVisibility(ctx *gin.Context) {
	id, ok := pathID(ctx, "Member")
	if !ok {
		return
	}
	var req dto.MemberVisibilityRequest
	if !middleware.BindJSON(ctx, &req, "Brak wymaganych danych") {
		return
	}

	resp, err := c.memberService.SetVisibility(ctx, id, *req.Visibility)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Widoczność została zmieniona"))
}

// AssignPosition sets a member's organizational position
// @Summary Assign position
// @Description Positions other than member and former are unique; chairman and deputy carry ADMIN
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID" Format(int64) minimum(1)
// @Param request body dto.PositionRequest true "Position"
// @Success 200 {object} dto.APIResponse{data=dto.PositionResponse} "Position assigned"
// @Failure 400 {object} dto.APIResponse "Invalid position"
// @Failure 404 {object} dto.APIResponse "Member not found"
// @Router /admin/member/{id}/position [put]
func (c *MemberController) AssignPosition(ctx *gin.Context) {
	id, ok := pathID(ctx, "Member")
	if !ok {
		return
	}
	var req dto.PositionRequest
	if !middleware.BindJSON(ctx, &req, "Nieprawidłowa pozycja") {
		return
	}

	resp, err := c.memberService.AssignPosition(ctx, id, req.Position)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Pozycja została przypisana"))
}

// UpdateProfilePicture replaces the caller's profile photo
// @Summary Upload profile picture
// @Tags members
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Success 200 {object} dto.APIResponse{data=dto.ProfilePictureResponse} "Picture updated"
// @Failure 400 {object} dto.APIResponse "Missing or invalid file"
// @Router /member/profile-picture [post]
func (c *MemberController) UpdateProfilePicture(ctx *gin.Context) {
	resp, err := c.memberService.UpdateProfilePicture(ctx, middleware.CurrentMember(ctx), formFile(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Zdjęcie profilowe zostało zaktualizowane"))
}

// ListVisible lists public members
// @Summary List visible members
// @Tags members
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.MemberResponse} "Members"
// @Router /members/visible [get]
func (c *MemberController) ListVisible(ctx *gin.Context) {
	members, err := c.memberService.ListVisible(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members, "Lista członków"))
}

// ListAll lists every member with private data
// @Summary List all members
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MemberResponse} "Members"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /members/all [get]
func (c *MemberController) ListAll(ctx *gin.Context) {
	members, err := c.memberService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members, "Lista członków"))
}
