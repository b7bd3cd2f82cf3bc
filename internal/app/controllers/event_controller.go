package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/app/services"
	"github.com/yigit/memberhub/internal/middleware"
)

// EventController handles event operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

func eventInput(ctx *gin.Context) *dto.EventInput {
	in := &dto.EventInput{
		Title:       formValue(ctx, "title"),
		Content:     formValue(ctx, "content"),
		Description: formValue(ctx, "description"),
		EventDate:   formValue(ctx, "eventDate"),
	}
	if replace := formBool(ctx, "replaceFiles"); replace != nil {
		in.ReplaceFiles = *replace
	}
	return in
}

// CreateEvent handles event creation
// @Summary Create an event
// @Description Creates a hidden event awaiting admin review
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param description formData string false "Short description"
// @Param eventDate formData string true "Event date" example(2024-03-01 18:00:00)
// @Param files formData file false "Photos"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created"
// @Failure 400 {object} dto.APIResponse "Missing data, bad date or rejected file"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /event/create [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	event, err := c.eventService.Create(ctx, middleware.CurrentMember(ctx), eventInput(ctx), formFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event, "Wydarzenie zostało utworzone"))
}

// EditEvent handles event edits
// @Summary Edit an event
// @Description Authors edit their own events while they are hidden; moderators and admins edit any event. Non-admin edits hide the event.
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Param title formData string false "Title"
// @Param content formData string false "Content"
// @Param description formData string false "Short description"
// @Param eventDate formData string false "Event date"
// @Param replaceFiles formData boolean false "Delete current photos first"
// @Param files formData file false "Photos"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event updated"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /event/{id}/edit [put]
func (c *EventController) EditEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "Event")
	if !ok {
		return
	}

	event, err := c.eventService.Edit(ctx, middleware.CurrentMember(ctx), id, eventInput(ctx), formFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event, "Wydarzenie zostało zaktualizowane"))
}

// SetVisibility publishes or hides an event
// @Summary Change event visibility
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Param request body dto.VisibilityRequest true "Visibility"
// @Success 200 {object} dto.APIResponse{data=dto.EventVisibilityResponse} "Visibility changed"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /admin/event/{id}/visibility [put]
func (c *EventController) SetVisibility(ctx *gin.Context) {
	id, ok := pathID(ctx, "Event")
	if !ok {
		return
	}
	var req dto.VisibilityRequest
	if !middleware.BindJSON(ctx, &req, "Brak wymaganych danych") {
		return
	}

	resp, err := c.eventService.SetVisibility(ctx, middleware.CurrentMember(ctx), id, *req.Visible)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Widoczność wydarzenia została zmieniona"))
}

// ListVisible lists published events, soonest first
// @Summary List visible events
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse} "Events"
// @Router /events/visible [get]
func (c *EventController) ListVisible(ctx *gin.Context) {
	events, err := c.eventService.ListVisible(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events, "Lista wydarzeń"))
}

// ListAll lists every event for moderation, newest first
// @Summary List all events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse} "Events"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /events/all [get]
func (c *EventController) ListAll(ctx *gin.Context) {
	events, err := c.eventService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events, "Lista wydarzeń"))
}

// GetByPath returns a published event by its path
// @Summary Get event by path
// @Tags events
// @Produce json
// @Param eventPath path string true "Event path"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /event/{eventPath} [get]
func (c *EventController) GetByPath(ctx *gin.Context) {
	event, err := c.eventService.GetByPath(ctx, ctx.Param("eventPath"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event, "Wydarzenie"))
}
