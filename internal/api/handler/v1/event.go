package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/event-management-api/internal/domain"
)

type EventService interface {
	CreateEvent(ctx context.Context, principal domain.Principal, event domain.Event) (domain.Event, error)
	GetEvents(ctx context.Context) ([]domain.Event, error)
	GetEventByID(ctx context.Context, id uint) (domain.Event, error)
	SearchEventsByTitle(ctx context.Context, title string) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, id uint, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	AssignStaff(ctx context.Context, eventID, staffID uint) (domain.Event, error)
	GetAllStaff(ctx context.Context) ([]domain.User, error)
	GetEventsForStaff(ctx context.Context, principal domain.Principal) ([]domain.Event, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        request  body      request.EventRequest true "request body"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /planner/event [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	principal, respErr := getPrincipal(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), principal, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateEvent -> h.svc.CreateEvent", err)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleGetEvents godoc
// @Summary      List all events
// @Tags         planner, client
// @Produce      json
// @Success      200  {array}   domain.Event
// @Router       /planner/events [get]
// @Router       /client/allEvents [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	events, err := h.svc.GetEvents(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetEvents -> h.svc.GetEvents", err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event by id
// @Tags         planner, staff, client
// @Produce      json
// @Param        eventId  path      int  true  "event id"
// @Success      200      {object}  domain.Event
// @Failure      404      {object}  response.Err
// @Router       /planner/event-details/{eventId} [get]
// @Router       /staff/event-details/{eventId} [get]
// @Router       /client/booking-details/{eventId} [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, respErr := paramID(ctx, "eventId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.GetEventByID(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetEvent -> h.svc.GetEventByID", err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleSearchEvents godoc
// @Summary      Search events by title
// @Description  Case-insensitive substring match.
// @Tags         planner, staff, client
// @Produce      json
// @Param        title  path      string  true  "title fragment"
// @Success      200    {array}   domain.Event
// @Router       /planner/event-detail/{title} [get]
// @Router       /staff/event-detailsbyTitle/{title} [get]
// @Router       /client/event-detailsbyTitleforClient/{title} [get]
// @Security BearerAuth
func (h *EventHandler) HandleSearchEvents(ctx *gin.Context) {
	events, err := h.svc.SearchEventsByTitle(ctx.Request.Context(), ctx.Param("title"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSearchEvents -> h.svc.SearchEventsByTitle", err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         planner, staff
// @Accept       json
// @Produce      json
// @Param        eventId  path      int                   true  "event id"
// @Param        request  body      request.EventRequest  true  "request body"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /planner/event/{eventId} [put]
// @Router       /staff/update-setup/{eventId} [put]
// @Security BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	eventID, respErr := paramID(ctx, "eventId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), eventID, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateEvent -> h.svc.UpdateEvent", err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Description  Events with bookings cannot be deleted. Allocated resources become available again.
// @Tags         planner
// @Param        eventId  path  int  true  "event id"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /planner/event/{eventId} [delete]
// @Security BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	eventID, respErr := paramID(ctx, "eventId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), eventID); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteEvent -> h.svc.DeleteEvent", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAssignStaff godoc
// @Summary      Assign a staff member to an event
// @Tags         planner
// @Produce      json
// @Param        eventId  query     int  true  "event id"
// @Param        staffId  query     int  true  "staff user id"
// @Success      200      {object}  response.EventResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /planner/assign-staff [post]
// @Security BearerAuth
func (h *EventHandler) HandleAssignStaff(ctx *gin.Context) {
	eventID, respErr := queryID(ctx, "eventId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	staffID, respErr := queryID(ctx, "staffId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.AssignStaff(ctx.Request.Context(), eventID, staffID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleAssignStaff -> h.svc.AssignStaff", err)
		return
	}

	ctx.JSON(http.StatusOK, response.EventResponse{
		Success: true,
		Message: "Staff assigned successfully",
		Event:   event,
	})
}

// HandleGetStaff godoc
// @Summary      List staff members
// @Tags         planner
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /planner/staff [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetStaff(ctx *gin.Context) {
	staff, err := h.svc.GetAllStaff(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetStaff -> h.svc.GetAllStaff", err)
		return
	}

	ctx.JSON(http.StatusOK, staff)
}

// HandleGetAssignedEvents godoc
// @Summary      List events assigned to the calling staff member
// @Tags         staff
// @Produce      json
// @Success      200  {array}  domain.Event
// @Failure      401  {object} response.Err
// @Router       /staff/allEvents [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetAssignedEvents(ctx *gin.Context) {
	principal, respErr := getPrincipal(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	events, err := h.svc.GetEventsForStaff(ctx.Request.Context(), principal)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetAssignedEvents -> h.svc.GetEventsForStaff", err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}
