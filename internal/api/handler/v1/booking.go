package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/event-management-api/internal/domain"
)

type BookingService interface {
	CreateBooking(ctx context.Context, principal domain.Principal, eventID uint, requirements string) (domain.Booking, error)
	GetBookingForClient(ctx context.Context, principal domain.Principal, id uint) (domain.Booking, error)
	GetClientBookings(ctx context.Context, principal domain.Principal) ([]domain.Booking, error)
	GetAllBookings(ctx context.Context) ([]domain.Booking, error)
	GetBookingStatus(ctx context.Context, id uint) (domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uint, status string, notes *string) (domain.Booking, error)
}

type BookingHandler struct {
	svc BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{
		svc: svc,
	}
}

// HandleCreateBooking godoc
// @Summary      Book an event
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        request  body      request.BookingRequest true "request body"
// @Success      201      {object}  response.BookingResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /client/create-booking [post]
// @Security BearerAuth
func (h *BookingHandler) HandleCreateBooking(ctx *gin.Context) {
	principal, respErr := getPrincipal(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	booking, err := h.svc.CreateBooking(ctx.Request.Context(), principal, req.EventID, req.ClientRequirements)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateBooking -> h.svc.CreateBooking", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.BookingResponse{
		Success: true,
		Message: "Booking created successfully",
		Booking: booking,
	})
}

// HandleGetMyBookings godoc
// @Summary      List the caller's bookings
// @Tags         client
// @Produce      json
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  response.Err
// @Router       /client/my-bookings [get]
// @Security BearerAuth
func (h *BookingHandler) HandleGetMyBookings(ctx *gin.Context) {
	principal, respErr := getPrincipal(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	bookings, err := h.svc.GetClientBookings(ctx.Request.Context(), principal)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetMyBookings -> h.svc.GetClientBookings", err)
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// HandleGetMyBooking godoc
// @Summary      Get one of the caller's bookings
// @Tags         client
// @Produce      json
// @Param        bookingId  path      int  true  "booking id"
// @Success      200        {object}  domain.Booking
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Router       /client/my-booking/{bookingId} [get]
// @Security BearerAuth
func (h *BookingHandler) HandleGetMyBooking(ctx *gin.Context) {
	principal, respErr := getPrincipal(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	bookingID, respErr := paramID(ctx, "bookingId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	booking, err := h.svc.GetBookingForClient(ctx.Request.Context(), principal, bookingID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetMyBooking -> h.svc.GetBookingForClient", err)
		return
	}

	ctx.JSON(http.StatusOK, booking)
}

// HandleGetBookings godoc
// @Summary      List all bookings
// @Tags         planner
// @Produce      json
// @Success      200  {array}  domain.Booking
// @Router       /planner/bookings [get]
// @Security BearerAuth
func (h *BookingHandler) HandleGetBookings(ctx *gin.Context) {
	bookings, err := h.svc.GetAllBookings(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetBookings -> h.svc.GetAllBookings", err)
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// HandleGetBookingStatus godoc
// @Summary      Get the status of a booking
// @Tags         planner
// @Produce      json
// @Param        bookingId  path      int  true  "booking id"
// @Success      200        {object}  response.BookingStatusResponse
// @Failure      404        {object}  response.Err
// @Router       /planner/booking/{bookingId}/status [get]
// @Security BearerAuth
func (h *BookingHandler) HandleGetBookingStatus(ctx *gin.Context) {
	bookingID, respErr := paramID(ctx, "bookingId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	booking, err := h.svc.GetBookingStatus(ctx.Request.Context(), bookingID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetBookingStatus -> h.svc.GetBookingStatus", err)
		return
	}

	ctx.JSON(http.StatusOK, response.BookingStatusResponse{
		BookingID: booking.ID,
		Status:    booking.Status,
		Notes:     booking.Notes,
	})
}

// HandleUpdateBookingStatus godoc
// @Summary      Update the status of a booking
// @Description  Notes are replaced only when present in the body.
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        bookingId  path      int                          true  "booking id"
// @Param        request    body      request.BookingStatusRequest true  "request body"
// @Success      200        {object}  response.BookingResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Router       /planner/booking/{bookingId}/status [put]
// @Security BearerAuth
func (h *BookingHandler) HandleUpdateBookingStatus(ctx *gin.Context) {
	bookingID, respErr := paramID(ctx, "bookingId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.BookingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	booking, err := h.svc.UpdateBookingStatus(ctx.Request.Context(), bookingID, req.Status, req.Notes)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateBookingStatus -> h.svc.UpdateBookingStatus", err)
		return
	}

	ctx.JSON(http.StatusOK, response.BookingResponse{
		Success: true,
		Message: "Booking status updated successfully",
		Booking: booking,
	})
}
