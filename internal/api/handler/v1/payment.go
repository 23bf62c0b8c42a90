package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/event-management-api/internal/domain"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, principal domain.Principal, amount int64) (domain.PaymentOrder, error)
	VerifyAndCreateBooking(ctx context.Context, principal domain.Principal, c domain.PaymentConfirmation) (domain.Payment, domain.Booking, error)
	GetPaymentStatus(ctx context.Context, gatewayPaymentID string) (domain.Payment, error)
	GetPaymentByBooking(ctx context.Context, bookingID uint) (domain.Payment, error)
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleCreateOrder godoc
// @Summary      Open a payment order with the gateway
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentOrderRequest true "request body"
// @Success      200      {object}  domain.PaymentOrder
// @Failure      400      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /payment/create-order [post]
// @Security BearerAuth
func (h *PaymentHandler) HandleCreateOrder(ctx *gin.Context) {
	principal, respErr := getPrincipal(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PaymentOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	order, err := h.svc.CreateOrder(ctx.Request.Context(), principal, req.Amount)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateOrder -> h.svc.CreateOrder", err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// HandleVerifyPayment godoc
// @Summary      Verify a gateway payment and create the booking
// @Description  A bad signature marks the payment FAILED and creates nothing.
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentVerifyRequest true "request body"
// @Success      200      {object}  response.PaymentVerifyResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /payment/verify [post]
// @Security BearerAuth
func (h *PaymentHandler) HandleVerifyPayment(ctx *gin.Context) {
	principal, respErr := getPrincipal(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr.WithStatus(domain.PaymentFailed))
		return
	}

	var req request.PaymentVerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err).WithStatus(domain.PaymentFailed))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err).WithStatus(domain.PaymentFailed))
		return
	}

	payment, booking, err := h.svc.VerifyAndCreateBooking(ctx.Request.Context(), principal, req.ToDomain())
	if err != nil {
		respErr := mapServiceErr("v1.HandleVerifyPayment -> h.svc.VerifyAndCreateBooking", err)
		response.RenderErr(ctx, respErr.WithStatus(domain.PaymentFailed))
		return
	}

	ctx.JSON(http.StatusOK, response.PaymentVerifyResponse{
		Message:   "Payment verified and booking created successfully",
		BookingID: booking.ID,
		PaymentID: payment.ID,
		Status:    payment.Status,
	})
}

// HandleGetPaymentStatus godoc
// @Summary      Look up a payment by gateway payment id
// @Tags         payment
// @Produce      json
// @Param        paymentId  path      string  true  "gateway payment id"
// @Success      200        {object}  response.PaymentResponse
// @Failure      404        {object}  response.Err
// @Router       /payment/status/{paymentId} [get]
// @Security BearerAuth
func (h *PaymentHandler) HandleGetPaymentStatus(ctx *gin.Context) {
	payment, err := h.svc.GetPaymentStatus(ctx.Request.Context(), ctx.Param("paymentId"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetPaymentStatus -> h.svc.GetPaymentStatus", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewPaymentResponse(payment))
}

// HandleGetBookingPayment godoc
// @Summary      Look up the payment behind a booking
// @Tags         payment
// @Produce      json
// @Param        bookingId  path      int  true  "booking id"
// @Success      200        {object}  response.PaymentResponse
// @Failure      404        {object}  response.Err
// @Router       /payment/booking/{bookingId} [get]
// @Security BearerAuth
func (h *PaymentHandler) HandleGetBookingPayment(ctx *gin.Context) {
	bookingID, respErr := paramID(ctx, "bookingId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	payment, err := h.svc.GetPaymentByBooking(ctx.Request.Context(), bookingID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetBookingPayment -> h.svc.GetPaymentByBooking", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewPaymentResponse(payment))
}
