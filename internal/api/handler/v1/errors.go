package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/event-management-api/internal/api/middleware"
	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/service"
)

var (
	errNoPrincipal = errors.New("no authenticated user in request")

	notFoundErrs = []error{
		service.ErrUserNotFound,
		service.ErrEventNotFound,
		service.ErrResourceNotFound,
		service.ErrBookingNotFound,
		service.ErrPaymentNotFound,
	}
	badRequestErrs = []error{
		service.ErrUsernameExists,
		service.ErrInvalidRole,
		service.ErrCurrentPasswordRequired,
		service.ErrWrongCurrentPassword,
		service.ErrNotStaff,
		service.ErrEventHasBookings,
		service.ErrResourceUnavailable,
		service.ErrInvalidQuantity,
		service.ErrEmptyBookingStatus,
		service.ErrEmptyMessage,
		service.ErrMessageTooLong,
		service.ErrInvalidAmount,
		service.ErrInvalidSignature,
		service.ErrPaymentNotPending,
		service.ErrPaymentDuplicate,
	}
)

// mapServiceErr converts a service error to its HTTP envelope. op names the
// failing call for the server log.
func mapServiceErr(op string, err error) *response.Err {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return response.ErrNotFound(target)
		}
	}
	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			return response.ErrBadRequest(target)
		}
	}

	switch {
	case errors.Is(err, service.ErrBookingAccessDenied):
		return response.ErrPermissionDenied(service.ErrBookingAccessDenied)
	case errors.Is(err, service.ErrGatewayFailure):
		return response.ErrBadGateway(fmt.Errorf("%s -> %w", op, err))
	}

	return response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err))
}

func renderServiceErr(ctx *gin.Context, op string, err error) {
	response.RenderErr(ctx, mapServiceErr(op, err))
}

func getPrincipal(ctx *gin.Context) (domain.Principal, *response.Err) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		return domain.Principal{}, response.ErrUnauthorized(errNoPrincipal)
	}

	return principal, nil
}

func parseID(raw, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s: %q", name, raw))
	}

	return uint(id), nil
}

func paramID(ctx *gin.Context, name string) (uint, *response.Err) {
	return parseID(ctx.Param(name), name)
}

func queryID(ctx *gin.Context, name string) (uint, *response.Err) {
	return parseID(ctx.Query(name), name)
}
