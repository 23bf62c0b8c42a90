package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/event-management-api/internal/domain"
)

type UserService interface {
	GetProfile(ctx context.Context, principal domain.Principal) (domain.User, error)
	UpdateProfile(ctx context.Context, principal domain.Principal, upd domain.ProfileUpdate) (domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetProfile godoc
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.ProfileResponse
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /profile [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetProfile(ctx *gin.Context) {
	principal, respErr := getPrincipal(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.svc.GetProfile(ctx.Request.Context(), principal)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetProfile -> h.svc.GetProfile", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewProfileResponse(user))
}

// HandleUpdateProfile godoc
// @Summary      Update the caller's profile
// @Description  Omitted fields are left unchanged. Changing the password requires currentPassword.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      request.ProfileUpdateRequest true "request body"
// @Success      200      {object}  response.ProfileUpdateResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Router       /profile [put]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateProfile(ctx *gin.Context) {
	principal, respErr := getPrincipal(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.UpdateProfile(ctx.Request.Context(), principal, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateProfile -> h.svc.UpdateProfile", err)
		return
	}

	ctx.JSON(http.StatusOK, response.ProfileUpdateResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    response.NewProfileResponse(user),
	})
}
