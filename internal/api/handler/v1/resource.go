package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/event-management-api/internal/domain"
)

type ResourceService interface {
	AddResource(ctx context.Context, resource domain.Resource) (domain.Resource, error)
	GetResources(ctx context.Context) ([]domain.Resource, error)
	AllocateResource(ctx context.Context, eventID, resourceID uint, quantity int) (domain.Allocation, error)
}

type ResourceHandler struct {
	svc ResourceService
}

func NewResourceHandler(svc ResourceService) *ResourceHandler {
	return &ResourceHandler{
		svc: svc,
	}
}

// HandleAddResource godoc
// @Summary      Add a resource
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        request  body      request.ResourceRequest true "request body"
// @Success      201      {object}  domain.Resource
// @Failure      400      {object}  response.Err
// @Router       /planner/resource [post]
// @Security BearerAuth
func (h *ResourceHandler) HandleAddResource(ctx *gin.Context) {
	var req request.ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	resource, err := h.svc.AddResource(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleAddResource -> h.svc.AddResource", err)
		return
	}

	ctx.JSON(http.StatusCreated, resource)
}

// HandleGetResources godoc
// @Summary      List resources
// @Tags         planner
// @Produce      json
// @Success      200  {array}  domain.Resource
// @Router       /planner/resources [get]
// @Security BearerAuth
func (h *ResourceHandler) HandleGetResources(ctx *gin.Context) {
	resources, err := h.svc.GetResources(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetResources -> h.svc.GetResources", err)
		return
	}

	ctx.JSON(http.StatusOK, resources)
}

// HandleAllocateResource godoc
// @Summary      Allocate a resource to an event
// @Description  Fails when the resource is already allocated.
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        eventId     query     int                       true  "event id"
// @Param        resourceId  query     int                       true  "resource id"
// @Param        request     body      request.AllocationRequest true  "request body"
// @Success      201         {object}  response.MessageResponse
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Router       /planner/allocate-resources [post]
// @Security BearerAuth
func (h *ResourceHandler) HandleAllocateResource(ctx *gin.Context) {
	eventID, respErr := queryID(ctx, "eventId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	resourceID, respErr := queryID(ctx, "resourceId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AllocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err := h.svc.AllocateResource(ctx.Request.Context(), eventID, resourceID, req.Quantity); err != nil {
		renderServiceErr(ctx, "v1.HandleAllocateResource -> h.svc.AllocateResource", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.MessageResponse{
		Message: fmt.Sprintf("Resource allocated successfully for Event ID: %d", eventID),
	})
}
