package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/event-management-api/internal/domain"
)

type MessageService interface {
	SendMessage(ctx context.Context, principal domain.Principal, eventID uint, content string) (domain.Message, error)
	GetEventMessages(ctx context.Context, eventID uint) ([]domain.Message, error)
}

// MessageHandler serves the per-event message board. The same handlers are
// mounted under each role prefix.
type MessageHandler struct {
	svc MessageService
}

func NewMessageHandler(svc MessageService) *MessageHandler {
	return &MessageHandler{
		svc: svc,
	}
}

// HandleSendMessage godoc
// @Summary      Post a message on an event board
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        request  body      request.MessageRequest true "request body"
// @Success      201      {object}  response.ChatMessageResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /planner/send-message [post]
// @Router       /staff/send-message [post]
// @Router       /client/send-message [post]
// @Security BearerAuth
func (h *MessageHandler) HandleSendMessage(ctx *gin.Context) {
	principal, respErr := getPrincipal(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.MessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	msg, err := h.svc.SendMessage(ctx.Request.Context(), principal, req.EventID, req.Content)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSendMessage -> h.svc.SendMessage", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.ChatMessageResponse{
		Success: true,
		Message: "Message sent successfully",
		Data:    msg,
	})
}

// HandleGetMessages godoc
// @Summary      List the messages of an event, oldest first
// @Tags         messages
// @Produce      json
// @Param        eventId  path     int  true  "event id"
// @Success      200      {array}  domain.Message
// @Router       /planner/messages/{eventId} [get]
// @Router       /staff/messages/{eventId} [get]
// @Router       /client/messages/{eventId} [get]
// @Security BearerAuth
func (h *MessageHandler) HandleGetMessages(ctx *gin.Context) {
	eventID, respErr := paramID(ctx, "eventId")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	msgs, err := h.svc.GetEventMessages(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetMessages -> h.svc.GetEventMessages", err)
		return
	}

	ctx.JSON(http.StatusOK, msgs)
}
