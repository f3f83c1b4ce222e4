package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/trenerai/trener-intent/internal/dispatch"
	"github.com/trenerai/trener-intent/internal/models"
)

// ChatHandler validates inbound requests and drives the dispatcher.
// It is transport-agnostic; NATS and HTTP both call ProcessMessage.
type ChatHandler struct {
	dispatcher *dispatch.Dispatcher
}

func NewChatHandler(dispatcher *dispatch.Dispatcher) *ChatHandler {
	return &ChatHandler{dispatcher: dispatcher}
}

// ProcessMessage handles one chat request. A missing session_id is
// allowed: the request is handled statelessly and no confirmation can
// ever match it.
func (h *ChatHandler) ProcessMessage(ctx context.Context, request *models.ChatRequest) *models.ChatResponse {
	if strings.TrimSpace(request.Message) == "" {
		return errorResponse(request, models.ErrorEmptyMessage, "message is required")
	}

	result := h.dispatcher.Handle(ctx, request.SessionID, request.Message)

	log.Printf("Processed message for session %q: success=%v confirm=%v",
		request.SessionID, result.Success, result.NeedsConfirmation)

	response := &models.ChatResponse{
		SessionID:         request.SessionID,
		Success:           result.Success,
		Message:           result.Message,
		Data:              result.Data,
		NeedsConfirmation: result.NeedsConfirmation,
	}
	if result.Internal {
		code := models.ErrorInternal
		response.ErrorCode = &code
	}
	return response
}

func errorResponse(request *models.ChatRequest, errorCode, errorMessage string) *models.ChatResponse {
	return &models.ChatResponse{
		SessionID:    request.SessionID,
		Success:      false,
		Message:      "Wiadomość nie może być pusta.",
		ErrorCode:    &errorCode,
		ErrorMessage: &errorMessage,
	}
}
