package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/trenerai/trener-intent/internal/config"
	"github.com/trenerai/trener-intent/internal/handlers"
	"github.com/trenerai/trener-intent/internal/models"
)

// NATSTransport serves chat requests over NATS request/reply.
type NATSTransport struct {
	conn    *nats.Conn
	config  *config.Config
	handler *handlers.ChatHandler
}

func NewNATSTransport(cfg *config.Config, handler *handlers.ChatHandler) (*NATSTransport, error) {
	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name(cfg.ServiceName),
		nats.Timeout(cfg.NatsTimeout),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1), // Infinite reconnects
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Printf("Connected to NATS server: %s", cfg.NatsURL)

	return &NATSTransport{
		conn:    conn,
		config:  cfg,
		handler: handler,
	}, nil
}

func (nt *NATSTransport) Start() error {
	_, err := nt.conn.Subscribe(nt.config.NatsRequestSubject, nt.handleChatRequest)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", nt.config.NatsRequestSubject, err)
	}

	log.Printf("Subscribed to subject: %s", nt.config.NatsRequestSubject)
	return nil
}

func (nt *NATSTransport) handleChatRequest(msg *nats.Msg) {
	var request models.ChatRequest
	if err := json.Unmarshal(msg.Data, &request); err != nil {
		log.Printf("Error parsing request: %v", err)
		nt.sendErrorResponse(msg, &request, models.ErrorParseError, "Invalid request format")
		return
	}

	log.Printf("Processing chat request for session: %s", request.SessionID)

	ctx, cancel := context.WithTimeout(context.Background(), nt.config.HandlerTimeout)
	defer cancel()

	response := nt.handler.ProcessMessage(ctx, &request)

	if err := nt.sendResponse(msg, response); err != nil {
		log.Printf("Error sending response: %v", err)
	}
}

func (nt *NATSTransport) sendResponse(msg *nats.Msg, response *models.ChatResponse) error {
	responseData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err := msg.Respond(responseData); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (nt *NATSTransport) sendErrorResponse(msg *nats.Msg, request *models.ChatRequest, errorCode, errorMessage string) {
	response := &models.ChatResponse{
		SessionID:    request.SessionID,
		Success:      false,
		Message:      "Przepraszam, nie udało się przetworzyć żądania. Spróbuj ponownie.",
		ErrorCode:    &errorCode,
		ErrorMessage: &errorMessage,
	}

	if err := nt.sendResponse(msg, response); err != nil {
		log.Printf("Failed to send error response: %v", err)
	}
}

func (nt *NATSTransport) Close() error {
	if nt.conn != nil {
		nt.conn.Close()
		log.Println("NATS connection closed")
	}
	return nil
}
