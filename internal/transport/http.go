package transport

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/trenerai/trener-intent/internal/handlers"
	"github.com/trenerai/trener-intent/internal/models"
)

// HTTPTransport serves the same chat contract over HTTP for backends
// that do not speak NATS.
type HTTPTransport struct {
	server  *http.Server
	handler *handlers.ChatHandler
}

func NewHTTPTransport(addr string, handler *handlers.ChatHandler) *HTTPTransport {
	t := &HTTPTransport{handler: handler}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))

	r.Post("/api/chat", t.handleChat)

	t.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return t
}

// Start blocks serving HTTP until Close is called.
func (t *HTTPTransport) Start() error {
	log.Printf("HTTP transport listening on %s", t.server.Addr)
	if err := t.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (t *HTTPTransport) handleChat(w http.ResponseWriter, r *http.Request) {
	var request models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		errorCode := models.ErrorParseError
		errorMessage := "invalid request body"
		writeJSON(w, http.StatusBadRequest, &models.ChatResponse{
			Success:      false,
			Message:      "Przepraszam, nie udało się przetworzyć żądania.",
			ErrorCode:    &errorCode,
			ErrorMessage: &errorMessage,
		})
		return
	}

	response := t.handler.ProcessMessage(r.Context(), &request)
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// Close shuts the HTTP server down gracefully.
func (t *HTTPTransport) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return t.server.Shutdown(ctx)
}
