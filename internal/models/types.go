package models

// ChatRequest is the inbound message from the backend, carried over
// NATS request/reply or HTTP. SessionID is optional; without it the
// request is handled statelessly and no confirmation can ever match.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatResponse is sent back to the backend.
type ChatResponse struct {
	SessionID         string         `json:"session_id"`
	Success           bool           `json:"success"`
	Message           string         `json:"message"`
	Data              map[string]any `json:"data,omitempty"`
	NeedsConfirmation bool           `json:"needs_confirmation"`
	ErrorCode         *string        `json:"error_code,omitempty"`
	ErrorMessage      *string        `json:"error_message,omitempty"`
}

// Error codes
const (
	ErrorParseError   = "PARSE_ERROR"
	ErrorEmptyMessage = "EMPTY_MESSAGE"
	ErrorInternal     = "INTERNAL_ERROR"
)
