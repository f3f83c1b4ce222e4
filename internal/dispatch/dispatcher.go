package dispatch

import (
	"context"
	"fmt"
	"log"

	"github.com/trenerai/trener-intent/internal/agent"
	"github.com/trenerai/trener-intent/internal/command"
	"github.com/trenerai/trener-intent/internal/session"
)

// User-visible outcome messages. Collaborator errors never leak; the
// caller gets one of these plus a log line on our side.
const (
	MsgNothingToConfirm = "Brak oczekującej akcji do potwierdzenia."
	MsgCancelled        = "Anulowano. W czym jeszcze mogę pomóc?"
	MsgOperationFailed  = "Przepraszam, operacja nie powiodła się. Spróbuj ponownie."
	MsgFallbackFailed   = "Przepraszam, nie udało się przetworzyć Twojego pytania. Spróbuj ponownie za chwilę."
)

// HandlerFunc executes one intent with its (staged or fresh) data.
type HandlerFunc func(ctx context.Context, data map[string]any) (*command.Result, error)

// Handler is one entry of the intent dispatch table. A non-nil Confirm
// marks the intent as mutating: instead of executing immediately the
// dispatcher stages the data and returns Confirm's prompt.
type Handler struct {
	Execute HandlerFunc
	Confirm func(data map[string]any) string
}

// Dispatcher routes incoming messages: confirmation replies resolve or
// cancel the session's pending action, classified commands execute or
// stage, everything else goes to the fallback answerer.
type Dispatcher struct {
	pending  session.Store
	handlers map[command.Intent]Handler
	fallback agent.Answerer
}

// New builds a dispatcher. Every known intent must have a handler; a
// missing one is a wiring bug and fails here, at startup, not per
// request.
func New(pending session.Store, fallback agent.Answerer, handlers map[command.Intent]Handler) (*Dispatcher, error) {
	for _, intent := range command.Known {
		h, ok := handlers[intent]
		if !ok || h.Execute == nil {
			return nil, fmt.Errorf("no handler registered for intent %s", intent)
		}
	}

	return &Dispatcher{
		pending:  pending,
		handlers: handlers,
		fallback: fallback,
	}, nil
}

// Handle processes one message for one session. An empty sessionID is
// a stateless request: nothing is ever staged for it and no
// confirmation ever matches.
func (d *Dispatcher) Handle(ctx context.Context, sessionID, message string) *command.Result {
	switch command.DetectConfirmation(message) {
	case command.Affirmative:
		return d.resolvePending(ctx, sessionID)
	case command.Negative:
		if action := d.peek(ctx, sessionID); action != nil {
			if err := d.pending.Clear(ctx, sessionID); err != nil {
				log.Printf("Failed to clear pending action for session %s: %v", sessionID, err)
			}
			return &command.Result{Success: true, Message: MsgCancelled}
		}
		// No pending action: "nie" is an ordinary message.
	}

	cmd := command.Classify(message)
	if cmd.Intent == command.IntentNone {
		return d.answerFallback(ctx, cmd.RawText)
	}

	handler := d.handlers[cmd.Intent]
	if handler.Confirm == nil {
		// Read-only intent, execute immediately.
		return d.execute(ctx, handler, cmd.Data)
	}

	// Mutating intent: stage it and ask for confirmation. Staging never
	// touches the record store.
	prompt := handler.Confirm(cmd.Data)
	if sessionID != "" {
		action := &session.PendingAction{
			Intent: cmd.Intent,
			Data:   cmd.Data,
			Prompt: prompt,
		}
		if err := d.pending.Stage(ctx, sessionID, action); err != nil {
			log.Printf("Failed to stage pending action for session %s: %v", sessionID, err)
			return &command.Result{Success: false, Message: MsgOperationFailed, Internal: true}
		}
	}

	return &command.Result{
		Success:           true,
		Message:           prompt,
		NeedsConfirmation: true,
	}
}

// resolvePending executes the session's staged action after an
// affirmative reply. The slot is cleared before execution, so a failed
// handler means re-issuing the command, not re-confirming.
func (d *Dispatcher) resolvePending(ctx context.Context, sessionID string) *command.Result {
	action := d.peek(ctx, sessionID)
	if action == nil {
		return &command.Result{Success: false, Message: MsgNothingToConfirm}
	}

	if err := d.pending.Clear(ctx, sessionID); err != nil {
		log.Printf("Failed to clear pending action for session %s: %v", sessionID, err)
	}

	handler, ok := d.handlers[action.Intent]
	if !ok {
		// Constructor guards against this; a stale staged intent from an
		// older deploy could still land here.
		log.Printf("No handler for staged intent %s (session %s)", action.Intent, sessionID)
		return &command.Result{Success: false, Message: MsgOperationFailed, Internal: true}
	}

	return d.execute(ctx, handler, action.Data)
}

// peek reads the session's pending action, treating store errors and
// expired entries as absence.
func (d *Dispatcher) peek(ctx context.Context, sessionID string) *session.PendingAction {
	if sessionID == "" {
		return nil
	}
	action, err := d.pending.Peek(ctx, sessionID)
	if err != nil {
		log.Printf("Failed to read pending action for session %s: %v", sessionID, err)
		return nil
	}
	return action
}

// execute runs a handler, converting errors and panics into a failed
// result at this boundary.
func (d *Dispatcher) execute(ctx context.Context, handler Handler, data map[string]any) (res *command.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Handler panicked: %v", r)
			res = &command.Result{Success: false, Message: MsgOperationFailed, Internal: true}
		}
	}()

	result, err := handler.Execute(ctx, data)
	if err != nil {
		log.Printf("Handler failed: %v", err)
		return &command.Result{Success: false, Message: MsgOperationFailed, Internal: true}
	}
	return result
}

// answerFallback forwards an unmatched message to the retrieval +
// generation collaborator and wraps its answer verbatim.
func (d *Dispatcher) answerFallback(ctx context.Context, message string) *command.Result {
	answer, err := d.fallback.Answer(ctx, message)
	if err != nil {
		log.Printf("Fallback answer failed: %v", err)
		return &command.Result{Success: false, Message: MsgFallbackFailed, Internal: true}
	}
	return &command.Result{Success: true, Message: answer}
}
