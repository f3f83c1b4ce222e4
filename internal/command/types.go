package command

// Intent is the classified purpose of a user message. Produced only by
// the classifier; the closed set below is the whole dispatch surface.
type Intent string

const (
	IntentHelp               Intent = "HELP"
	IntentCreateClient       Intent = "CREATE_CLIENT"
	IntentListClients        Intent = "LIST_CLIENTS"
	IntentShowClient         Intent = "SHOW_CLIENT"
	IntentDeleteClient       Intent = "DELETE_CLIENT"
	IntentCreateTrainingPlan Intent = "CREATE_TRAINING_PLAN"
	IntentListTrainingPlans  Intent = "LIST_TRAINING_PLANS"
	IntentNone               Intent = "NONE"
)

// Known lists every intent a handler must be registered for. IntentNone
// is absent: it routes to the fallback answerer, not the handler table.
var Known = []Intent{
	IntentHelp,
	IntentCreateClient,
	IntentListClients,
	IntentShowClient,
	IntentDeleteClient,
	IntentCreateTrainingPlan,
	IntentListTrainingPlans,
}

// Command is the result of classifying one message. It lives only for
// the duration of the request.
type Command struct {
	Intent  Intent
	Data    map[string]any
	RawText string
}

// Result is what the dispatcher returns to the transport layer.
type Result struct {
	Success           bool
	Message           string
	Data              map[string]any
	NeedsConfirmation bool

	// Internal marks a collaborator or handler failure, as opposed to a
	// domain-level refusal like an unknown client name.
	Internal bool
}
