package command

// FieldSpec declares one field of an intent's extraction schema: its
// name and the value substituted when extraction finds nothing.
// Classification still succeeds on weak signal; the confirmation step
// shows the staged values before anything is written.
type FieldSpec struct {
	Name    string
	Default any
}

// schemas declares, per intent, what gets defaulted. Declared once so
// the contract is testable independently of the matching logic.
var schemas = map[Intent][]FieldSpec{
	IntentCreateClient: {
		{Name: "name", Default: "Nieznany"},
		{Name: "age", Default: 25},
	},
	IntentCreateTrainingPlan: {
		{Name: "difficulty", Default: "medium"},
		{Name: "mode", Default: "circuit"},
		{Name: "num_people", Default: 1},
		{Name: "duration", Default: 45},
	},
}

// ApplyDefaults fills missing fields in data according to the intent's
// schema. The input map is returned for convenience; intents without a
// schema pass through untouched.
func ApplyDefaults(intent Intent, data map[string]any) map[string]any {
	if data == nil {
		data = map[string]any{}
	}
	for _, spec := range schemas[intent] {
		if _, ok := data[spec.Name]; !ok {
			data[spec.Name] = spec.Default
		}
	}
	return data
}
