package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIntents(t *testing.T) {
	tests := []struct {
		name    string
		message string
		intent  Intent
		data    map[string]any
	}{
		{
			name:    "help exact",
			message: "pomoc",
			intent:  IntentHelp,
		},
		{
			name:    "help question mark",
			message: "?",
			intent:  IntentHelp,
		},
		{
			name:    "help uppercase with whitespace",
			message: "  POMOC  ",
			intent:  IntentHelp,
		},
		{
			name:    "create client short form",
			message: "dodaj Jana 30 lat",
			intent:  IntentCreateClient,
			data:    map[string]any{"name": "Jana", "age": 30},
		},
		{
			name:    "create client with keyword and full data",
			message: "dodaj podopiecznego Jan Kowalski, 30 lat, 80kg, cel: schudnąć",
			intent:  IntentCreateClient,
			data:    map[string]any{"name": "Jan Kowalski", "age": 30, "weight": 80.0, "goals": "schudnąć"},
		},
		{
			name:    "list clients",
			message: "lista podopiecznych",
			intent:  IntentListClients,
		},
		{
			name:    "list clients bare noun",
			message: "podopieczni",
			intent:  IntentListClients,
		},
		{
			name:    "show client",
			message: "pokaż dane Jan",
			intent:  IntentShowClient,
			data:    map[string]any{"name": "Jan"},
		},
		{
			name:    "show client via profil",
			message: "profil Anna",
			intent:  IntentShowClient,
			data:    map[string]any{"name": "Anna"},
		},
		{
			name:    "delete client with keyword",
			message: "usuń podopiecznego Jan",
			intent:  IntentDeleteClient,
			data:    map[string]any{"name": "Jan"},
		},
		{
			name:    "delete client bare",
			message: "usuń Jana",
			intent:  IntentDeleteClient,
			data:    map[string]any{"name": "Jana"},
		},
		{
			name:    "create training with difficulty",
			message: "wygeneruj trening, trudność: hard",
			intent:  IntentCreateTrainingPlan,
			data:    map[string]any{"difficulty": "hard", "mode": "circuit", "num_people": 1, "duration": 45},
		},
		{
			name:    "circuit for n people",
			message: "circuit dla 5 osób",
			intent:  IntentCreateTrainingPlan,
			data:    map[string]any{"difficulty": "medium", "mode": "circuit", "num_people": 5, "duration": 45},
		},
		{
			name:    "list training plans",
			message: "lista treningów",
			intent:  IntentListTrainingPlans,
		},
		{
			name:    "no rule matches",
			message: "jakie ćwiczenia na plecy?",
			intent:  IntentNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Classify(tt.message)
			require.Equal(t, tt.intent, cmd.Intent)
			if tt.data != nil {
				assert.Equal(t, tt.data, cmd.Data)
			}
		})
	}
}

// Overlapping patterns resolve by table order, so reordering rules is
// a behaviour change. These inputs each match more than one pattern.
func TestClassifyTableOrdering(t *testing.T) {
	tests := []struct {
		name    string
		message string
		intent  Intent
	}{
		{
			// "utwórz" is also a create-client verb; the training rule
			// sits above the short-form client rule.
			name:    "utworz trening is a plan not a client",
			message: "utwórz trening",
			intent:  IntentCreateTrainingPlan,
		},
		{
			// "pokaż" is also the show-client verb; the list rule wins.
			name:    "pokaz podopiecznych lists",
			message: "pokaż podopiecznych",
			intent:  IntentListClients,
		},
		{
			name:    "pokaz treningi lists plans",
			message: "pokaż treningi",
			intent:  IntentListTrainingPlans,
		},
		{
			// Exact-phrase help outranks everything.
			name:    "help phrase stays help",
			message: "help",
			intent:  IntentHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.intent, Classify(tt.message).Intent)
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	messages := []string{
		"dodaj Jana 30 lat",
		"wygeneruj trening, trudność: hard",
		"jakie ćwiczenia na plecy?",
	}

	for _, msg := range messages {
		first := Classify(msg)
		second := Classify(msg)
		assert.Equal(t, first, second, "Classify(%q) not deterministic", msg)
	}
}

func TestClassifyNoMatchHasEmptyData(t *testing.T) {
	cmd := Classify("co słychać?")
	require.Equal(t, IntentNone, cmd.Intent)
	assert.Empty(t, cmd.Data)
	assert.Equal(t, "co słychać?", cmd.RawText)
}
