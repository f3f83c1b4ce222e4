package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectConfirmation(t *testing.T) {
	tests := []struct {
		message string
		want    Verdict
	}{
		{"tak", Affirmative},
		{"TAK", Affirmative},
		{"  yes  ", Affirmative},
		{"ok", Affirmative},
		{"potwierdzam", Affirmative},
		{"dawaj", Affirmative},
		{"y", Affirmative},

		{"nie", Negative},
		{"Anuluj", Negative},
		{"cancel", Negative},
		{"stop", Negative},
		{"rezygnuję", Negative},
		{"n", Negative},

		// Exact-word matching only: no substrings, no sentences.
		{"taki sobie", Neither},
		{"taką", Neither},
		{"no nie wiem", Neither},
		{"dodaj Jana", Neither},
		{"", Neither},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectConfirmation(tt.message))
		})
	}
}
