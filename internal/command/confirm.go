package command

import "strings"

// Verdict classifies a message as a reply to a pending confirmation.
type Verdict int

const (
	Neither Verdict = iota
	Affirmative
	Negative
)

var affirmatives = map[string]struct{}{
	"tak": {}, "yes": {}, "ok": {}, "potwierdź": {}, "potwierdzam": {},
	"dawaj": {}, "jasne": {}, "sure": {}, "y": {},
}

var negatives = map[string]struct{}{
	"nie": {}, "no": {}, "anuluj": {}, "cancel": {}, "stop": {},
	"rezygnuję": {}, "n": {},
}

// DetectConfirmation checks whether a message is a bare yes/no reply.
// Membership is exact after trimming and case-folding, so a one-word
// "tak" is never mistaken for a new command. This runs before the
// classifier on every message.
func DetectConfirmation(message string) Verdict {
	msg := strings.ToLower(strings.TrimSpace(message))
	if _, ok := affirmatives[msg]; ok {
		return Affirmative
	}
	if _, ok := negatives[msg]; ok {
		return Negative
	}
	return Neither
}
