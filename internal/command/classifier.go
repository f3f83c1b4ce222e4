package command

import (
	"regexp"
	"strconv"
	"strings"
)

// rule is one entry of the classification table: a pattern, the intent
// it produces, and an extractor over the match.
type rule struct {
	pattern *regexp.Regexp
	intent  Intent
	extract func(m []string, full string) map[string]any
}

func noData(_ []string, _ string) map[string]any { return map[string]any{} }

// rules is evaluated in order and the first match wins, so more
// specific patterns must stay above more general ones: the exact-phrase
// help rule is first, the training rules sit above the short-form
// create-client rule ("utwórz trening" is a plan, not a client named
// Trening), and the list rules sit above the show rule.
var rules = []rule{
	// Help
	{
		pattern: regexp.MustCompile(`(?i)^(?:pomoc|help|komendy|commands|\?)$`),
		intent:  IntentHelp,
		extract: noData,
	},

	// Create client - with keyword: "dodaj podopiecznego Jan Kowalski, 30 lat"
	{
		pattern: regexp.MustCompile(`(?i)(?:dodaj|utwórz|stwórz|nowy|add|create)\s+(?:podopieczn\p{L}*|klient\p{L}*|użytkownik\p{L}*|user\p{L}*)[\s:]*(.+)`),
		intent:  IntentCreateClient,
		extract: func(m []string, _ string) map[string]any { return ExtractClientData(m[1]) },
	},

	// Create training plan: "wygeneruj trening, trudność: hard"
	{
		pattern: regexp.MustCompile(`(?i)(?:wygeneruj|stwórz|zrób|utwórz|generuj|create)\s+(?:plan\s+)?(?:trening\p{L}*|training|circuit|obwód)`),
		intent:  IntentCreateTrainingPlan,
		extract: func(_ []string, full string) map[string]any { return ExtractPlanParams(full) },
	},
	// "circuit dla 5 osób", "trening dla 3"
	{
		pattern: regexp.MustCompile(`(?i)(?:trening|circuit|obwód)\s+(?:dla|na|for)\s+(\d+)`),
		intent:  IntentCreateTrainingPlan,
		extract: func(m []string, full string) map[string]any {
			data := ExtractPlanParams(full)
			if n, err := strconv.Atoi(m[1]); err == nil {
				data["num_people"] = n
			}
			return data
		},
	},

	// Create client - short form: "dodaj Jana 30 lat"
	{
		pattern: regexp.MustCompile(`(?i)(?:dodaj|utwórz|nowy)\s+([A-ZĄĆĘŁŃÓŚŹŻ][a-ząćęłńóśźż]+(?:\s+[A-ZĄĆĘŁŃÓŚŹŻ][a-ząćęłńóśźż]+)?(?:[\s,].+)?)`),
		intent:  IntentCreateClient,
		extract: func(m []string, _ string) map[string]any { return ExtractClientData(m[1]) },
	},

	// List clients
	{
		pattern: regexp.MustCompile(`(?i)(?:lista|pokaż|wyświetl|list|show)\s+(?:podopieczn\p{L}*|klient\p{L}*|użytkownik\p{L}*|wszystk\p{L}*)`),
		intent:  IntentListClients,
		extract: noData,
	},
	{
		pattern: regexp.MustCompile(`(?i)(?:podopieczni|klienci|użytkownicy)$`),
		intent:  IntentListClients,
		extract: noData,
	},

	// List training plans ("pokaż treningi" lists, it does not show a
	// client named Treningi, so this stays above the show rule)
	{
		pattern: regexp.MustCompile(`(?i)(?:lista|pokaż|historia)\s+(?:trening\p{L}*|plan\p{L}*)`),
		intent:  IntentListTrainingPlans,
		extract: noData,
	},

	// Show a client: "pokaż dane Jan", "profil Anna"
	{
		pattern: regexp.MustCompile(`(?i)(?:pokaż|dane|info|szczegóły|profil)\s+(?:dane\s+)?(?:podopieczn\p{L}*|klient\p{L}*)?\s*[:\-]?\s*(\p{L}+)`),
		intent:  IntentShowClient,
		extract: func(m []string, _ string) map[string]any {
			return map[string]any{"name": strings.TrimSpace(m[1])}
		},
	},

	// Delete a client
	{
		pattern: regexp.MustCompile(`(?i)(?:usuń|usun|skasuj|delete|remove)\s+(?:podopieczn\p{L}*|klient\p{L}*|użytkownik\p{L}*)?\s*[:\-]?\s*(\p{L}+)`),
		intent:  IntentDeleteClient,
		extract: func(m []string, _ string) map[string]any {
			return map[string]any{"name": strings.TrimSpace(m[1])}
		},
	},
}

// Classify matches a message against the rule table and returns the
// first hit with its extracted data, schema defaults applied. No rule
// matched means IntentNone with empty data. Pure function: no side
// effects, same input always yields the same Command.
func Classify(message string) Command {
	msg := strings.TrimSpace(message)

	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(msg)
		if m == nil {
			continue
		}
		return Command{
			Intent:  r.intent,
			Data:    ApplyDefaults(r.intent, r.extract(m, msg)),
			RawText: msg,
		}
	}

	return Command{Intent: IntentNone, Data: map[string]any{}, RawText: msg}
}
