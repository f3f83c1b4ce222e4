package prompts

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/schema"
)

const answerPrompt = `Jesteś TrenerAI, asystentem trenera personalnego. Odpowiadasz po polsku, rzeczowo i krótko.

Poniżej znajduje się wiedza z bazy ćwiczeń, która może pomóc w odpowiedzi:

%s

Pytanie trenera:
%s

Odpowiedz na pytanie korzystając z powyższej wiedzy. Jeśli wiedza nie wystarcza, powiedz to wprost.`

const planPrompt = `Jesteś profesjonalnym trenerem personalnym. Twoim zadaniem jest ułożenie planu treningowego.
Masz dostęp do list ćwiczeń (KANDYDACI) pobranych z bazy.

ZASADY:
1. Wybieraj ćwiczenia WYŁĄCZNIE z list kandydatów.
2. Część główna ma dokładnie %d ćwiczeń.
3. Tryb treningu: %s.
4. Czas trwania: %d minut, trudność: %s.

KANDYDACI - ROZGRZEWKA:
%s

KANDYDACI - CZĘŚĆ GŁÓWNA:
%s

KANDYDACI - WYCISZENIE:
%s

Sformatuj wynik jako czytelny plan w markdown z sekcjami Rozgrzewka, Część główna, Wyciszenie.`

// FallbackMessage is returned when a collaborator fails; never the raw
// error.
const FallbackMessage = "Przepraszam, nie udało się przetworzyć Twojego pytania. Spróbuj ponownie za chwilę."

// BuildAnswerPrompt assembles the retrieval-augmented answer prompt
// from the retrieved documents and the raw question.
func BuildAnswerPrompt(question string, docs []schema.Document) string {
	return fmt.Sprintf(answerPrompt, FormatDocs(docs), question)
}

// BuildPlanPrompt assembles the plan-generation prompt. In circuit
// mode the main part has one station per person; in common mode
// everyone does the same five exercises.
func BuildPlanPrompt(difficulty, mode string, numPeople, duration int, warmup, main, cooldown []schema.Document) string {
	targetCount := 5
	modeDesc := "wspólny (wszyscy wykonują to samo ćwiczenie)"
	if mode == "circuit" {
		targetCount = numPeople
		modeDesc = "obwodowy (każda osoba na innej stacji)"
	}

	return fmt.Sprintf(planPrompt,
		targetCount, modeDesc, duration, difficulty,
		FormatDocs(warmup), FormatDocs(main), FormatDocs(cooldown))
}

// FormatDocs renders retrieved documents as a bullet list for the LLM.
func FormatDocs(docs []schema.Document) string {
	if len(docs) == 0 {
		return "- (brak)"
	}

	var builder strings.Builder
	for _, doc := range docs {
		if id, ok := doc.Metadata["id"]; ok {
			builder.WriteString(fmt.Sprintf("- [ID: %v] %s\n", id, doc.PageContent))
			continue
		}
		builder.WriteString(fmt.Sprintf("- %s\n", doc.PageContent))
	}
	return strings.TrimRight(builder.String(), "\n")
}
