package command

import (
	"regexp"
	"strconv"
	"strings"
)

// Secondary patterns applied to an already-matched span to pull typed
// fields. A field that is not found is simply left out; the schema
// layer fills documented defaults afterwards.
var (
	nameRe   = regexp.MustCompile(`^([A-Za-zĄĆĘŁŃÓŚŹŻąćęłńóśźż\s]+?)(?:,|\d|$)`)
	ageRe    = regexp.MustCompile(`(?i)(\d+)\s*(?:lat|lata|roku|rok|years?|l\.?)`)
	weightRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:kg|kilo)`)
	heightRe = regexp.MustCompile(`(?i)(\d+)\s*(?:cm|centymetr)`)
	goalRe   = regexp.MustCompile(`(?i)cel[:\s]+(.+?)(?:,|$)`)

	easyRe   = regexp.MustCompile(`(?i)(?:łatw|easy|pocz[aą]tkuj|beginner)`)
	hardRe   = regexp.MustCompile(`(?i)(?:trudn|hard|zaawans|advanced)`)
	mediumRe = regexp.MustCompile(`(?i)(?:średni|medium|intermediate)`)

	circuitRe = regexp.MustCompile(`(?i)(?:circuit|obwod|obwód)`)
	commonRe  = regexp.MustCompile(`(?i)(?:common|wspóln|wspoln)`)

	peopleRe   = regexp.MustCompile(`(?i)(\d+)\s*(?:osob|osób|person|people|uczestnik)`)
	durationRe = regexp.MustCompile(`(?i)(\d+)\s*(?:minut|min)`)
	targetRe   = regexp.MustCompile(`(?i)(?:dla|for)\s+(\p{L}+)`)
)

// ExtractClientData pulls client fields from free text like
// "Jan Kowalski, 30 lat, 80kg, cel: schudnąć".
func ExtractClientData(text string) map[string]any {
	data := map[string]any{}
	text = strings.TrimSpace(text)

	// Name: everything before the first comma or digit.
	if m := nameRe.FindStringSubmatch(text); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			data["name"] = name
		}
	}
	if m := ageRe.FindStringSubmatch(text); m != nil {
		if age, err := strconv.Atoi(m[1]); err == nil {
			data["age"] = age
		}
	}
	if m := weightRe.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], ",", ".")
		if weight, err := strconv.ParseFloat(raw, 64); err == nil {
			data["weight"] = weight
		}
	}
	if m := heightRe.FindStringSubmatch(text); m != nil {
		if height, err := strconv.ParseFloat(m[1], 64); err == nil {
			data["height"] = height
		}
	}
	if m := goalRe.FindStringSubmatch(text); m != nil {
		data["goals"] = strings.TrimSpace(m[1])
	}

	return data
}

// ExtractPlanParams pulls training parameters from the whole message,
// e.g. "wygeneruj trening, trudność: hard, circuit dla 5 osób, 45 minut".
func ExtractPlanParams(text string) map[string]any {
	data := map[string]any{}

	// An easy keyword wins over the hard bucket. The hard bucket also
	// fires on the word "trudność" itself, which is fine: messages that
	// name a difficulty spell it out anyway.
	switch {
	case easyRe.MatchString(text):
		data["difficulty"] = "easy"
	case hardRe.MatchString(text):
		data["difficulty"] = "hard"
	case mediumRe.MatchString(text):
		data["difficulty"] = "medium"
	}

	switch {
	case circuitRe.MatchString(text):
		data["mode"] = "circuit"
	case commonRe.MatchString(text):
		data["mode"] = "common"
	}

	if m := peopleRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			data["num_people"] = n
		}
	}
	if m := durationRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			data["duration"] = n
		}
	}
	if m := targetRe.FindStringSubmatch(text); m != nil {
		data["target_user"] = strings.TrimSpace(m[1])
	}

	return data
}
